package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Anhngoc0603/sneakerstore/internal/catalog"
	"github.com/Anhngoc0603/sneakerstore/internal/render"
)

// NewShopCommand covers the storefront: browsing, product detail and the
// wishlist.
func NewShopCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "browse the storefront",
	}
	cmd.AddCommand(newShopListCommand(app))
	cmd.AddCommand(newShopShowCommand(app))
	cmd.AddCommand(newWishlistCommand(app))
	return cmd
}

func newShopListCommand(app *App) *cobra.Command {
	var category, sortKey, query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			products := app.GW.Products.List(ctx)
			products = catalog.ByCategory(products, category)
			products = catalog.Search(products, query)
			products = catalog.SortBy(products, sortKey)
			fmt.Fprint(cmd.OutOrStdout(), render.ProductCards(products))
			fmt.Fprintf(cmd.OutOrStdout(), "%d products\n", len(products))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "all", "category filter")
	cmd.Flags().StringVar(&sortKey, "sort", catalog.SortFeatured, "sort order (featured|price-low|price-high|rating|name|newest)")
	cmd.Flags().StringVar(&query, "search", "", "search query")
	return cmd
}

func newShopShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "product detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			ctx := cmd.Context()
			p, ok := catalog.ByID(app.GW.Products.List(ctx), id)
			if !ok {
				return fmt.Errorf("product %d not found", id)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", p.Brand, p.Name)
			fmt.Fprintf(out, "%s %s (%.1f, %d reviews)\n", catalog.FormatPrice(p.Price), catalog.StarRating(p.Rating), p.Rating, p.Reviews)
			if pct := catalog.DiscountPercent(p.Price, p.OriginalPrice); pct > 0 {
				fmt.Fprintf(out, "was %s (-%d%%)\n", catalog.FormatPrice(p.OriginalPrice), pct)
			}
			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
			}
			fmt.Fprintf(out, "sizes: %v  colors: %v\n", p.Sizes, p.Colors)
			return nil
		},
	}
}

func newWishlistCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "show or toggle the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := catalog.LoadWishlist(ctx, app.Store)
			products := app.GW.Products.List(ctx)
			for _, id := range w.IDs() {
				if p, ok := catalog.ByID(products, id); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s\n", p.ID, p.Name, catalog.FormatPrice(p.Price))
				}
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "add or remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			ctx := cmd.Context()
			w := catalog.LoadWishlist(ctx, app.Store)
			added, err := w.Toggle(ctx, id)
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintln(cmd.OutOrStdout(), "added to wishlist")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "removed from wishlist")
			}
			return nil
		},
	})
	return cmd
}
