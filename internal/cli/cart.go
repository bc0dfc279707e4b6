package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Anhngoc0603/sneakerstore/internal/cart"
	"github.com/Anhngoc0603/sneakerstore/internal/catalog"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/render"
)

// NewCartCommand covers the cart: add, show, remove, quantity, clear.
func NewCartCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "manage the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := cart.Load(ctx, app.Store, app.Log)
			fmt.Fprint(cmd.OutOrStdout(), render.CartLines(c.Items()))
			fmt.Fprintf(cmd.OutOrStdout(), "%d items, total %s\n", c.Count(), catalog.FormatPrice(c.Total()))
			return nil
		},
	}
	cmd.AddCommand(newCartAddCommand(app))
	cmd.AddCommand(newCartRemoveCommand(app))
	cmd.AddCommand(newCartQtyCommand(app))
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cart.Load(ctx, app.Store, app.Log).Clear(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
			return nil
		},
	})
	return cmd
}

func newCartAddCommand(app *App) *cobra.Command {
	var size int
	var color string
	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "add a product to the cart",
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
			if size == 0 && len(p.Sizes) > 0 {
				size = p.Sizes[0]
			}
			if color == "" && len(p.Colors) > 0 {
				color = p.Colors[0]
			}
			c := cart.Load(ctx, app.Store, app.Log)
			c.Add(ctx, p, size, color)
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (size %d, %s), cart has %d items\n",
				p.Name, size, render.ColorName(color), c.Count())
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "shoe size")
	cmd.Flags().StringVar(&color, "color", "", "color hex")
	return cmd
}

func newCartRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			ctx := cmd.Context()
			c := cart.Load(ctx, app.Store, app.Log)
			c.Remove(ctx, index)
			fmt.Fprintf(cmd.OutOrStdout(), "cart has %d items\n", c.Count())
			return nil
		},
	}
}

func newCartQtyCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "qty <index> <n>",
		Short: "set a line quantity (0 removes)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			ctx := cmd.Context()
			c := cart.Load(ctx, app.Store, app.Log)
			c.SetQuantity(ctx, index, n)
			fmt.Fprintf(cmd.OutOrStdout(), "cart has %d items, total %s\n", c.Count(), catalog.FormatPrice(c.Total()))
			return nil
		},
	}
}

// NewCheckoutCommand turns the cart into an order.
func NewCheckoutCommand(app *App) *cobra.Command {
	var form model.CheckoutForm
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "place an order from the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := cart.Load(ctx, app.Store, app.Log)
			order, err := c.Checkout(ctx, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s placed, total %s\n", order.ID, catalog.FormatPrice(order.Total))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.FirstName, "first-name", "", "first name")
	f.StringVar(&form.LastName, "last-name", "", "last name")
	f.StringVar(&form.Email, "email", "", "email")
	f.StringVar(&form.Phone, "phone", "", "phone")
	f.StringVar(&form.Address, "address", "", "street address")
	f.StringVar(&form.City, "city", "", "city")
	f.StringVar(&form.Zip, "zip", "", "zip code")
	f.StringVar(&form.Payment, "payment", "", "payment method")
	return cmd
}
