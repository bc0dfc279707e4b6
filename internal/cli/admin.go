package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Anhngoc0603/sneakerstore/internal/admin"
	"github.com/Anhngoc0603/sneakerstore/internal/render"
)

// NewAdminCommand groups the back-office commands: listing tables,
// mutating entities through the registry, and the per-customer order view.
func NewAdminCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "back-office console",
	}
	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newOrdersForCommand(app))

	for _, entity := range []string{"product", "order", "customer", "category", "discount", "blog", "support", "refund"} {
		cmd.AddCommand(newEntityCommand(app, entity))
	}
	return cmd
}

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "list <entity>",
		Short:     "render an entity table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"products", "orders", "customers", "categories", "discounts", "blogs", "support", "refunds"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app.State.Reload(ctx)
			snap := app.State.Current()
			var out string
			switch args[0] {
			case "products":
				out = render.ProductRows(snap.Products)
			case "orders":
				out = render.OrderRows(snap.Orders)
			case "customers":
				out = render.CustomerRows(snap.Customers, snap.Orders)
			case "categories":
				out = render.CategoryItems(snap.Categories)
			case "discounts":
				out = render.DiscountRows(snap.Discounts)
			case "blogs":
				out = render.BlogItems(snap.Blogs)
			case "support":
				out = render.SupportRows(snap.Support)
			case "refunds":
				out = render.RefundRows(snap.Refunds)
			default:
				return fmt.Errorf("unknown entity %q", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// actions per entity mirrors what the registry knows how to dispatch.
var entityActions = map[string][]string{
	"product":  {"create", "update", "delete"},
	"order":    {"status"},
	"customer": {"create", "update", "delete"},
	"category": {"create", "update", "delete"},
	"discount": {"create", "update", "toggle", "delete"},
	"blog":     {"create", "update", "delete"},
	"support":  {"assign"},
	"refund":   {"review"},
}

func newEntityCommand(app *App, entity string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   entity,
		Short: fmt.Sprintf("manage %ss", entity),
	}
	for _, action := range entityActions[entity] {
		cmd.AddCommand(newActionCommand(app, entity, action))
	}
	return cmd
}

func newActionCommand(app *App, entity, action string) *cobra.Command {
	var a admin.Args
	cmd := &cobra.Command{
		Use:   action,
		Short: fmt.Sprintf("%s a %s", action, entity),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reg.Dispatch(cmd.Context(), app.State, entity, action, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: done\n", entity, action)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&a.ID, "id", "", "entity id")
	f.StringVar(&a.Name, "name", "", "name")
	f.Float64Var(&a.Price, "price", 0, "price")
	f.StringVar(&a.Email, "email", "", "email")
	f.StringVar(&a.Phone, "phone", "", "phone")
	f.StringVar(&a.Title, "title", "", "title")
	f.StringVar(&a.Body, "body", "", "body text")
	f.StringVar(&a.Author, "author", "", "author")
	f.StringVar(&a.Code, "code", "", "discount code")
	f.StringVar(&a.Type, "type", "", "discount type (percent|amount)")
	f.Float64Var(&a.Value, "value", 0, "discount value")
	f.StringVar(&a.Status, "status", "", "new status")
	f.StringVar(&a.Decision, "decision", "", "review decision (approve|reject)")
	return cmd
}

func newOrdersForCommand(app *App) *cobra.Command {
	var id int64
	var name string
	cmd := &cobra.Command{
		Use:   "orders-for",
		Short: "order history for one customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == 0 && name == "" {
				return fmt.Errorf("pass --id or --name")
			}
			ctx := cmd.Context()
			orders := app.GW.Orders.List(ctx)
			view := render.OrdersForCustomer(orders, id, name)
			fmt.Fprint(cmd.OutOrStdout(), view.Summary())
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), view.Rows())
			fmt.Fprintf(cmd.OutOrStdout(), "statuses: %s\n", formatCounts(view.Statuses))
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "customer id")
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	return cmd
}

func formatCounts(counts map[string]int) string {
	out := ""
	for _, status := range []string{"Processing", "Shipped", "Delivered", "Cancelled", "Unknown"} {
		if n := counts[status]; n > 0 {
			if out != "" {
				out += ", "
			}
			out += status + "=" + strconv.Itoa(n)
		}
	}
	if out == "" {
		out = "none"
	}
	return out
}
