package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Anhngoc0603/sneakerstore/internal/catalog"
	"github.com/Anhngoc0603/sneakerstore/internal/render"
)

// NewDashboardCommand prints the headline stats and the chart series the
// admin dashboard is built from.
func NewDashboardCommand(app *App) *cobra.Command {
	var rng, group string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "revenue, status and inventory overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app.State.Reload(ctx)
			snap := app.State.Current()
			out := cmd.OutOrStdout()

			stats := render.Summarize(snap.Orders, snap.Customers, snap.Products)
			fmt.Fprintf(out, "revenue %s | orders %d | customers %d | products %d\n\n",
				catalog.FormatPrice(stats.Revenue), stats.Orders, stats.Customers, stats.Products)

			fmt.Fprintf(out, "revenue (%s, by %s):\n", rng, group)
			for _, p := range render.RevenueSeries(snap.Orders, render.Range(rng), render.Grouping(group), time.Now()) {
				fmt.Fprintf(out, "  %s  %s\n", p.Label, catalog.FormatPrice(p.Value))
			}

			fmt.Fprintln(out, "\norder statuses:")
			printCounts(cmd, render.StatusCounts(snap.Orders))

			fmt.Fprintln(out, "\ninventory by category:")
			printCounts(cmd, render.InventoryByCategory(snap.Products))
			return nil
		},
	}
	cmd.Flags().StringVar(&rng, "range", string(render.Range30d), "window (7d|30d|90d|all)")
	cmd.Flags().StringVar(&group, "group", string(render.GroupDay), "bucket (day|month)")
	return cmd
}

func printCounts(cmd *cobra.Command, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %d\n", k, counts[k])
	}
}
