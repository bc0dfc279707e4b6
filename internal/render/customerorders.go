package render

import (
	"fmt"
	"strings"

	"github.com/Anhngoc0603/sneakerstore/internal/catalog"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// CustomerOrders is the per-customer order history view.
type CustomerOrders struct {
	CustomerID   int64
	CustomerName string
	Orders       []model.Order
	Spend        float64
	Statuses     map[string]int
}

// OrdersForCustomer filters the order list down to one customer, matched by
// id or by display name, and computes the summary figures.
func OrdersForCustomer(orders []model.Order, id int64, name string) CustomerOrders {
	view := CustomerOrders{
		CustomerID:   id,
		CustomerName: name,
		Statuses:     make(map[string]int),
	}
	for _, o := range orders {
		if !o.MatchesCustomer(id, name) {
			continue
		}
		view.Orders = append(view.Orders, o)
		view.Spend += o.Total
		status := o.Status
		if status == "" {
			status = "Unknown"
		}
		view.Statuses[status]++
	}
	return view
}

// Rows renders the history table body, with a friendly empty-state row when
// the customer has no orders.
func (v CustomerOrders) Rows() string {
	if len(v.Orders) == 0 {
		return `<tr><td colspan="5" class="empty">No orders found for this customer</td></tr>` + "\n"
	}
	var b strings.Builder
	for _, o := range v.Orders {
		items := "-"
		if n := len(o.Items); n > 0 {
			names := make([]string, n)
			for i, it := range o.Items {
				names[i] = fmt.Sprintf("%s ×%d", it.Name, it.Count())
			}
			items = strings.Join(names, ", ")
		}
		status := o.Status
		if status == "" {
			status = "-"
		}
		fmt.Fprintf(&b, `<tr>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
</tr>
`, esc(o.ID), esc(items), catalog.FormatPrice(o.Total), esc(status), esc(o.DisplayETA()))
	}
	return b.String()
}

// Summary renders the header line above the table.
func (v CustomerOrders) Summary() string {
	label := v.CustomerName
	if label == "" {
		label = fmt.Sprintf("Customer #%d", v.CustomerID)
	}
	return fmt.Sprintf(`<div class="summary"><h2>%s</h2><span>%d orders</span><span>%s total spend</span></div>`,
		esc(label), len(v.Orders), catalog.FormatPrice(v.Spend))
}
