// Package render turns normalized in-memory state into markup fragments.
// Renderers are stateless: they read only the fields they need and fall
// back to "-", "Unknown" or 0 when a field is absent, since upstream data
// may come from the backend, static JSON or synthesized records.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/Anhngoc0603/sneakerstore/internal/catalog"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// ProductRows renders the admin product table body.
func ProductRows(products []model.Product) string {
	var b strings.Builder
	for _, p := range products {
		stock := "Out of stock"
		if p.Available {
			stock = "In stock"
		}
		fmt.Fprintf(&b, `<tr>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>
    <button class="btn" data-action="view" data-id="%d">View</button>
    <button class="btn" data-action="edit" data-id="%d">Edit</button>
    <button class="btn" data-action="delete" data-id="%d">Delete</button>
  </td>
</tr>
`, esc(p.Name), catalog.FormatPrice(p.Price), stock, p.ID, p.ID, p.ID)
	}
	return b.String()
}

// OrderRows renders the admin order table body.
func OrderRows(orders []model.Order) string {
	var b strings.Builder
	for _, o := range orders {
		total := "-"
		if o.Total != 0 {
			total = catalog.FormatPrice(o.Total)
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
  <td>
    <button class="btn" data-action="track" data-id="%s">Track</button>
    <button class="btn" data-action="status" data-id="%s">Update Status</button>
  </td>
</tr>
`, esc(o.ID), esc(o.DisplayCustomer()), total, esc(status), esc(o.DisplayETA()), esc(o.ID), esc(o.ID))
	}
	return b.String()
}

// OrderCounts derives per-customer order counts at render time by matching
// the customer id first and the display name second.
func OrderCounts(orders []model.Order) (byID map[int64]int, byName map[string]int) {
	byID = make(map[int64]int)
	byName = make(map[string]int)
	for _, o := range orders {
		if o.CustomerID != 0 {
			byID[o.CustomerID]++
		}
		if o.Customer != "" {
			byName[o.Customer]++
		}
	}
	return byID, byName
}

// CustomerRows renders the admin customer table body, with an order-count
// badge derived from the loaded orders.
func CustomerRows(customers []model.Customer, orders []model.Order) string {
	byID, byName := OrderCounts(orders)
	var b strings.Builder
	for _, c := range customers {
		count, ok := byID[c.ID]
		if !ok {
			count = byName[c.Name]
		}
		badge := ""
		if count > 0 {
			badge = fmt.Sprintf(`<span class="badge" title="Orders">%d</span>`, count)
		}
		fmt.Fprintf(&b, `<tr>
  <td>%d</td>
  <td><span>%s</span>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>
    <button class="btn" data-action="view-orders" data-id="%d" data-name="%s">View Orders</button>
    <button class="btn" data-action="manage" data-id="%d">Manage</button>
  </td>
</tr>
`, c.ID, esc(c.Name), badge, esc(c.Email), esc(c.Phone), c.ID, esc(c.Name), c.ID)
	}
	return b.String()
}

// CategoryItems renders the category list.
func CategoryItems(categories []model.Category) string {
	var b strings.Builder
	for _, c := range categories {
		id := c.ID
		if id == "" {
			id = c.Name
		}
		fmt.Fprintf(&b, `<li class="list-item">
  <span>%s</span>
  <div class="actions">
    <button class="btn" data-action="edit-category" data-id="%s">Edit</button>
    <button class="btn" data-action="delete-category" data-id="%s">Delete</button>
  </div>
</li>
`, esc(c.DisplayName()), esc(id), esc(id))
	}
	return b.String()
}

// DiscountRows renders the promotion code table body.
func DiscountRows(discounts []model.Discount) string {
	var b strings.Builder
	for _, d := range discounts {
		active := "No"
		if d.Active {
			active = "Yes"
		}
		value := "-"
		if d.Value != 0 {
			value = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", d.Value), "0"), ".")
		}
		fmt.Fprintf(&b, `<tr>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>
    <button class="btn" data-action="toggle-discount" data-code="%s">Toggle</button>
    <button class="btn" data-action="edit-discount" data-code="%s">Edit</button>
    <button class="btn" data-action="delete-discount" data-code="%s">Delete</button>
  </td>
</tr>
`, esc(d.Code), esc(d.DisplayType()), value, active, esc(d.Code), esc(d.Code), esc(d.Code))
	}
	return b.String()
}

// BlogItems renders the blog list.
func BlogItems(blogs []model.Blog) string {
	var b strings.Builder
	for _, blog := range blogs {
		fmt.Fprintf(&b, `<li class="list-item">
  <span>%s by %s</span>
  <div class="actions">
    <button class="btn" data-action="edit-blog" data-id="%s">Edit</button>
    <button class="btn" data-action="delete-blog" data-id="%s">Delete</button>
  </div>
</li>
`, esc(blog.Title), esc(blog.Author), esc(blog.ID), esc(blog.ID))
	}
	return b.String()
}

// SupportRows renders the support ticket table body.
func SupportRows(tickets []model.SupportTicket) string {
	var b strings.Builder
	for _, t := range tickets {
		status := t.Status
		if status == "" {
			status = "Open"
		}
		fmt.Fprintf(&b, `<tr>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td><button class="btn" data-action="assign" data-id="%s">Assign</button></td>
</tr>
`, esc(t.ID), esc(t.DisplayUser()), esc(t.DisplaySubject()), esc(status), esc(t.ID))
	}
	return b.String()
}

// RefundRows renders the refund request table body.
func RefundRows(refunds []model.RefundRequest) string {
	var b strings.Builder
	for _, r := range refunds {
		status := r.Status
		if status == "" {
			status = "Reviewing"
		}
		fmt.Fprintf(&b, `<tr>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td><button class="btn" data-action="review" data-id="%s">Review</button></td>
</tr>
`, esc(r.ID), esc(r.DisplayOrder()), esc(r.Reason), esc(status), esc(r.ID))
	}
	return b.String()
}

// ProductCards renders the storefront shop grid.
func ProductCards(products []model.Product) string {
	var b strings.Builder
	for _, p := range products {
		discount := ""
		if pct := catalog.DiscountPercent(p.Price, p.OriginalPrice); pct > 0 {
			discount = fmt.Sprintf(`<div class="discount-badge">-%d%%</div>`, pct)
		}
		original := ""
		if p.OnSale() {
			original = fmt.Sprintf(`<span class="original-price">%s</span>`, catalog.FormatPrice(p.OriginalPrice))
		}
		fmt.Fprintf(&b, `<div class="product-card" data-id="%d">
  <div class="product-image"><img src="%s" alt="%s">%s</div>
  <div class="product-info">
    <div class="product-brand">%s</div>
    <div class="product-name">%s</div>
    <div class="product-rating"><span class="stars">%s</span><span>%.1f</span><span>(%d)</span></div>
    <div class="product-price"><span class="current-price">%s</span>%s</div>
  </div>
</div>
`, p.ID, esc(p.FirstImage()), esc(p.Name), discount, esc(p.Brand), esc(p.Name),
			catalog.StarRating(p.Rating), p.Rating, p.Reviews, catalog.FormatPrice(p.Price), original)
	}
	return b.String()
}

// CartLines renders the cart sidebar items.
func CartLines(items []model.CartItem) string {
	if len(items) == 0 {
		return `<div class="cart-empty"><p>Your cart is empty</p></div>` + "\n"
	}
	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, `<div class="cart-item" data-index="%d">
  <img src="%s" alt="%s" class="cart-item-image">
  <div class="cart-item-details">
    <div class="cart-item-name">%s</div>
    <div class="cart-item-meta"><span>Size: %d</span><span>|</span><span>Color: %s</span></div>
    <div class="cart-item-price">%s</div>
    <div class="quantity-controls"><span class="quantity-value">%d</span></div>
  </div>
</div>
`, i, esc(it.Image), esc(it.Name), esc(it.Name), it.Size, ColorName(it.Color),
			catalog.FormatPrice(it.Price), it.Quantity)
	}
	return b.String()
}

var colorNames = map[string]string{
	"#000000": "Black",
	"#ffffff": "White",
	"#ef4444": "Red",
	"#3b82f6": "Blue",
	"#10b981": "Green",
	"#f97316": "Orange",
	"#9ca3af": "Gray",
	"#92400e": "Brown",
	"#a855f7": "Purple",
	"#1e40af": "Navy",
	"#f5f5dc": "Cream",
}

// ColorName maps a hex color to its display name, defaulting to "Custom".
func ColorName(hex string) string {
	if name, ok := colorNames[strings.ToLower(hex)]; ok {
		return name
	}
	return "Custom"
}
