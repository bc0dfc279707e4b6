// Package cart is the cart/checkout engine: an ordered list of line items
// keyed by (product id, size, color), persisted to the local store after
// every mutation.
package cart

import (
	"context"
	"log/slog"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Cart owns the line items. It is not safe for concurrent use; the UI layer
// runs mutations one at a time.
type Cart struct {
	store localstore.Store
	log   *slog.Logger
	items []model.CartItem
}

// Load restores the cart from the store. A missing or corrupt record starts
// an empty cart.
func Load(ctx context.Context, store localstore.Store, log *slog.Logger) *Cart {
	c := &Cart{store: store, log: log}
	if _, err := store.Get(ctx, localstore.KeyCart, &c.items); err != nil {
		log.Warn("load cart", "error", err)
	}
	return c
}

func (c *Cart) save(ctx context.Context) {
	if err := c.store.Set(ctx, localstore.KeyCart, c.items); err != nil {
		c.log.Warn("persist cart", "error", err)
	}
}

// Items returns a copy of the line items in order.
func (c *Cart) Items() []model.CartItem {
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines (not units).
func (c *Cart) Len() int {
	return len(c.items)
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Total sums price times quantity over all lines.
func (c *Cart) Total() float64 {
	sum := 0.0
	for _, it := range c.items {
		sum += it.Subtotal()
	}
	return sum
}

// Add puts one unit of (product, size, color) in the cart. An existing line
// with the same key gets its quantity bumped instead of a duplicate line.
// Add always succeeds.
func (c *Cart) Add(ctx context.Context, p model.Product, size int, color string) {
	for i, it := range c.items {
		if it.ProductID == p.ID && it.Size == size && it.Color == color {
			c.items[i].Quantity++
			c.save(ctx)
			return
		}
	}
	c.items = append(c.items, model.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Price:     p.Price,
		Image:     p.FirstImage(),
		Size:      size,
		Color:     color,
		Quantity:  1,
	})
	c.save(ctx)
}

// Remove deletes the line at index. Out-of-range indexes are ignored.
func (c *Cart) Remove(ctx context.Context, index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.save(ctx)
}

// SetQuantity sets the quantity of the line at index; n <= 0 removes it.
func (c *Cart) SetQuantity(ctx context.Context, index, n int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	if n <= 0 {
		c.Remove(ctx, index)
		return
	}
	c.items[index].Quantity = n
	c.save(ctx)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) {
	c.items = nil
	c.save(ctx)
}
