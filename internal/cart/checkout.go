package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/validate"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// Checkout validates the customer form and, if valid, synthesizes an order
// from the cart, appends it to the locally persisted order log and clears
// the cart. Order placement is a client-only simulation: no backend call is
// needed for it to succeed. On validation failure nothing is written and
// the cart is left untouched.
func (c *Cart) Checkout(ctx context.Context, form model.CheckoutForm) (*model.Order, error) {
	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validate.Checkout(form); err != nil {
		return nil, err
	}

	order := model.Order{
		ID:       uuid.NewString(),
		Customer: form.FullName(),
		Items:    orderItems(c.items),
		Total:    c.Total(),
		Status:   "Processing",
		Date:     time.Now().Format(time.RFC3339),
	}

	var orders []model.Order
	if _, err := c.store.Get(ctx, localstore.KeyOrders, &orders); err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := c.store.Set(ctx, localstore.KeyOrders, orders); err != nil {
		return nil, err
	}

	c.Clear(ctx)
	return &order, nil
}

// OrderLog returns the locally persisted orders placed through checkout.
func (c *Cart) OrderLog(ctx context.Context) []model.Order {
	var orders []model.Order
	if _, err := c.store.Get(ctx, localstore.KeyOrders, &orders); err != nil {
		c.log.Warn("load order log", "error", err)
	}
	return orders
}

func orderItems(items []model.CartItem) []model.OrderItem {
	out := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
		})
	}
	return out
}
