package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Orders reads from the backend, then the admin order feed, then the legacy
// checkout feed.
type Orders struct{ c *core }

func (o *Orders) List(ctx context.Context) []model.Order {
	data, _ := o.c.fetch(ctx,
		o.c.endpoint("/api/orders"),
		o.c.file("data/orders.json"),
		o.c.file("cart/orderData.json"),
	)
	if orders := decodeOrders(data); orders != nil {
		return orders
	}
	return []model.Order{}
}

// UpdateStatus sets the free-text status of one order.
func (o *Orders) UpdateStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	_, err := o.c.client.do(ctx, "PUT", fmt.Sprintf("/api/orders/%s", url.PathEscape(id)), body)
	return err
}
