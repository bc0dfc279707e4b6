package gateway

import (
	"context"
	"fmt"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Products is the product gateway: backend first, static catalog second.
type Products struct{ c *core }

// List never fails; with no reachable source it returns an empty slice.
func (p *Products) List(ctx context.Context) []model.Product {
	data, _ := p.c.fetch(ctx,
		p.c.endpoint("/api/products"),
		p.c.file("data/products.json"),
	)
	if products := decodeProducts(data); products != nil {
		return products
	}
	return []model.Product{}
}

func (p *Products) Create(ctx context.Context, prod model.Product) error {
	_, err := p.c.client.do(ctx, "POST", "/api/products", prod)
	return err
}

func (p *Products) Update(ctx context.Context, id int64, prod model.Product) error {
	_, err := p.c.client.do(ctx, "PUT", fmt.Sprintf("/api/products/%d", id), prod)
	return err
}

// Remove is a soft action: a failed delete is logged and swallowed.
func (p *Products) Remove(ctx context.Context, id int64) {
	if _, err := p.c.client.do(ctx, "DELETE", fmt.Sprintf("/api/products/%d", id), nil); err != nil {
		p.c.log.Debug("delete product swallowed", "id", id, "error", err)
	}
}
