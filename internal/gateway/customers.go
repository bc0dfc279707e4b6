package gateway

import (
	"context"
	"fmt"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type Customers struct{ c *core }

func (cu *Customers) List(ctx context.Context) []model.Customer {
	data, _ := cu.c.fetch(ctx,
		cu.c.endpoint("/api/customers"),
		cu.c.file("data/customers.json"),
	)
	if customers := decodeArray[model.Customer](data, "customers", "items"); customers != nil {
		return customers
	}
	return []model.Customer{}
}

func (cu *Customers) Create(ctx context.Context, c model.Customer) error {
	_, err := cu.c.client.do(ctx, "POST", "/api/customers", c)
	return err
}

func (cu *Customers) Update(ctx context.Context, id int64, c model.Customer) error {
	_, err := cu.c.client.do(ctx, "PUT", fmt.Sprintf("/api/customers/%d", id), c)
	return err
}

func (cu *Customers) Remove(ctx context.Context, id int64) {
	if _, err := cu.c.client.do(ctx, "DELETE", fmt.Sprintf("/api/customers/%d", id), nil); err != nil {
		cu.c.log.Debug("delete customer swallowed", "id", id, "error", err)
	}
}

// UpdateProfile saves the signed-in customer's own profile fields.
func (cu *Customers) UpdateProfile(ctx context.Context, fields map[string]string) error {
	_, err := cu.c.client.do(ctx, "PUT", "/api/customers/profile", fields)
	return err
}
