package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Discounts has no static fallback feed. When the backend is unreachable a
// small fixed set of segment-based codes is synthesized from whichever
// products are currently on sale. This is presentation-layer emulation of a
// discount engine, not one.
type Discounts struct{ c *core }

func (d *Discounts) List(ctx context.Context) []model.Discount {
	if data, err := d.c.endpoint("/api/discounts")(ctx); err == nil {
		discounts := decodeArray[model.Discount](data, "discounts", "items")
		if discounts == nil {
			discounts = []model.Discount{}
		}
		// backend truth wins; overrides only cover codes the backend
		// has not confirmed yet, which a toggle write always is
		return discounts
	}

	discounts := d.synthesize(ctx)
	overrides := overridesMap[model.DiscountOverride](ctx, d.c, localstore.KeyDiscountOverrides)
	for i, disc := range discounts {
		if ov, ok := overrides[disc.Code]; ok && ov.Active != nil {
			discounts[i].Active = *ov.Active
		}
	}
	return discounts
}

// synthesize builds the demo codes from the sale feed.
func (d *Discounts) synthesize(ctx context.Context) []model.Discount {
	data, _ := d.c.fetch(ctx, d.c.file("sale/products.json"))
	products := decodeProducts(data)

	var saleIDs []int64
	var saleBrands []string
	for _, p := range products {
		if !p.OnSale() {
			continue
		}
		saleIDs = append(saleIDs, p.ID)
		brand := strings.TrimSpace(p.Brand)
		if brand != "" && !contains(saleBrands, brand) {
			saleBrands = append(saleBrands, brand)
		}
	}

	mk := func(code, typ string, value float64, segment, note string) model.Discount {
		disc := model.Discount{
			Code:   code,
			Type:   typ,
			Value:  value,
			Active: true,
			AppliesTo: model.DiscountScope{
				ProductIDs: saleIDs,
				Brands:     saleBrands,
				SaleOnly:   true,
			},
			Conditions: model.DiscountConditions{Segment: segment},
			Note:       note,
		}
		if segment == "loyal_over_100" {
			disc.Conditions.MinLifetimeSpend = 100
		}
		return disc
	}

	return []model.Discount{
		mk("WELCOME10", model.DiscountPercent, 0.10, "first_login", "10% off for first-time login users on sale items"),
		mk("FIRSTBUY15", model.DiscountPercent, 0.15, "first_order", "15% off first purchase, sale items only"),
		mk("BDAY20", model.DiscountPercent, 0.20, "birthday_month", "Celebrate your birthday month with 20% off"),
		mk("LOYAL5", model.DiscountAmount, 5, "loyal_over_100", "$5 off for customers with $100+ past spend"),
	}
}

func (d *Discounts) Create(ctx context.Context, disc model.Discount) error {
	_, err := d.c.client.do(ctx, "POST", "/api/discounts", disc)
	return err
}

func (d *Discounts) Update(ctx context.Context, code string, disc model.Discount) error {
	_, err := d.c.client.do(ctx, "PUT", fmt.Sprintf("/api/discounts/%s", url.PathEscape(code)), disc)
	return err
}

// Toggle flips the active flag. When the backend is unreachable the flip is
// recorded as a local override so it survives reloads.
func (d *Discounts) Toggle(ctx context.Context, code string) {
	_, err := d.c.client.do(ctx, "PUT", fmt.Sprintf("/api/discounts/%s/toggle", url.PathEscape(code)), nil)
	if err == nil {
		return
	}
	for _, disc := range d.List(ctx) {
		if disc.Code != code {
			continue
		}
		flipped := !disc.Active
		putOverride(ctx, d.c, localstore.KeyDiscountOverrides, code, model.DiscountOverride{Active: &flipped})
		return
	}
	d.c.log.Debug("toggle discount swallowed", "code", code, "error", err)
}

func (d *Discounts) Remove(ctx context.Context, code string) {
	if _, err := d.c.client.do(ctx, "DELETE", fmt.Sprintf("/api/discounts/%s", url.PathEscape(code)), nil); err != nil {
		d.c.log.Debug("delete discount swallowed", "code", code, "error", err)
	}
}
