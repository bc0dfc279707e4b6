package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type Refunds struct{ c *core }

func (r *Refunds) List(ctx context.Context) []model.RefundRequest {
	data, primary := r.c.fetch(ctx,
		r.c.endpoint("/api/refunds"),
		r.c.file("admin/refunds.json"),
	)
	refunds := decodeArray[model.RefundRequest](data, "refunds", "items")
	if refunds == nil {
		return []model.RefundRequest{}
	}
	overrides := overridesMap[model.RefundOverride](ctx, r.c, localstore.KeyRefundOverrides)
	for i, req := range refunds {
		ov, ok := overrides[req.ID]
		if !ok {
			continue
		}
		refunds[i] = mergeRefund(req, ov, primary)
	}
	return refunds
}

func mergeRefund(base model.RefundRequest, ov model.RefundOverride, primary bool) model.RefundRequest {
	if primary {
		if base.Status == "" {
			base.Status = ov.Status
		}
		if base.ResolvedAt == "" {
			base.ResolvedAt = ov.ResolvedAt
		}
		return base
	}
	if ov.Status != "" {
		base.Status = ov.Status
	}
	if ov.ResolvedAt != "" {
		base.ResolvedAt = ov.ResolvedAt
	}
	return base
}

// reviewStatus maps a review decision to the stored status.
func reviewStatus(decision string) string {
	switch decision {
	case "approve":
		return "Approved"
	case "reject":
		return "Rejected"
	default:
		return "Reviewing"
	}
}

// Review records a review decision, falling back to a local override when
// the backend is unreachable.
func (r *Refunds) Review(ctx context.Context, id, decision string) {
	body := map[string]string{"decision": decision}
	_, err := r.c.client.do(ctx, "PUT", fmt.Sprintf("/api/refunds/%s/review", url.PathEscape(id)), body)
	if err == nil {
		return
	}
	putOverride(ctx, r.c, localstore.KeyRefundOverrides, id, model.RefundOverride{
		Status:     reviewStatus(decision),
		ResolvedAt: r.c.today(),
	})
}
