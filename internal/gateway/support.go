package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Support lists tickets with local overrides merged on top. Overrides never
// replace fields a successful backend response already supplies; they only
// carry state the backend has not confirmed.
type Support struct{ c *core }

func (s *Support) List(ctx context.Context) []model.SupportTicket {
	data, primary := s.c.fetch(ctx,
		s.c.endpoint("/api/support"),
		s.c.file("admin/support.json"),
	)
	tickets := decodeArray[model.SupportTicket](data, "tickets", "items")
	if tickets == nil {
		return []model.SupportTicket{}
	}
	overrides := overridesMap[model.SupportOverride](ctx, s.c, localstore.KeySupportOverrides)
	for i, t := range tickets {
		ov, ok := overrides[t.ID]
		if !ok {
			continue
		}
		tickets[i] = mergeSupport(t, ov, primary)
	}
	return tickets
}

func mergeSupport(base model.SupportTicket, ov model.SupportOverride, primary bool) model.SupportTicket {
	if primary {
		// backend baseline wins; the override only fills gaps
		if base.Status == "" {
			base.Status = ov.Status
		}
		if base.AssignedTo == "" {
			base.AssignedTo = ov.AssignedTo
		}
		if base.UpdatedAt == "" {
			base.UpdatedAt = ov.UpdatedAt
		}
		return base
	}
	if ov.Status != "" {
		base.Status = ov.Status
	}
	if ov.AssignedTo != "" {
		base.AssignedTo = ov.AssignedTo
	}
	if ov.UpdatedAt != "" {
		base.UpdatedAt = ov.UpdatedAt
	}
	return base
}

// Assign hands the ticket to the admin. With no backend the transition is
// written as a local override instead.
func (s *Support) Assign(ctx context.Context, id string) {
	_, err := s.c.client.do(ctx, "PUT", fmt.Sprintf("/api/support/%s/assign", url.PathEscape(id)), nil)
	if err == nil {
		return
	}
	putOverride(ctx, s.c, localstore.KeySupportOverrides, id, model.SupportOverride{
		Status:     "In Progress",
		AssignedTo: "Admin",
		UpdatedAt:  s.c.today(),
	})
}
