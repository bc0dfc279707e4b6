package services

import (
	"context"
	"errors"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/repository"
)

type RefundService struct {
	Repo *repository.RefundRepository
}

func NewRefundService(r *repository.RefundRepository) *RefundService {
	return &RefundService{Repo: r}
}

func (s *RefundService) List(ctx context.Context) ([]model.RefundRequest, error) {
	return s.Repo.List(ctx)
}

// Review resolves a request. Decisions other than approve/reject park the
// request in Reviewing.
func (s *RefundService) Review(ctx context.Context, id, decision string) error {
	if id == "" {
		return errors.New("refund id is required")
	}
	status := "Reviewing"
	switch decision {
	case "approve":
		status = "Approved"
	case "reject":
		status = "Rejected"
	}
	return s.Repo.SetStatus(ctx, id, status)
}
