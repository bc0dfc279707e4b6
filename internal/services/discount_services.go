package services

import (
	"context"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/repository"
	"github.com/Anhngoc0603/sneakerstore/internal/validate"
)

type DiscountService struct {
	Repo *repository.DiscountRepository
}

func NewDiscountService(r *repository.DiscountRepository) *DiscountService {
	return &DiscountService{Repo: r}
}

func (s *DiscountService) Create(ctx context.Context, d *model.Discount) error {
	if err := validate.Discount(*d); err != nil {
		return err
	}
	if d.Type == "" {
		d.Type = d.DisplayType()
	}
	return s.Repo.Create(ctx, d)
}

func (s *DiscountService) List(ctx context.Context) ([]model.Discount, error) {
	return s.Repo.List(ctx)
}

func (s *DiscountService) Update(ctx context.Context, code string, d *model.Discount) error {
	if err := validate.Discount(*d); err != nil {
		return err
	}
	return s.Repo.Update(ctx, code, d)
}

func (s *DiscountService) Toggle(ctx context.Context, code string) error {
	return s.Repo.Toggle(ctx, code)
}

func (s *DiscountService) Delete(ctx context.Context, code string) error {
	return s.Repo.Delete(ctx, code)
}
