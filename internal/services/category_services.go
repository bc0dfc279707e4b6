package services

import (
	"context"
	"strings"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/repository"
	"github.com/Anhngoc0603/sneakerstore/internal/validate"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(r *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: r}
}

func (s *CategoryService) Create(ctx context.Context, c *model.Category) error {
	if c.ID == "" {
		c.ID = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(c.Name), " ", "-"))
	}
	if err := validate.Category(*c); err != nil {
		return err
	}
	return s.Repo.Create(ctx, c)
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.Repo.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, c *model.Category) error {
	if err := validate.Category(*c); err != nil {
		return err
	}
	return s.Repo.Update(ctx, c)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
