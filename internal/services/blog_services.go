package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/repository"
	"github.com/Anhngoc0603/sneakerstore/internal/validate"
)

type BlogService struct {
	Repo *repository.BlogRepository
}

func NewBlogService(r *repository.BlogRepository) *BlogService {
	return &BlogService{Repo: r}
}

func (s *BlogService) Create(ctx context.Context, b *model.Blog) error {
	if err := validate.Blog(*b); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return s.Repo.Create(ctx, b)
}

func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	return s.Repo.List(ctx)
}

func (s *BlogService) Update(ctx context.Context, b *model.Blog) error {
	if err := validate.Blog(*b); err != nil {
		return err
	}
	return s.Repo.Update(ctx, b)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
