package services

import (
	"context"
	"errors"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/repository"
)

type SupportService struct {
	Repo *repository.SupportRepository
}

func NewSupportService(r *repository.SupportRepository) *SupportService {
	return &SupportService{Repo: r}
}

func (s *SupportService) List(ctx context.Context) ([]model.SupportTicket, error) {
	return s.Repo.List(ctx)
}

func (s *SupportService) Assign(ctx context.Context, id, assignee string) error {
	if id == "" {
		return errors.New("ticket id is required")
	}
	if assignee == "" {
		assignee = "Admin"
	}
	return s.Repo.Assign(ctx, id, assignee)
}
