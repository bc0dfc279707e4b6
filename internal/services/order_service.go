package services

import (
	"context"
	"errors"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/repository"
)

// Statuses an order can be moved to from the console.
var orderStatuses = map[string]bool{
	"Processing": true,
	"Shipped":    true,
	"Delivered":  true,
	"Cancelled":  true,
}

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(r *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: r}
}

func (s *OrderService) Create(ctx context.Context, o *model.Order) error {
	if o.ID == "" {
		return errors.New("order id is required")
	}
	if len(o.Items) == 0 {
		return errors.New("order has no items")
	}
	if o.Status == "" {
		o.Status = "Processing"
	}
	return s.Repo.Create(ctx, o)
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.Repo.List(ctx)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	if !orderStatuses[status] {
		return errors.New("invalid order status")
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}
