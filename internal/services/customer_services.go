package services

import (
	"context"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/repository"
	"github.com/Anhngoc0603/sneakerstore/internal/validate"
)

type CustomerService struct {
	Repo *repository.CustomerRepository
}

func NewCustomerService(r *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: r}
}

func (s *CustomerService) Create(ctx context.Context, c *model.Customer) (int64, error) {
	if err := validate.Customer(*c); err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, c)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *CustomerService) Update(ctx context.Context, c *model.Customer) error {
	if err := validate.Customer(*c); err != nil {
		return err
	}
	return s.Repo.Update(ctx, c)
}

// UpdateProfile patches only the provided fields of the customer row.
func (s *CustomerService) UpdateProfile(ctx context.Context, id int64, fields map[string]string) error {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v, ok := fields["name"]; ok {
		c.Name = v
	}
	if v, ok := fields["email"]; ok {
		c.Email = v
	}
	if v, ok := fields["phone"]; ok {
		c.Phone = v
	}
	if err := validate.Customer(*c); err != nil {
		return err
	}
	return s.Repo.Update(ctx, c)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
