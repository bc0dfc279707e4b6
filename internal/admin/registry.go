package admin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
	"github.com/Anhngoc0603/sneakerstore/internal/validate"
)

// Args carries the parsed parameters of one console command.
type Args struct {
	ID       string
	Name     string
	Price    float64
	Email    string
	Phone    string
	Title    string
	Body     string
	Author   string
	Code     string
	Type     string
	Value    float64
	Status   string
	Decision string
}

// Handler executes one (entity, action) command against the loaded state.
// A returned error aborts the command; the caller does not reload.
type Handler func(ctx context.Context, st *State, a Args) error

type key struct {
	entity string
	action string
}

// Registry routes console commands to handlers. Every mutating handler
// validates first, then calls the gateway, and the dispatcher reloads the
// snapshot afterwards so the next render reflects the change.
type Registry struct {
	handlers map[key]Handler
}

func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[key]Handler)}
	r.registerDefaults()
	return r
}

func (r *Registry) Register(entity, action string, h Handler) {
	r.handlers[key{entity, action}] = h
}

// Dispatch runs the handler for (entity, action) and reloads the snapshot
// on success.
func (r *Registry) Dispatch(ctx context.Context, st *State, entity, action string, a Args) error {
	h, ok := r.handlers[key{entity, action}]
	if !ok {
		return fmt.Errorf("unknown command %s %s", entity, action)
	}
	if err := h(ctx, st, a); err != nil {
		return err
	}
	st.Reload(ctx)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (r *Registry) registerDefaults() {
	r.Register("product", "create", func(ctx context.Context, st *State, a Args) error {
		p := model.Product{Name: a.Name, Price: a.Price, Available: true}
		if err := validate.Product(p); err != nil {
			return err
		}
		return st.Gateway().Products.Create(ctx, p)
	})
	r.Register("product", "update", func(ctx context.Context, st *State, a Args) error {
		id, err := parseID(a.ID)
		if err != nil {
			return err
		}
		p, ok := findProduct(st.Current().Products, id)
		if !ok {
			return fmt.Errorf("product %d not found", id)
		}
		if a.Name != "" {
			p.Name = a.Name
		}
		if a.Price != 0 {
			p.Price = a.Price
		}
		if err := validate.Product(p); err != nil {
			return err
		}
		return st.Gateway().Products.Update(ctx, id, p)
	})
	r.Register("product", "delete", func(ctx context.Context, st *State, a Args) error {
		id, err := parseID(a.ID)
		if err != nil {
			return err
		}
		st.Gateway().Products.Remove(ctx, id)
		return nil
	})

	r.Register("order", "status", func(ctx context.Context, st *State, a Args) error {
		if a.Status == "" {
			return fmt.Errorf("status is required")
		}
		return st.Gateway().Orders.UpdateStatus(ctx, a.ID, a.Status)
	})

	r.Register("customer", "create", func(ctx context.Context, st *State, a Args) error {
		c := model.Customer{Name: a.Name, Email: a.Email, Phone: a.Phone}
		if err := validate.Customer(c); err != nil {
			return err
		}
		return st.Gateway().Customers.Create(ctx, c)
	})
	r.Register("customer", "update", func(ctx context.Context, st *State, a Args) error {
		id, err := parseID(a.ID)
		if err != nil {
			return err
		}
		c := model.Customer{ID: id, Name: a.Name, Email: a.Email, Phone: a.Phone}
		if err := validate.Customer(c); err != nil {
			return err
		}
		return st.Gateway().Customers.Update(ctx, id, c)
	})
	r.Register("customer", "delete", func(ctx context.Context, st *State, a Args) error {
		id, err := parseID(a.ID)
		if err != nil {
			return err
		}
		st.Gateway().Customers.Remove(ctx, id)
		return nil
	})

	r.Register("category", "create", func(ctx context.Context, st *State, a Args) error {
		c := model.Category{ID: a.ID, Name: a.Title}
		if c.ID == "" {
			c.ID = a.Title
		}
		if err := validate.Category(c); err != nil {
			return err
		}
		return st.Gateway().Categories.Create(ctx, c)
	})
	r.Register("category", "update", func(ctx context.Context, st *State, a Args) error {
		c := model.Category{ID: a.ID, Name: a.Title}
		if err := validate.Category(c); err != nil {
			return err
		}
		return st.Gateway().Categories.Update(ctx, a.ID, c)
	})
	r.Register("category", "delete", func(ctx context.Context, st *State, a Args) error {
		st.Gateway().Categories.Remove(ctx, a.ID)
		return nil
	})

	r.Register("discount", "create", func(ctx context.Context, st *State, a Args) error {
		d := model.Discount{Code: a.Code, Type: a.Type, Value: a.Value, Active: true}
		if err := validate.Discount(d); err != nil {
			return err
		}
		return st.Gateway().Discounts.Create(ctx, d)
	})
	r.Register("discount", "update", func(ctx context.Context, st *State, a Args) error {
		d := model.Discount{Code: a.Code, Type: a.Type, Value: a.Value}
		if err := validate.Discount(d); err != nil {
			return err
		}
		return st.Gateway().Discounts.Update(ctx, a.Code, d)
	})
	r.Register("discount", "toggle", func(ctx context.Context, st *State, a Args) error {
		st.Gateway().Discounts.Toggle(ctx, a.Code)
		return nil
	})
	r.Register("discount", "delete", func(ctx context.Context, st *State, a Args) error {
		st.Gateway().Discounts.Remove(ctx, a.Code)
		return nil
	})

	r.Register("blog", "create", func(ctx context.Context, st *State, a Args) error {
		b := model.Blog{Title: a.Title, Author: a.Author, Body: a.Body}
		if err := validate.Blog(b); err != nil {
			return err
		}
		return st.Gateway().Blogs.Create(ctx, b)
	})
	r.Register("blog", "update", func(ctx context.Context, st *State, a Args) error {
		b := model.Blog{ID: a.ID, Title: a.Title, Author: a.Author, Body: a.Body}
		if err := validate.Blog(b); err != nil {
			return err
		}
		return st.Gateway().Blogs.Update(ctx, a.ID, b)
	})
	r.Register("blog", "delete", func(ctx context.Context, st *State, a Args) error {
		st.Gateway().Blogs.Remove(ctx, a.ID)
		return nil
	})

	r.Register("support", "assign", func(ctx context.Context, st *State, a Args) error {
		st.Gateway().Support.Assign(ctx, a.ID)
		return nil
	})
	r.Register("refund", "review", func(ctx context.Context, st *State, a Args) error {
		st.Gateway().Refunds.Review(ctx, a.ID, a.Decision)
		return nil
	})
}

func findProduct(products []model.Product, id int64) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
