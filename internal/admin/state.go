// Package admin drives the back-office console: it loads all feeds into a
// shared snapshot and routes (entity, action) commands through a registry.
package admin

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Anhngoc0603/sneakerstore/internal/gateway"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Snapshot is one consistent view of every admin feed.
type Snapshot struct {
	Products   []model.Product
	Orders     []model.Order
	Customers  []model.Customer
	Categories []model.Category
	Discounts  []model.Discount
	Blogs      []model.Blog
	Support    []model.SupportTicket
	Refunds    []model.RefundRequest
}

// State owns the current snapshot. Reload replaces it wholesale; readers
// get a copy of the slice headers so a concurrent reload cannot tear a
// render in half.
type State struct {
	gw  *gateway.Gateway
	log *slog.Logger

	mu   sync.RWMutex
	snap Snapshot
}

func NewState(gw *gateway.Gateway, log *slog.Logger) *State {
	return &State{gw: gw, log: log}
}

// Reload fetches every feed concurrently and swaps in the new snapshot.
// Individual feed failures already degrade to fallbacks inside the
// gateway, so Reload itself cannot fail.
func (s *State) Reload(ctx context.Context) {
	var next Snapshot
	var wg sync.WaitGroup
	load := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	load(func() { next.Products = s.gw.Products.List(ctx) })
	load(func() { next.Orders = s.gw.Orders.List(ctx) })
	load(func() { next.Customers = s.gw.Customers.List(ctx) })
	load(func() { next.Categories = s.gw.Categories.List(ctx) })
	load(func() { next.Discounts = s.gw.Discounts.List(ctx) })
	load(func() { next.Blogs = s.gw.Blogs.List(ctx) })
	load(func() { next.Support = s.gw.Support.List(ctx) })
	load(func() { next.Refunds = s.gw.Refunds.List(ctx) })
	wg.Wait()

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	s.log.Info("admin state reloaded",
		"products", len(next.Products),
		"orders", len(next.Orders),
		"customers", len(next.Customers))
}

// Current returns the latest snapshot.
func (s *State) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Gateway exposes the underlying gateway for action handlers.
func (s *State) Gateway() *gateway.Gateway {
	return s.gw
}
