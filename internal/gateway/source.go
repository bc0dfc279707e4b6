package gateway

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
)

// Source yields the raw payload of one alternative location for a feed.
// Sources are tried in priority order until one resolves.
type Source func(ctx context.Context) ([]byte, error)

// endpoint is the primary backend source for a read path.
func (c *core) endpoint(path string) Source {
	return func(ctx context.Context) ([]byte, error) {
		return c.client.do(ctx, "GET", path, nil)
	}
}

// file is a static JSON fallback source under the data directory.
func (c *core) file(path string) Source {
	return func(context.Context) ([]byte, error) {
		return fs.ReadFile(c.fsys, path)
	}
}

// core holds everything the per-entity gateways share.
type core struct {
	client *Client
	fsys   fs.FS
	store  localstore.Store
	log    *slog.Logger
	now    func() time.Time
}

// fetch runs the source chain. It returns the first payload that resolves,
// and whether that payload came from the first (primary) source. When every
// source fails the payload is nil; callers turn that into an empty list.
func (c *core) fetch(ctx context.Context, sources ...Source) (data []byte, primary bool) {
	for i, src := range sources {
		data, err := src(ctx)
		if err == nil {
			return data, i == 0
		}
		c.log.Debug("data source failed", "index", i, "error", err)
	}
	return nil, false
}

// today formats the current date the way override timestamps are stored.
func (c *core) today() string {
	return c.now().Format("2006-01-02")
}

// Gateway bundles the per-entity gateways over one shared core.
type Gateway struct {
	Products   *Products
	Orders     *Orders
	Customers  *Customers
	Categories *Categories
	Discounts  *Discounts
	Blogs      *Blogs
	Support    *Support
	Refunds    *Refunds
}

// New wires the entity gateways. fallback is the root of the static data
// directory; store persists override patches between runs.
func New(client *Client, fallback fs.FS, store localstore.Store, log *slog.Logger) *Gateway {
	c := &core{client: client, fsys: fallback, store: store, log: log, now: time.Now}
	return &Gateway{
		Products:   &Products{c},
		Orders:     &Orders{c},
		Customers:  &Customers{c},
		Categories: &Categories{c},
		Discounts:  &Discounts{c},
		Blogs:      &Blogs{c},
		Support:    &Support{c},
		Refunds:    &Refunds{c},
	}
}
