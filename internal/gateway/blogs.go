package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Blogs has no fallback feed: without a backend the list is just empty.
type Blogs struct{ c *core }

func (b *Blogs) List(ctx context.Context) []model.Blog {
	data, _ := b.c.fetch(ctx, b.c.endpoint("/api/blogs"))
	if blogs := decodeArray[model.Blog](data, "blogs", "items"); blogs != nil {
		return blogs
	}
	return []model.Blog{}
}

func (b *Blogs) Create(ctx context.Context, blog model.Blog) error {
	_, err := b.c.client.do(ctx, "POST", "/api/blogs", blog)
	return err
}

func (b *Blogs) Update(ctx context.Context, id string, blog model.Blog) error {
	_, err := b.c.client.do(ctx, "PUT", fmt.Sprintf("/api/blogs/%s", url.PathEscape(id)), blog)
	return err
}

func (b *Blogs) Remove(ctx context.Context, id string) {
	if _, err := b.c.client.do(ctx, "DELETE", fmt.Sprintf("/api/blogs/%s", url.PathEscape(id)), nil); err != nil {
		b.c.log.Debug("delete blog swallowed", "id", id, "error", err)
	}
}
