package catalog

import (
	"context"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
)

// Wishlist is the persisted set of wishlisted product ids.
type Wishlist struct {
	store localstore.Store
	ids   []int64
}

func LoadWishlist(ctx context.Context, store localstore.Store) *Wishlist {
	w := &Wishlist{store: store}
	// a missing or corrupt list loads as empty
	w.store.Get(ctx, localstore.KeyWishlist, &w.ids)
	return w
}

// Toggle adds the id if absent and removes it if present, reporting whether
// the id is in the wishlist afterwards.
func (w *Wishlist) Toggle(ctx context.Context, id int64) (bool, error) {
	for i, v := range w.ids {
		if v == id {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return false, w.store.Set(ctx, localstore.KeyWishlist, w.ids)
		}
	}
	w.ids = append(w.ids, id)
	return true, w.store.Set(ctx, localstore.KeyWishlist, w.ids)
}

// Contains reports whether the id is wishlisted.
func (w *Wishlist) Contains(id int64) bool {
	for _, v := range w.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns the wishlisted ids in insertion order.
func (w *Wishlist) IDs() []int64 {
	out := make([]int64, len(w.ids))
	copy(out, w.ids)
	return out
}
