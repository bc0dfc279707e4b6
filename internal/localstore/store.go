// Package localstore is the local persistence adapter: key-value storage
// with JSON-encoded values, standing in for browser local storage. Values
// live under fixed key names; corrupt persisted JSON is treated as absent
// rather than surfaced as an error.
package localstore

import "context"

// Fixed key names shared by the cart, auth and admin layers.
const (
	KeyCurrentUser       = "currentUser"
	KeyUsers             = "users"
	KeyCart              = "cart"
	KeyWishlist          = "wishlist"
	KeyOrders            = "orders"
	KeySupportOverrides  = "admin.supportOverrides"
	KeyRefundOverrides   = "admin.refundOverrides"
	KeyDiscountOverrides = "admin.discountOverrides"
)

// Store is a key-value store with JSON encoding.
//
// Get decodes the value under key into out and reports whether a usable
// value was found. A missing key or an undecodable value both report false
// with a nil error; out is left untouched in that case.
type Store interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}
