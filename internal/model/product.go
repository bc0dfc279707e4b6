package model

import "time"

// Product is a catalog entry. Fields mirror the shapes accepted from the
// backend and the static JSON feeds, so most of them are optional.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Reviews       int      `json:"reviews,omitempty"`
	Images        []string `json:"images,omitempty"`
	Sizes         []int    `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Category      string   `json:"category,omitempty"`
	Subtype       string   `json:"subtype,omitempty"`
	Description   string   `json:"description,omitempty"`
	Specs         string   `json:"specs,omitempty"`
	Available     bool     `json:"available"`
	Quantity      int      `json:"quantity,omitempty"`
	Stock         int      `json:"stock,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FirstImage returns the primary image URL, or "" when none is set.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// OnSale reports whether the product carries a struck-through original price.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}
