// Package catalog holds the storefront helpers: search, filter, sort and
// display formatting over an in-memory product list.
package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Sort orders accepted by SortBy.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
	SortNewest    = "newest"
)

// ByID finds a product by id.
func ByID(products []model.Product, id int64) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// ByCategory filters by category; "all" returns everything.
func ByCategory(products []model.Product, category string) []model.Product {
	if category == "all" || category == "" {
		return products
	}
	var out []model.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query against name, brand and category,
// case-insensitively.
func Search(products []model.Product, query string) []model.Product {
	q := strings.ToLower(query)
	if q == "" {
		return products
	}
	var out []model.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// SortBy returns a sorted copy; unknown keys keep the featured order.
func SortBy(products []model.Product, key string) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

// DiscountPercent is the rounded percentage off the original price, or 0
// when the product is not discounted.
func DiscountPercent(price, originalPrice float64) int {
	if originalPrice <= price {
		return 0
	}
	return int(math.Round((originalPrice - price) / originalPrice * 100))
}

// FormatPrice renders a price for display with two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// StarRating renders a star string: one full star per whole point, plus a
// half-star marker when the fraction reaches 0.5.
func StarRating(rating float64) string {
	full := int(rating)
	stars := strings.Repeat("★", full)
	if rating-float64(full) >= 0.5 {
		stars += "☆"
	}
	return stars
}
