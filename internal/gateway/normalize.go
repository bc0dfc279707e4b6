package gateway

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// decodeArray accepts either a bare JSON array or an object wrapping the
// array under one of the given field names, and normalizes both to a slice.
func decodeArray[T any](data []byte, keys ...string) []T {
	if len(data) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err == nil {
		return out
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil
	}
	for _, k := range keys {
		raw, ok := wrapper[k]
		if !ok {
			continue
		}
		out = nil
		if err := json.Unmarshal(raw, &out); err == nil && out != nil {
			return out
		}
	}
	return nil
}

func decodeProducts(data []byte) []model.Product {
	return decodeArray[model.Product](data, "products", "items")
}

// decodeOrders additionally accepts an object keyed by order id, which one
// of the legacy order feeds uses. Map entries come back sorted by key so
// the result is deterministic.
func decodeOrders(data []byte) []model.Order {
	if out := decodeArray[model.Order](data, "orders", "items"); out != nil {
		return out
	}
	var byID map[string]model.Order
	if err := json.Unmarshal(data, &byID); err != nil || len(byID) == 0 {
		return nil
	}
	keys := make([]string, 0, len(byID))
	for k := range byID {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]model.Order, 0, len(keys))
	for _, k := range keys {
		out = append(out, byID[k])
	}
	return out
}

// decodeCategories accepts a category array (bare or wrapped) and, failing
// that, derives categories from a product feed.
func decodeCategories(data []byte) []model.Category {
	if out := decodeArray[model.Category](data, "categories", "items"); isCategoryList(out) {
		return out
	}
	if products := decodeProducts(data); products != nil {
		return deriveCategories(products)
	}
	return nil
}

// isCategoryList guards against a product feed decoding "successfully" into
// category structs with empty names.
func isCategoryList(cats []model.Category) bool {
	if cats == nil {
		return false
	}
	for _, c := range cats {
		if c.Name != "" || c.ID != "" {
			return true
		}
	}
	return len(cats) == 0
}

// deriveCategories builds the category list from product category/subtype
// fields: one entry per distinct name in first-seen order, tags accumulating
// the distinct subtypes seen under that name.
func deriveCategories(products []model.Product) []model.Category {
	index := make(map[string]int)
	var out []model.Category
	for _, p := range products {
		name := strings.TrimSpace(p.Category)
		if name == "" {
			name = "Uncategorized"
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, model.Category{ID: name, Name: name})
		}
		subtype := strings.TrimSpace(p.Subtype)
		if subtype == "" {
			continue
		}
		if !contains(out[i].Tags, subtype) {
			out[i].Tags = append(out[i].Tags, subtype)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
