package model

import (
	"strconv"
	"time"
)

// Order is an order record from checkout, the backend, or the admin fallback
// feeds. Feeds disagree on field names (customer vs customerName, eta vs
// expectedDate), so both spellings are kept and resolved through accessors.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   int64       `json:"customerId,omitempty"`
	Customer     string      `json:"customer,omitempty"`
	CustomerName string      `json:"customerName,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
	Total        float64     `json:"total"`
	Status       string      `json:"status,omitempty"`
	ETA          string      `json:"eta,omitempty"`
	ExpectedDate string      `json:"expectedDate,omitempty"`
	PaidAt       string      `json:"paidAt,omitempty"`
	CreatedAt    string      `json:"createdAt,omitempty"`
	Date         string      `json:"date,omitempty"`
}

// OrderItem is one line of an order. Fallback feeds use either "qty" or
// "quantity"; Count resolves the two.
type OrderItem struct {
	ProductID int64   `json:"id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price,omitempty"`
	Size      int     `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Quantity  int     `json:"quantity,omitempty"`
	Qty       int     `json:"qty,omitempty"`
}

// Count returns the line quantity, defaulting to 1.
func (i OrderItem) Count() int {
	if i.Quantity > 0 {
		return i.Quantity
	}
	if i.Qty > 0 {
		return i.Qty
	}
	return 1
}

// DisplayCustomer returns the best available customer label.
func (o Order) DisplayCustomer() string {
	if o.Customer != "" {
		return o.Customer
	}
	if o.CustomerName != "" {
		return o.CustomerName
	}
	return "-"
}

// DisplayETA returns the delivery estimate under either field name.
func (o Order) DisplayETA() string {
	if o.ETA != "" {
		return o.ETA
	}
	if o.ExpectedDate != "" {
		return o.ExpectedDate
	}
	return "-"
}

// PlacedAt resolves the order timestamp from the first parseable of
// paidAt, createdAt, date, eta, expectedDate.
func (o Order) PlacedAt() (time.Time, bool) {
	for _, s := range []string{o.PaidAt, o.CreatedAt, o.Date, o.ETA, o.ExpectedDate} {
		if s == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, true
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MatchesCustomer reports whether the order belongs to the customer
// identified by id or display name. Matching by name covers feeds that
// carry no customer id.
func (o Order) MatchesCustomer(id int64, name string) bool {
	if id != 0 && o.CustomerID == id {
		return true
	}
	if name != "" && o.DisplayCustomer() == name {
		return true
	}
	// some feeds encode the id as the customer label
	if id != 0 && o.Customer == strconv.FormatInt(id, 10) {
		return true
	}
	return false
}
