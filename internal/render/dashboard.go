package render

import (
	"sort"
	"time"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

// Range selects how far back the revenue chart looks.
type Range string

const (
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range90d Range = "90d"
	RangeAll Range = "all"
)

// Grouping of revenue buckets. Day buckets are keyed "2006-01-02",
// month buckets "2006-01".
type Grouping string

const (
	GroupDay   Grouping = "day"
	GroupMonth Grouping = "month"
)

// Point is one chart bucket.
type Point struct {
	Label string
	Value float64
}

func (r Range) cutoff(now time.Time) (time.Time, bool) {
	switch r {
	case Range7d:
		return now.AddDate(0, 0, -7), true
	case Range30d:
		return now.AddDate(0, 0, -30), true
	case Range90d:
		return now.AddDate(0, 0, -90), true
	default:
		return time.Time{}, false
	}
}

// RevenueSeries sums order totals into date buckets for the dashboard
// chart. Orders without a parseable date are skipped; buckets come back
// sorted by label, which sorts chronologically for both groupings.
func RevenueSeries(orders []model.Order, rng Range, group Grouping, now time.Time) []Point {
	cutoff, bounded := rng.cutoff(now)
	layout := "2006-01-02"
	if group == GroupMonth {
		layout = "2006-01"
	}
	buckets := make(map[string]float64)
	for _, o := range orders {
		placed, ok := o.PlacedAt()
		if !ok {
			continue
		}
		if bounded && placed.Before(cutoff) {
			continue
		}
		buckets[placed.Format(layout)] += o.Total
	}
	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	points := make([]Point, len(labels))
	for i, label := range labels {
		points[i] = Point{Label: label, Value: buckets[label]}
	}
	return points
}

// StatusCounts tallies orders per status for the status doughnut.
// Blank statuses count under "Unknown".
func StatusCounts(orders []model.Order) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		status := o.Status
		if status == "" {
			status = "Unknown"
		}
		counts[status]++
	}
	return counts
}

// InventoryByCategory sums stock units per category. A product without a
// quantity falls back to its stock count, and to 1 so every listed
// product registers on the chart.
func InventoryByCategory(products []model.Product) map[string]int {
	totals := make(map[string]int)
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = "Uncategorized"
		}
		units := p.Quantity
		if units == 0 {
			units = p.Stock
		}
		if units == 0 {
			units = 1
		}
		totals[category] += units
	}
	return totals
}

// Stats are the dashboard headline numbers.
type Stats struct {
	Revenue   float64
	Orders    int
	Customers int
	Products  int
}

// Summarize computes the headline cards from loaded state.
func Summarize(orders []model.Order, customers []model.Customer, products []model.Product) Stats {
	s := Stats{
		Orders:    len(orders),
		Customers: len(customers),
		Products:  len(products),
	}
	for _, o := range orders {
		s.Revenue += o.Total
	}
	return s
}
