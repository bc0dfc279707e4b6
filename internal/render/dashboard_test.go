package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

var chartOrders = []model.Order{
	{ID: "A", Total: 100, PaidAt: "2024-05-14T09:00:00Z", Status: "Delivered"},
	{ID: "B", Total: 50, PaidAt: "2024-05-14T15:00:00Z", Status: "Shipped"},
	{ID: "C", Total: 200, Date: "2024-04-20", Status: "Delivered"},
	{ID: "D", Total: 75, CreatedAt: "2024-01-10T00:00:00Z", Status: "Processing"},
	{ID: "E", Total: 999, Status: "Processing"}, // no parseable date
}

func TestRevenueSeriesWindowing(t *testing.T) {
	week := RevenueSeries(chartOrders, Range7d, GroupDay, now)
	require.Len(t, week, 1)
	assert.Equal(t, "2024-05-14", week[0].Label)
	assert.InDelta(t, 150, week[0].Value, 0.001)

	month := RevenueSeries(chartOrders, Range30d, GroupDay, now)
	require.Len(t, month, 2)
	assert.Equal(t, "2024-04-20", month[0].Label)

	all := RevenueSeries(chartOrders, RangeAll, GroupDay, now)
	assert.Len(t, all, 3)
}

func TestRevenueSeriesMonthBuckets(t *testing.T) {
	points := RevenueSeries(chartOrders, RangeAll, GroupMonth, now)
	require.Len(t, points, 3)
	assert.Equal(t, "2024-01", points[0].Label)
	assert.Equal(t, "2024-04", points[1].Label)
	assert.Equal(t, "2024-05", points[2].Label)
	assert.InDelta(t, 150, points[2].Value, 0.001)
}

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts([]model.Order{
		{Status: "Delivered"}, {Status: "Delivered"}, {Status: "Shipped"}, {},
	})
	assert.Equal(t, 2, counts["Delivered"])
	assert.Equal(t, 1, counts["Shipped"])
	assert.Equal(t, 1, counts["Unknown"])
}

func TestInventoryByCategoryDefaults(t *testing.T) {
	totals := InventoryByCategory([]model.Product{
		{Category: "Running", Quantity: 5},
		{Category: "Running", Stock: 3},
		{Category: "Skate"},
		{},
	})
	assert.Equal(t, 8, totals["Running"])
	assert.Equal(t, 1, totals["Skate"])
	assert.Equal(t, 1, totals["Uncategorized"])
}

func TestSummarize(t *testing.T) {
	stats := Summarize(chartOrders, make([]model.Customer, 3), make([]model.Product, 7))
	assert.InDelta(t, 1424, stats.Revenue, 0.001)
	assert.Equal(t, 5, stats.Orders)
	assert.Equal(t, 3, stats.Customers)
	assert.Equal(t, 7, stats.Products)
}

func TestOrdersForCustomerMatchesIDAndName(t *testing.T) {
	orders := []model.Order{
		{ID: "A", CustomerID: 101, Customer: "Linh Tran", Total: 100, Status: "Delivered"},
		{ID: "B", Customer: "Linh Tran", Total: 50, Status: "Shipped"},
		{ID: "C", CustomerID: 102, Customer: "Marco Ruiz", Total: 75},
	}
	view := OrdersForCustomer(orders, 101, "Linh Tran")
	require.Len(t, view.Orders, 2)
	assert.InDelta(t, 150, view.Spend, 0.001)
	assert.Equal(t, 1, view.Statuses["Delivered"])
	assert.Equal(t, 1, view.Statuses["Shipped"])

	none := OrdersForCustomer(orders, 999, "Nobody")
	assert.Empty(t, none.Orders)
	assert.Contains(t, none.Rows(), "No orders found")
}

func TestOrderCountsFallBackToName(t *testing.T) {
	orders := []model.Order{
		{CustomerID: 101, Customer: "Linh Tran"},
		{Customer: "Linh Tran"},
		{CustomerID: 102},
	}
	byID, byName := OrderCounts(orders)
	assert.Equal(t, 1, byID[101])
	assert.Equal(t, 1, byID[102])
	assert.Equal(t, 2, byName["Linh Tran"])
}
