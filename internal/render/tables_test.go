package render

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

func TestProductRowsGolden(t *testing.T) {
	g := goldie.New(t)
	out := ProductRows([]model.Product{
		{ID: 1, Name: "Air Zoom Pulse", Price: 129.99, Available: true},
		{ID: 8, Name: "Fresh Foam X Peak", Price: 134.99},
	})
	g.Assert(t, "product_rows", []byte(out))
}

func TestOrderRowsGolden(t *testing.T) {
	g := goldie.New(t)
	out := OrderRows([]model.Order{
		{ID: "ORD-1", Customer: "Linh Tran", Total: 129.99, Status: "Delivered", ETA: "2024-05-02"},
		{ID: "ORD-2"}, // all optional fields missing
	})
	g.Assert(t, "order_rows", []byte(out))
}

func TestSupportRowsGolden(t *testing.T) {
	g := goldie.New(t)
	out := SupportRows([]model.SupportTicket{
		{ID: "SUP-301", User: "Linh Tran", Subject: "Wrong size"},
		{ID: "SUP-303", Customer: "Aisha Bello", Title: "Loyalty question", Status: "In Progress"},
	})
	g.Assert(t, "support_rows", []byte(out))
}

func TestCartLinesEmptyState(t *testing.T) {
	out := CartLines(nil)
	assert.Contains(t, out, "Your cart is empty")
}

func TestRenderersEscapeHTML(t *testing.T) {
	out := ProductRows([]model.Product{{ID: 1, Name: `<script>alert("x")</script>`, Price: 1}})
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestCustomerRowsOrderBadge(t *testing.T) {
	customers := []model.Customer{
		{ID: 101, Name: "Linh Tran", Email: "linh@example.com"},
		{ID: 105, Name: "Yuki Sato", Email: "yuki@example.com"},
	}
	orders := []model.Order{
		{CustomerID: 101}, {CustomerID: 101}, {Customer: "Yuki Sato"},
	}
	out := CustomerRows(customers, orders)
	assert.Contains(t, out, `title="Orders">2</span>`)
	assert.Contains(t, out, `title="Orders">1</span>`)
}

func TestDiscountRowsValueFormatting(t *testing.T) {
	out := DiscountRows([]model.Discount{
		{Code: "WELCOME10", Value: 0.10, Active: true},
		{Code: "LOYAL5", Type: "amount", Value: 5},
	})
	assert.Contains(t, out, "WELCOME10")
	assert.Contains(t, out, "percent")
	assert.Contains(t, out, ">0.1<")
	assert.Contains(t, out, ">5<")
	assert.Contains(t, out, ">Yes<")
	assert.Contains(t, out, ">No<")
}

func TestProductCardsDiscountBadge(t *testing.T) {
	out := ProductCards([]model.Product{
		{ID: 1, Name: "Air Zoom Pulse", Brand: "Nike", Price: 129.99, OriginalPrice: 159.99, Rating: 4.6, Reviews: 214},
	})
	assert.Contains(t, out, "-19%")
	assert.Contains(t, out, "original-price")
	assert.Equal(t, 1, strings.Count(out, "product-card"))
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "Black", ColorName("#000000"))
	assert.Equal(t, "Navy", ColorName("#1E40AF"))
	assert.Equal(t, "Custom", ColorName("#123456"))
}
