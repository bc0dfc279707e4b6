package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"linh.tran@example.com", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"user@domain", false},
		{"two words@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, Email(tt.in), "email %q", tt.in)
	}
}

func TestProduct(t *testing.T) {
	assert.NoError(t, Product(model.Product{Name: "Air Zoom Pulse", Price: 129.99}))
	assert.NoError(t, Product(model.Product{Name: "OK", Price: 0}))
	assert.Error(t, Product(model.Product{Name: "X", Price: 10}))
	assert.Error(t, Product(model.Product{Name: "  a  ", Price: 10}))
	assert.Error(t, Product(model.Product{Name: "Air Zoom Pulse", Price: -1}))
}

func TestCustomer(t *testing.T) {
	valid := model.Customer{Name: "Linh Tran", Email: "linh@example.com", Phone: "+84 912 345 678"}
	assert.NoError(t, Customer(valid))

	noPhone := valid
	noPhone.Phone = ""
	assert.NoError(t, Customer(noPhone))

	shortPhone := valid
	shortPhone.Phone = "12345"
	assert.Error(t, Customer(shortPhone))

	badEmail := valid
	badEmail.Email = "nope"
	assert.Error(t, Customer(badEmail))

	shortName := valid
	shortName.Name = "L"
	assert.Error(t, Customer(shortName))
}

func TestCategoryAndBlog(t *testing.T) {
	assert.NoError(t, Category(model.Category{Name: "Running"}))
	assert.Error(t, Category(model.Category{Name: "R"}))

	assert.NoError(t, Blog(model.Blog{Title: "Lacing guide", Body: "A long enough body text."}))
	assert.Error(t, Blog(model.Blog{Title: "Lacing guide", Body: "short"}))
	assert.Error(t, Blog(model.Blog{Title: "L", Body: "A long enough body text."}))
}

func TestDiscount(t *testing.T) {
	assert.NoError(t, Discount(model.Discount{Code: "WELCOME10", Value: 0.10}))
	assert.Error(t, Discount(model.Discount{Code: "W", Value: 0.10}))
	assert.Error(t, Discount(model.Discount{Code: "WELCOME10", Value: 0}))
	assert.Error(t, Discount(model.Discount{Code: "WELCOME10", Value: -5}))
}

func TestCheckout(t *testing.T) {
	valid := model.CheckoutForm{
		FirstName: "Linh",
		LastName:  "Tran",
		Email:     "linh@example.com",
		Phone:     "+84 912 345 678",
		Address:   "12 Nguyen Hue",
		City:      "Ho Chi Minh City",
		Zip:       "70000",
		Payment:   "card",
	}
	assert.NoError(t, Checkout(valid))

	tests := []struct {
		name   string
		mutate func(*model.CheckoutForm)
	}{
		{"bad email", func(f *model.CheckoutForm) { f.Email = "nope" }},
		{"phone with letters", func(f *model.CheckoutForm) { f.Phone = "call me maybe" }},
		{"phone too short", func(f *model.CheckoutForm) { f.Phone = "12345" }},
		{"short zip", func(f *model.CheckoutForm) { f.Zip = "123" }},
		{"missing first name", func(f *model.CheckoutForm) { f.FirstName = " " }},
		{"missing address", func(f *model.CheckoutForm) { f.Address = "" }},
		{"missing city", func(f *model.CheckoutForm) { f.City = "" }},
		{"no payment", func(f *model.CheckoutForm) { f.Payment = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			assert.Error(t, Checkout(form))
		})
	}
}
