// Package validate holds the synchronous field-level checks each form runs
// before submission. Every validator returns the first human-readable
// failure; a nil error means the form may be submitted.
package validate

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

var (
	emailRe         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	checkoutPhoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	nonDigitRe      = regexp.MustCompile(`\D`)
)

// Email reports whether s has the local@domain.tld shape.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Product checks an admin product form.
func Product(p model.Product) error {
	if len(strings.TrimSpace(p.Name)) < 2 {
		return errors.New("name must be at least 2 characters")
	}
	if math.IsNaN(p.Price) || p.Price < 0 {
		return errors.New("price must be a non-negative number")
	}
	return nil
}

// Customer checks an admin customer form. Phone is optional, but when
// present must carry at least 9 digits.
func Customer(c model.Customer) error {
	if len(strings.TrimSpace(c.Name)) < 2 {
		return errors.New("name must be at least 2 characters")
	}
	if !Email(c.Email) {
		return errors.New("please enter a valid email address")
	}
	if c.Phone != "" && len(nonDigitRe.ReplaceAllString(c.Phone, "")) < 9 {
		return errors.New("phone number seems invalid")
	}
	return nil
}

// Category checks an admin category form.
func Category(c model.Category) error {
	if len(strings.TrimSpace(c.Name)) < 2 {
		return errors.New("title must be at least 2 characters")
	}
	return nil
}

// Blog checks an admin blog form.
func Blog(b model.Blog) error {
	if len(strings.TrimSpace(b.Title)) < 2 {
		return errors.New("title must be at least 2 characters")
	}
	if len(strings.TrimSpace(b.Body)) < 10 {
		return errors.New("body must be at least 10 characters")
	}
	return nil
}

// Discount checks an admin promotion form.
func Discount(d model.Discount) error {
	if len(strings.TrimSpace(d.Code)) < 2 {
		return errors.New("code must be at least 2 characters")
	}
	if math.IsNaN(d.Value) || d.Value <= 0 {
		return errors.New("value must be a positive number")
	}
	return nil
}

// Checkout checks the checkout form: email and phone shape, zip length,
// required address fields, and a selected payment method.
func Checkout(f model.CheckoutForm) error {
	if !Email(f.Email) {
		return errors.New("please enter a valid email address")
	}
	if !checkoutPhoneRe.MatchString(f.Phone) || len(f.Phone) < 10 {
		return errors.New("please enter a valid phone number")
	}
	if len(f.Zip) < 5 {
		return errors.New("please enter a valid ZIP code")
	}
	required := []struct{ label, value string }{
		{"first name", f.FirstName},
		{"last name", f.LastName},
		{"address", f.Address},
		{"city", f.City},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.label)
		}
	}
	if f.Payment == "" {
		return errors.New("please select a payment method")
	}
	return nil
}
