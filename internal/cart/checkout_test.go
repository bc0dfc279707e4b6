package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

func validForm() model.CheckoutForm {
	return model.CheckoutForm{
		FirstName: "Linh",
		LastName:  "Tran",
		Email:     "linh.tran@example.com",
		Phone:     "+84 912 345 678",
		Address:   "12 Nguyen Hue",
		City:      "Ho Chi Minh City",
		Zip:       "70000",
		Payment:   "card",
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	c := Load(ctx, localstore.NewMemoryStore(), discard())

	_, err := c.Checkout(ctx, validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutRejectsInvalidEmail(t *testing.T) {
	ctx := context.Background()
	c := Load(ctx, localstore.NewMemoryStore(), discard())
	c.Add(ctx, pulse, 42, "#000000")

	form := validForm()
	form.Email = "not-an-email"
	_, err := c.Checkout(ctx, form)
	require.Error(t, err)

	// cart untouched on validation failure
	assert.Equal(t, 1, c.Len())
	assert.Empty(t, c.OrderLog(ctx))
}

func TestCheckoutSynthesizesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()
	c := Load(ctx, store, discard())
	c.Add(ctx, pulse, 42, "#000000")
	c.Add(ctx, pulse, 42, "#000000")
	c.Add(ctx, boost, 43, "#ffffff")

	order, err := c.Checkout(ctx, validForm())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Linh Tran", order.Customer)
	assert.Equal(t, "Processing", order.Status)
	assert.InDelta(t, 129.99*2+179.99, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Count())

	assert.Equal(t, 0, c.Len())

	log := c.OrderLog(ctx)
	require.Len(t, log, 1)
	assert.Equal(t, order.ID, log[0].ID)
}

func TestCheckoutAppendsToExistingLog(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()
	c := Load(ctx, store, discard())

	c.Add(ctx, pulse, 42, "#000000")
	first, err := c.Checkout(ctx, validForm())
	require.NoError(t, err)

	c.Add(ctx, boost, 43, "#ffffff")
	second, err := c.Checkout(ctx, validForm())
	require.NoError(t, err)

	log := c.OrderLog(ctx)
	require.Len(t, log, 2)
	assert.Equal(t, first.ID, log[0].ID)
	assert.Equal(t, second.ID, log[1].ID)
}
