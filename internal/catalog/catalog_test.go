package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

var products = []model.Product{
	{ID: 1, Name: "Air Zoom Pulse", Brand: "Nike", Price: 129.99, OriginalPrice: 159.99, Rating: 4.6, Category: "Running"},
	{ID: 2, Name: "UltraBoost Street", Brand: "Adidas", Price: 179.99, Rating: 4.8, Category: "Lifestyle"},
	{ID: 3, Name: "Trail Ridge GTX", Brand: "Salomon", Price: 149.99, Rating: 4.4, Category: "Running"},
	{ID: 4, Name: "Court Classic 77", Brand: "Nike", Price: 89.99, Rating: 4.2, Category: "Lifestyle"},
}

func TestByCategory(t *testing.T) {
	assert.Len(t, ByCategory(products, "all"), 4)
	assert.Len(t, ByCategory(products, ""), 4)
	running := ByCategory(products, "Running")
	require.Len(t, running, 2)
	assert.Equal(t, int64(1), running[0].ID)
	assert.Empty(t, ByCategory(products, "Skate"))
}

func TestSearchMatchesNameBrandCategory(t *testing.T) {
	assert.Len(t, Search(products, "nike"), 2)
	assert.Len(t, Search(products, "TRAIL"), 1)
	assert.Len(t, Search(products, "lifestyle"), 2)
	assert.Len(t, Search(products, ""), 4)
	assert.Empty(t, Search(products, "sandal"))
}

func TestSortBy(t *testing.T) {
	low := SortBy(products, SortPriceLow)
	assert.Equal(t, int64(4), low[0].ID)
	high := SortBy(products, SortPriceHigh)
	assert.Equal(t, int64(2), high[0].ID)
	rating := SortBy(products, SortRating)
	assert.Equal(t, int64(2), rating[0].ID)
	name := SortBy(products, SortName)
	assert.Equal(t, "Air Zoom Pulse", name[0].Name)
	newest := SortBy(products, SortNewest)
	assert.Equal(t, int64(4), newest[0].ID)

	// unknown key keeps the incoming order and does not mutate the input
	same := SortBy(products, "bogus")
	assert.Equal(t, int64(1), same[0].ID)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 19, DiscountPercent(129.99, 159.99))
	assert.Equal(t, 0, DiscountPercent(129.99, 0))
	assert.Equal(t, 0, DiscountPercent(129.99, 129.99))
	assert.Equal(t, 50, DiscountPercent(50, 100))
}

func TestStarRating(t *testing.T) {
	assert.Equal(t, "★★★★☆", StarRating(4.6))
	assert.Equal(t, "★★★★", StarRating(4.4))
	assert.Equal(t, "★★★★★", StarRating(5))
	assert.Equal(t, "", StarRating(0.2))
	assert.Equal(t, "☆", StarRating(0.5))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$129.99", FormatPrice(129.99))
	assert.Equal(t, "$5.00", FormatPrice(5))
}

func TestWishlistToggle(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()

	w := LoadWishlist(ctx, store)
	added, err := w.Toggle(ctx, 3)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, w.Contains(3))

	// persists across loads
	w2 := LoadWishlist(ctx, store)
	assert.True(t, w2.Contains(3))

	removed, err := w2.Toggle(ctx, 3)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, w2.Contains(3))
	assert.Empty(t, LoadWishlist(ctx, store).IDs())
}
