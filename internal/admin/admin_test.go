package admin

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anhngoc0603/sneakerstore/internal/gateway"
	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testState runs against static feeds only: the client points at a port
// nothing listens on.
func testState() *State {
	files := fstest.MapFS{
		"data/products.json": {Data: []byte(`{"products":[
			{"id":1,"name":"Air Zoom Pulse","brand":"Nike","price":129.99,"category":"Running","subtype":"Road","available":true},
			{"id":2,"name":"UltraBoost Street","brand":"Adidas","price":179.99,"category":"Lifestyle","subtype":"Street","available":true}
		]}`)},
		"data/orders.json":    {Data: []byte(`[{"id":"ORD-1","customer":"Linh Tran","total":129.99,"status":"Delivered"}]`)},
		"data/customers.json": {Data: []byte(`{"customers":[{"id":101,"name":"Linh Tran","email":"linh@example.com"}]}`)},
		"admin/support.json":  {Data: []byte(`{"tickets":[{"id":"SUP-301","user":"Linh Tran","subject":"Wrong size","status":"Open"}]}`)},
		"sale/products.json":  {Data: []byte(`{"products":[{"id":1,"name":"Air Zoom Pulse","brand":"Nike","price":129.99,"originalPrice":159.99,"available":true}]}`)},
	}
	client := gateway.NewClient("http://127.0.0.1:1", time.Second, discard())
	gw := gateway.New(client, files, localstore.NewMemoryStore(), discard())
	return NewState(gw, discard())
}

func TestReloadPopulatesSnapshot(t *testing.T) {
	st := testState()
	st.Reload(context.Background())

	snap := st.Current()
	assert.Len(t, snap.Products, 2)
	assert.Len(t, snap.Orders, 1)
	assert.Len(t, snap.Customers, 1)
	assert.Len(t, snap.Support, 1)
	assert.Len(t, snap.Discounts, 4)
	// no category feed in the fixture, so categories derive from products
	assert.Len(t, snap.Categories, 2)
}

func TestDispatchUnknownCommand(t *testing.T) {
	st := testState()
	err := NewRegistry().Dispatch(context.Background(), st, "product", "fly", Args{})
	assert.Error(t, err)
}

func TestDispatchValidationFailureAborts(t *testing.T) {
	st := testState()
	err := NewRegistry().Dispatch(context.Background(), st, "product", "create", Args{Name: "X", Price: 10})
	require.Error(t, err)
	// nothing reloaded on failure
	assert.Empty(t, st.Current().Products)
}

func TestDispatchHardFailurePropagates(t *testing.T) {
	st := testState()
	// valid form, but the backend is unreachable and create is a hard mutation
	err := NewRegistry().Dispatch(context.Background(), st, "product", "create", Args{Name: "New Shoe", Price: 99.99})
	assert.Error(t, err)
}

func TestDispatchSoftMutationSucceedsOffline(t *testing.T) {
	st := testState()
	ctx := context.Background()

	err := NewRegistry().Dispatch(ctx, st, "support", "assign", Args{ID: "SUP-301"})
	require.NoError(t, err)

	snap := st.Current()
	require.Len(t, snap.Support, 1)
	assert.Equal(t, "In Progress", snap.Support[0].Status)
	assert.Equal(t, "Admin", snap.Support[0].AssignedTo)
}

func TestDispatchToggleReflectsInSnapshot(t *testing.T) {
	st := testState()
	ctx := context.Background()

	err := NewRegistry().Dispatch(ctx, st, "discount", "toggle", Args{Code: "WELCOME10"})
	require.NoError(t, err)

	var found bool
	for _, d := range st.Current().Discounts {
		if d.Code == "WELCOME10" {
			found = true
			assert.False(t, d.Active)
		}
	}
	assert.True(t, found)
}

func TestDispatchOrderStatusRequiresStatus(t *testing.T) {
	st := testState()
	err := NewRegistry().Dispatch(context.Background(), st, "order", "status", Args{ID: "ORD-1"})
	assert.Error(t, err)
}

func TestDispatchInvalidIDRejected(t *testing.T) {
	st := testState()
	err := NewRegistry().Dispatch(context.Background(), st, "product", "delete", Args{ID: "abc"})
	assert.Error(t, err)
}
