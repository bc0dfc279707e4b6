package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// offlineGateway points the client at a port nothing listens on, so every
// endpoint source fails and the fallback chain takes over.
func offlineGateway(files fstest.MapFS, store localstore.Store) *Gateway {
	client := NewClient("http://127.0.0.1:1", time.Second, discard())
	return New(client, files, store, discard())
}

func onlineGateway(t *testing.T, handler http.Handler, files fstest.MapFS, store localstore.Store) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, time.Second, discard())
	return New(client, files, store, discard())
}

func jsonHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	})
}

const productFeed = `{"products":[
  {"id":1,"name":"Air Zoom Pulse","brand":"Nike","price":129.99,"originalPrice":159.99,"category":"Running","subtype":"Road","available":true},
  {"id":3,"name":"Trail Ridge GTX","brand":"Salomon","price":149.99,"originalPrice":189.99,"category":"Running","subtype":"Trail","available":true},
  {"id":4,"name":"Court Classic 77","brand":"Nike","price":89.99,"category":"Lifestyle","subtype":"Court","available":true}
]}`

func TestProductsFallBackToFile(t *testing.T) {
	gw := offlineGateway(fstest.MapFS{
		"data/products.json": {Data: []byte(productFeed)},
	}, localstore.NewMemoryStore())

	products := gw.Products.List(context.Background())
	require.Len(t, products, 3)
	assert.Equal(t, "Air Zoom Pulse", products[0].Name)
}

func TestProductsPrimaryWinsOverFile(t *testing.T) {
	gw := onlineGateway(t,
		jsonHandler(`{"products":[{"id":9,"name":"Backend Shoe","price":10,"available":true}]}`),
		fstest.MapFS{"data/products.json": {Data: []byte(productFeed)}},
		localstore.NewMemoryStore())

	products := gw.Products.List(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "Backend Shoe", products[0].Name)
}

func TestProductsEmptyWhenNoSourceResolves(t *testing.T) {
	gw := offlineGateway(fstest.MapFS{}, localstore.NewMemoryStore())
	products := gw.Products.List(context.Background())
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestOrdersDecodeKeyedObjectSortedByID(t *testing.T) {
	feed := `{
	  "ORD-2": {"id":"ORD-2","customer":"Marco Ruiz","total":50,"status":"Shipped"},
	  "ORD-1": {"id":"ORD-1","customer":"Linh Tran","total":100,"status":"Delivered"}
	}`
	gw := offlineGateway(fstest.MapFS{
		"data/orders.json": {Data: []byte(feed)},
	}, localstore.NewMemoryStore())

	orders := gw.Orders.List(context.Background())
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1", orders[0].ID)
	assert.Equal(t, "ORD-2", orders[1].ID)
}

func TestOrdersLegacyFeedQtyItems(t *testing.T) {
	feed := `[{"id":"ORD-7","customerName":"Yuki Sato","items":[{"name":"Trail Ridge GTX","price":149.99,"qty":2}],"total":299.98,"expectedDate":"2024-04-25"}]`
	gw := offlineGateway(fstest.MapFS{
		"cart/orderData.json": {Data: []byte(feed)},
	}, localstore.NewMemoryStore())

	orders := gw.Orders.List(context.Background())
	require.Len(t, orders, 1)
	assert.Equal(t, "Yuki Sato", orders[0].DisplayCustomer())
	assert.Equal(t, "2024-04-25", orders[0].DisplayETA())
	assert.Equal(t, 2, orders[0].Items[0].Count())
}

func TestCategoriesDerivedFromProductFeed(t *testing.T) {
	// the category fallback file is itself a product feed
	gw := offlineGateway(fstest.MapFS{
		"categories/full.json": {Data: []byte(productFeed)},
	}, localstore.NewMemoryStore())

	cats := gw.Categories.List(context.Background())
	require.Len(t, cats, 2)
	assert.Equal(t, "Running", cats[0].Name)
	assert.ElementsMatch(t, []string{"Road", "Trail"}, cats[0].Tags)
	assert.Equal(t, "Lifestyle", cats[1].Name)
	assert.Equal(t, []string{"Court"}, cats[1].Tags)
}

func TestUpdateProfileHitsProfileEndpoint(t *testing.T) {
	var gotMethod, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		io.WriteString(w, `{}`)
	})
	gw := onlineGateway(t, handler, fstest.MapFS{}, localstore.NewMemoryStore())

	err := gw.Customers.UpdateProfile(context.Background(), map[string]string{"phone": "555-0199"})
	require.NoError(t, err)
	assert.Equal(t, "PUT", gotMethod)
	assert.Equal(t, "/api/customers/profile", gotPath)
}

func TestUpdateProfilePropagatesFailureOffline(t *testing.T) {
	gw := offlineGateway(fstest.MapFS{}, localstore.NewMemoryStore())
	err := gw.Customers.UpdateProfile(context.Background(), map[string]string{"name": "Linh Tran"})
	assert.Error(t, err)
}

func TestCategoriesDerivedWhenCategoryFeedMissing(t *testing.T) {
	// no category feed at all: the chain ends at the product feed
	gw := offlineGateway(fstest.MapFS{
		"data/products.json": {Data: []byte(productFeed)},
	}, localstore.NewMemoryStore())

	cats := gw.Categories.List(context.Background())
	require.Len(t, cats, 2)
	assert.Equal(t, "Running", cats[0].Name)
	assert.ElementsMatch(t, []string{"Road", "Trail"}, cats[0].Tags)
}

func TestSupportAssignFallsBackToOverride(t *testing.T) {
	store := localstore.NewMemoryStore()
	gw := offlineGateway(fstest.MapFS{
		"admin/support.json": {Data: []byte(`{"tickets":[{"id":"SUP-301","user":"Linh Tran","subject":"Wrong size","status":"Open"}]}`)},
	}, store)
	ctx := context.Background()

	gw.Support.Assign(ctx, "SUP-301")

	tickets := gw.Support.List(ctx)
	require.Len(t, tickets, 1)
	assert.Equal(t, "In Progress", tickets[0].Status)
	assert.Equal(t, "Admin", tickets[0].AssignedTo)
	assert.NotEmpty(t, tickets[0].UpdatedAt)
	// base fields untouched
	assert.Equal(t, "Linh Tran", tickets[0].DisplayUser())
}

func TestSupportOverrideDoesNotMaskPrimaryFields(t *testing.T) {
	store := localstore.NewMemoryStore()
	ctx := context.Background()

	// plant an override as if written while offline
	offline := offlineGateway(fstest.MapFS{}, store)
	offline.Support.Assign(ctx, "SUP-301")

	gw := onlineGateway(t,
		jsonHandler(`{"tickets":[{"id":"SUP-301","user":"Linh Tran","subject":"Wrong size","status":"Resolved","assignedTo":"Dana"}]}`),
		fstest.MapFS{}, store)

	tickets := gw.Support.List(ctx)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Resolved", tickets[0].Status)
	assert.Equal(t, "Dana", tickets[0].AssignedTo)
	// the override still fills fields the backend left empty
	assert.NotEmpty(t, tickets[0].UpdatedAt)
}

func TestRefundReviewFallsBackToOverride(t *testing.T) {
	store := localstore.NewMemoryStore()
	gw := offlineGateway(fstest.MapFS{
		"admin/refunds.json": {Data: []byte(`{"refunds":[{"id":"REF-77","order":"ORD-1","reason":"Too narrow","status":"Reviewing"}]}`)},
	}, store)
	ctx := context.Background()

	gw.Refunds.Review(ctx, "REF-77", "approve")

	refunds := gw.Refunds.List(ctx)
	require.Len(t, refunds, 1)
	assert.Equal(t, "Approved", refunds[0].Status)
	assert.NotEmpty(t, refunds[0].ResolvedAt)
}

func TestReviewStatusMapping(t *testing.T) {
	assert.Equal(t, "Approved", reviewStatus("approve"))
	assert.Equal(t, "Rejected", reviewStatus("reject"))
	assert.Equal(t, "Reviewing", reviewStatus("hold"))
}

func TestDiscountsSynthesizedFromSaleFeed(t *testing.T) {
	gw := offlineGateway(fstest.MapFS{
		"sale/products.json": {Data: []byte(productFeed)},
	}, localstore.NewMemoryStore())

	discounts := gw.Discounts.List(context.Background())
	require.Len(t, discounts, 4)

	welcome := discounts[0]
	assert.Equal(t, "WELCOME10", welcome.Code)
	assert.Equal(t, model.DiscountPercent, welcome.Type)
	assert.InDelta(t, 0.10, welcome.Value, 0.001)
	assert.True(t, welcome.Active)
	// only the on-sale products land in the scope
	assert.Equal(t, []int64{1, 3}, welcome.AppliesTo.ProductIDs)
	assert.ElementsMatch(t, []string{"Nike", "Salomon"}, welcome.AppliesTo.Brands)
	assert.True(t, welcome.AppliesTo.SaleOnly)

	loyal := discounts[3]
	assert.Equal(t, "LOYAL5", loyal.Code)
	assert.Equal(t, model.DiscountAmount, loyal.Type)
	assert.InDelta(t, 100, loyal.Conditions.MinLifetimeSpend, 0.001)
}

func TestDiscountToggleRecordsOverrideOffline(t *testing.T) {
	store := localstore.NewMemoryStore()
	gw := offlineGateway(fstest.MapFS{
		"sale/products.json": {Data: []byte(productFeed)},
	}, store)
	ctx := context.Background()

	gw.Discounts.Toggle(ctx, "WELCOME10")
	discounts := gw.Discounts.List(ctx)
	require.Len(t, discounts, 4)
	assert.False(t, discounts[0].Active)
	assert.True(t, discounts[1].Active)

	// toggling again flips it back
	gw.Discounts.Toggle(ctx, "WELCOME10")
	assert.True(t, gw.Discounts.List(ctx)[0].Active)
}

func TestCreateProductPropagatesFailure(t *testing.T) {
	gw := offlineGateway(fstest.MapFS{}, localstore.NewMemoryStore())
	err := gw.Products.Create(context.Background(), model.Product{Name: "New Shoe", Price: 10})
	assert.Error(t, err)
}

func TestUpdateStatusPropagatesFailure(t *testing.T) {
	gw := offlineGateway(fstest.MapFS{}, localstore.NewMemoryStore())
	err := gw.Orders.UpdateStatus(context.Background(), "ORD-1", "Shipped")
	assert.Error(t, err)
}

func TestClientRejectsNon2xx(t *testing.T) {
	gw := onlineGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}), fstest.MapFS{
		"data/products.json": {Data: []byte(productFeed)},
	}, localstore.NewMemoryStore())

	// a 500 from the primary falls through to the file
	products := gw.Products.List(context.Background())
	require.Len(t, products, 3)
}
