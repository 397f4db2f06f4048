package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/service"
)

const productsJSON = `[
	{"id": 11, "name": "Leather Tote", "price": "129.50", "description": "<p>Soft</p>",
	 "stock_quantity": 3, "images": [{"src": "https://cdn/tote.jpg"}, {"src": "https://cdn/tote-2.jpg"}],
	 "categories": [{"name": "Bags"}, {"name": "Sale"}]},
	{"id": 12, "name": "Gift Card", "price": "", "stock_quantity": null, "images": [], "categories": []}
]`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "ck_test", "cs_test"), srv
}

func TestClient_ListProducts(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wc/v3/products", r.URL.Path)
		assert.Equal(t, "ck_test", r.URL.Query().Get("consumer_key"))
		assert.Equal(t, "cs_test", r.URL.Query().Get("consumer_secret"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsJSON))
	})

	products := client.ListProducts(context.Background())
	require.Len(t, products, 2)

	tote := products[0]
	assert.Equal(t, "11", tote.ID)
	assert.Equal(t, 129.5, tote.Price)
	assert.Equal(t, "https://cdn/tote.jpg", tote.Image)
	assert.Equal(t, "Bags", tote.Category)
	require.NotNil(t, tote.Stock)
	assert.Equal(t, 3, *tote.Stock)

	card := products[1]
	assert.Equal(t, PlaceholderImage, card.Image)
	assert.Equal(t, DefaultCategory, card.Category)
	assert.Zero(t, card.Price)
	assert.Nil(t, card.Stock)
}

func TestClient_ListProducts_FailureYieldsEmptyCatalog(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code":"woocommerce_rest_cannot_view"}`, http.StatusUnauthorized)
		})

		products := client.ListProducts(context.Background())
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("unreachable host", func(t *testing.T) {
		client, srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		assert.Empty(t, client.ListProducts(context.Background()))
	})

	t.Run("malformed body", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>maintenance</html>"))
		})

		assert.Empty(t, client.ListProducts(context.Background()))
	})
}

func TestClient_GetProduct(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/wc/v3/products/11":
			w.Write([]byte(`{"id": 11, "name": "Leather Tote", "price": "99", "images": [], "categories": [{"name": "Bags"}]}`))
		default:
			http.Error(w, `{"code":"woocommerce_rest_product_invalid_id"}`, http.StatusNotFound)
		}
	})

	product := client.GetProduct(context.Background(), "11")
	require.NotNil(t, product)
	assert.Equal(t, "Leather Tote", product.Name)
	assert.Equal(t, 99.0, product.Price)

	assert.Nil(t, client.GetProduct(context.Background(), "404"))
}

func TestToProduct_NumericPrice(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "price": 42.25}`), &p))

	assert.Equal(t, 42.25, ToProduct(p).Price)
}

func checkoutSubmission() service.OrderSubmission {
	return service.OrderSubmission{
		Order: &entity.Order{
			UserID: "u1",
			Items: []entity.LineItem{
				{ID: "11", Price: 100, Size: "M", Color: "Black", Quantity: 2},
				{ID: "12", Price: 50, Size: "S", Color: "Tan", Quantity: 1},
			},
			Total:     250,
			Status:    entity.OrderStatusProcessing,
			CreatedAt: time.Now(),
		},
		Contact: entity.CheckoutContact{
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Phone:     "555-0100",
			Address:   "1 Analytical Way",
			City:      "London",
			Zip:       "N1",
		},
	}
}

func TestBuildOrderRequest(t *testing.T) {
	req, err := BuildOrderRequest(checkoutSubmission())
	require.NoError(t, err)

	assert.Equal(t, "cod", req.PaymentMethod)
	assert.Equal(t, "Cash on Delivery", req.PaymentMethodTitle)
	assert.False(t, req.SetPaid)
	assert.Equal(t, Billing{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address1:  "1 Analytical Way",
		City:      "London",
		State:     "",
		Postcode:  "N1",
		Country:   "US",
		Email:     "ada@example.com",
		Phone:     "555-0100",
	}, req.Billing)
	assert.Equal(t, []OrderLine{{ProductID: 11, Quantity: 2}, {ProductID: 12, Quantity: 1}}, req.LineItems)

	t.Run("non-numeric product id is rejected", func(t *testing.T) {
		sub := checkoutSubmission()
		sub.Order.Items[0].ID = "firestore-doc-id"

		_, err := BuildOrderRequest(sub)
		assert.Error(t, err)
	})
}

func TestOrderGateway_Submit(t *testing.T) {
	t.Run("posts the order and adopts the store id", func(t *testing.T) {
		var received OrderRequest
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/wp-json/wc/v3/orders", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 727, "status": "processing", "total": "250.00"}`))
		})
		gateway := NewOrderGateway(client)
		sub := checkoutSubmission()

		id, err := gateway.Submit(context.Background(), sub)
		require.NoError(t, err)
		assert.Equal(t, "727", id)
		assert.Equal(t, "727", sub.Order.ID)
		assert.Len(t, received.LineItems, 2)
		assert.Equal(t, "woocommerce", gateway.Name())
	})

	t.Run("store rejection surfaces as error", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code":"woocommerce_rest_invalid_product_id"}`, http.StatusBadRequest)
		})

		_, err := NewOrderGateway(client).Submit(context.Background(), checkoutSubmission())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})
}
