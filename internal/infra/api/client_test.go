package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Timeout = 5 * time.Second

	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetch_NormalizesLegacyLineShape(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/my/cart", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		io.WriteString(w, `{"cart":{"items":[{"ProductID":7,"Qty":3},{"productId":2,"quantity":1}]}}`)
	}))

	cart, err := client.Fetch(context.Background(), "tok")
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.CartLine{
		{ProductID: 7, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	}, cart.Lines)
}

func TestReplace_SendsFullCartBody(t *testing.T) {
	var got struct {
		Items []entity.CartLine `json:"items"`
	}
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/my/cart", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{}`)
	}))

	cart := &entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}}
	require.NoError(t, client.Replace(context.Background(), "tok", cart))
	assert.Equal(t, cart.Lines, got.Items)
}

func TestReplace_EmptyCartSendsEmptyList(t *testing.T) {
	var body string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		io.WriteString(w, `{}`)
	}))

	require.NoError(t, client.Replace(context.Background(), "tok", &entity.Cart{}))
	assert.JSONEq(t, `{"items":[]}`, body)
}

func TestDo_AuthenticatedUnauthorizedIsSessionExpired(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Fetch(context.Background(), "stale-token")
	assert.True(t, domainerrors.IsAuthExpired(err))
}

func TestLogin_RejectionIsInvalidCredentials(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Login(context.Background(), "budi", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.False(t, domainerrors.IsAuthExpired(err))
}

func TestLogin_ReturnsToken(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		io.WriteString(w, `{"token":"abc"}`)
	}))

	token, err := client.Login(context.Background(), "budi", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestListProducts_PaginatesAndNormalizes(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		io.WriteString(w, `{"products":[{"ID":7,"name":"Kopi","price":10000,"stock":3,"image_url":"http://img/7.png"}]}`)
	}))

	products, err := client.ListProducts(context.Background(), 2, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(7), products[0].ID)
	assert.Equal(t, "Kopi", products[0].Name)
	assert.Equal(t, int64(10000), products[0].Price)
	assert.Equal(t, "http://img/7.png", products[0].ImageURL)
}

func TestSubmit_FallsBackToLegacyFields(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 4, body["addressId"])
		assert.Equal(t, "qris", body["paymentMethod"])
		io.WriteString(w, `{"payment_url":"https://pay.example/x","order":"ORD-123"}`)
	}))

	result, err := client.Submit(context.Background(), "tok", 4, entity.PaymentQRIS)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/x", result.PaymentURL)
	assert.Equal(t, "ORD-123", result.OrderNum)
}

func TestSetStatus_PutsStatusBody(t *testing.T) {
	var got map[string]string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/orders/9/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{}`)
	}))

	require.NoError(t, client.SetStatus(context.Background(), "tok", 9, entity.OrderShipped))
	assert.Equal(t, map[string]string{"status": "shipped"}, got)
}

func TestListMine_ParsesServerTimestamps(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"orders":[{"id":1,"orderNum":"ORD-1","status":"pending","total":34440,
			"createdAt":"2026-08-01 10:30:00",
			"items":[{"quantity":3,"product":{"ID":7,"name":"Kopi","price":10000}}]}]}`)
	}))

	orders, err := client.ListMine(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, "ORD-1", order.OrderNum)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, 2026, order.CreatedAt.Year())
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(10000), order.Items[0].PriceAtPurchase)
}
