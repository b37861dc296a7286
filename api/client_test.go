package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTokens struct {
	mu    sync.Mutex
	token string
}

func (m *memTokens) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memTokens) SetToken(_ context.Context, t string) error {
	m.mu.Lock()
	m.token = t
	m.mu.Unlock()
	return nil
}

func (m *memTokens) ClearToken(context.Context) error {
	return m.SetToken(context.Background(), "")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func TestCreateOrderSendsBearerAndBody(t *testing.T) {
	var got models.CreateOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, models.Order{ID: 101, Status: models.OrderStatusPending})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, &memTokens{token: "tok-1"})
	order, err := c.CreateOrder(context.Background(), models.CreateOrderRequest{
		CustomerName:      "Ada",
		RestaurantTableID: 7,
		Items:             []models.OrderItemRequest{{MenuItemID: 42, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(101), order.ID)
	assert.Equal(t, uint(7), got.RestaurantTableID)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestNoTokenNoAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []models.MenuItem{{ID: 1, Name: "Soup"}})
	}))
	defer srv.Close()

	items, err := api.NewClient(srv.URL, &memTokens{}).ListAvailableMenuItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStatusEndpoints(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		paths = append(paths, r.URL.RequestURI())
		writeJSON(w, http.StatusOK, models.Order{ID: 5})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, nil)
	ctx := context.Background()
	_, err := c.StartPreparation(ctx, 5)
	require.NoError(t, err)
	_, err = c.MarkReady(ctx, 5)
	require.NoError(t, err)
	_, err = c.MarkDelivered(ctx, 5)
	require.NoError(t, err)
	_, err = c.SetOrderStatus(ctx, 5, models.OrderStatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/kitchen/orders/5/preparation",
		"/kitchen/orders/5/ready",
		"/waiter/orders/5/delivered",
		"/orders/5/status?status=CANCELLED",
	}, paths)
}

func TestUnauthorizedRefreshesAndRetriesOnce(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]string{"token": "new"})
		case "/orders/9":
			calls++
			if r.Header.Get("Authorization") != "Bearer new" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "expired"})
				return
			}
			writeJSON(w, http.StatusOK, models.Order{ID: 9, Status: models.OrderStatusReady})
		}
	}))
	defer srv.Close()

	tokens := &memTokens{token: "old"}
	order, err := api.NewClient(srv.URL, tokens).GetOrder(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReady, order.Status)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "new", tokens.token)
}

func TestRefreshFailureForcesLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
	}))
	defer srv.Close()

	tokens := &memTokens{token: "old"}
	loggedOut := false
	c := api.NewClient(srv.URL, tokens, api.WithAuthFailureHandler(func() { loggedOut = true }))

	_, err := c.ListOrders(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.True(t, loggedOut)
	assert.Empty(t, tokens.token)
}

func TestBackendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders/404":
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Order not found"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, nil)

	_, err := c.GetOrder(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, "Order not found", err.Error())
	assert.Equal(t, "Order not found", api.Message(err, "fallback"))

	_, err = c.GetOrder(context.Background(), 1)
	assert.Equal(t, http.StatusInternalServerError, api.StatusCode(err))
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.False(t, api.IsNotFound(err))
}

func TestTableOrdersQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/table/7/orders", r.URL.Path)
		assert.Equal(t, "s-1", r.URL.Query().Get("sessionId"))
		writeJSON(w, http.StatusOK, []models.Order{{ID: 1}, {ID: 2}})
	}))
	defer srv.Close()

	orders, err := api.NewClient(srv.URL, nil).ListTableOrders(context.Background(), 7, "s-1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
