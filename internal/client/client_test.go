package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailMessageString(t *testing.T) {
	msg := detailMessage([]byte(`{"detail": "Order not found"}`), "fallback")
	assert.Equal(t, "Order not found", msg)
}

func TestDetailMessageList(t *testing.T) {
	body := `{"detail": [{"msg": "field required"}, {"msg": "invalid sequence"}]}`
	msg := detailMessage([]byte(body), "fallback")
	assert.Equal(t, "field required, invalid sequence", msg)
}

func TestDetailMessageFallback(t *testing.T) {
	assert.Equal(t, "fallback", detailMessage([]byte("not json"), "fallback"))
	assert.Equal(t, "fallback", detailMessage([]byte(`{}`), "fallback"))
}

func TestListOrdersSendsParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(OrderPage{Page: 2, PageSize: 10, Total: 25})
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	page, err := c.ListOrders(context.Background(), ListOrdersParams{
		Q:         "Cleveland",
		Page:      2,
		PageSize:  10,
		Equipment: "Flatbed",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Cleveland"}, gotQuery["q"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["page_size"])
	assert.Equal(t, []string{"Flatbed"}, gotQuery["equipment"])
	assert.NotContains(t, gotQuery, "shipper")
	assert.Equal(t, 25, page.Total)
}

func TestGetOrderErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Order not found"}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	_, err := c.GetOrder(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "Order not found", err.Error())
}

func TestCreateOrderPostsPayload(t *testing.T) {
	var got OrderCreate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Order{ID: 11, CustomerID: got.CustomerID, Status: "draft"})
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	order, err := c.CreateOrder(context.Background(), OrderCreate{
		CustomerID: 7,
		Stops: []StopCreate{
			{StopType: "pickup", Sequence: 1},
			{StopType: "dropoff", Sequence: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(11), order.ID)
	assert.Equal(t, uint(7), got.CustomerID)
	require.Len(t, got.Stops, 2)
	assert.Equal(t, 1, got.Stops[0].Sequence)
}

func TestSearchCustomersEmptyQuerySkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty query")
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	items, err := c.SearchCustomers(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearchCustomersParsesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customers", r.URL.Path)
		require.Equal(t, "XYZ", r.URL.Query().Get("query"))
		w.Write([]byte(`{"items": [{"id": 1, "name": "XYZ Products", "city": "Cleveland", "state": "OH"}]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	items, err := c.SearchCustomers(context.Background(), "XYZ")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "XYZ Products", items[0].Name)
}
