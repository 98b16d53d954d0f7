// Package client is the typed client for the freight marketplace API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Client talks to the marketplace backend. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a client with the base URL from FREIGHT_API_URL, defaulting to
// the local backend.
func New() *Client {
	base := os.Getenv("FREIGHT_API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return NewWithBaseURL(base)
}

// NewWithBaseURL builds a client against an explicit origin.
func NewWithBaseURL(base string) *Client {
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError carries the backend's "detail" field, which is either a string or
// a list of {msg} objects.
type apiError struct {
	Detail json.RawMessage `json:"detail"`
}

func detailMessage(body []byte, fallback string) string {
	var parsed apiError
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Detail) > 0 {
		var s string
		if err := json.Unmarshal(parsed.Detail, &s); err == nil && s != "" {
			return s
		}
		var list []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(parsed.Detail, &list); err == nil && len(list) > 0 {
			msgs := make([]string, 0, len(list))
			for _, item := range list {
				msgs = append(msgs, item.Msg)
			}
			return strings.Join(msgs, ", ")
		}
	}
	return fallback
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s", detailMessage(raw, http.StatusText(resp.StatusCode)))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// ListOrdersParams are the list query parameters. Zero values are omitted.
type ListOrdersParams struct {
	Q             string
	Page          int
	PageSize      int
	AvailableDate string
	TimeWindow    string
	Pickup        string
	Delivery      string
	Equipment     string
	Shipper       string
}

// ListOrders fetches one page of summarized orders plus a total count.
func (c *Client) ListOrders(ctx context.Context, params ListOrdersParams) (*OrderPage, error) {
	values := url.Values{}
	if params.Q != "" {
		values.Set("q", params.Q)
	}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(params.PageSize))
	}
	if params.AvailableDate != "" {
		values.Set("available_date", params.AvailableDate)
	}
	if params.TimeWindow != "" {
		values.Set("time_window", params.TimeWindow)
	}
	if params.Pickup != "" {
		values.Set("pickup", params.Pickup)
	}
	if params.Delivery != "" {
		values.Set("delivery", params.Delivery)
	}
	if params.Equipment != "" {
		values.Set("equipment", params.Equipment)
	}
	if params.Shipper != "" {
		values.Set("shipper", params.Shipper)
	}

	path := "/orders"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page OrderPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrder fetches a single order with stops, customer and route geometry.
func (c *Client) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder issues the composite creation request.
func (c *Client) CreateOrder(ctx context.Context, req OrderCreate) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStops replaces an order's stop list wholesale.
func (c *Client) UpdateOrderStops(ctx context.Context, id uint, stops []StopCreate) (*Order, error) {
	var order Order
	body := map[string][]StopCreate{"stops": stops}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/stops", id), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// EstimateMiles computes total route miles for a prospective stop list.
func (c *Client) EstimateMiles(ctx context.Context, stops []StopCreate) (*MilesEstimate, error) {
	var estimate MilesEstimate
	body := map[string][]StopCreate{"stops": stops}
	if err := c.do(ctx, http.MethodPost, "/orders/estimate-miles", body, &estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

// SearchCustomers returns candidate customers for a free-text query, ordered
// by the backend. An empty query short-circuits to an empty result.
func (c *Client) SearchCustomers(ctx context.Context, query string) ([]Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var result struct {
		Items []Customer `json:"items"`
	}
	path := "/customers?query=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}
