// Package woocommerce talks to a WordPress store's WooCommerce REST API
// (wp-json/wc/v3). It serves as a catalog source and, when configured, as
// the authoritative order backend.
package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"luxestore/internal/domain/entity"
	"luxestore/pkg/logger"
)

const apiPath = "/wp-json/wc/v3"

type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

func NewClient(wordpressURL, consumerKey, consumerSecret string) *Client {
	return &Client{
		baseURL:        strings.TrimRight(wordpressURL, "/") + apiPath,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

// ListProducts never fails; any error is logged and yields an empty catalog.
func (c *Client) ListProducts(ctx context.Context) []entity.Product {
	var raw []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &raw); err != nil {
		logger.Error("Error fetching products: %v", err)
		return []entity.Product{}
	}

	products := make([]entity.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, ToProduct(p))
	}
	return products
}

// GetProduct returns nil when the product is missing or the request fails.
func (c *Client) GetProduct(ctx context.Context, id string) *entity.Product {
	var raw Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &raw); err != nil {
		logger.Error("Error fetching product %s: %v", id, err)
		return nil
	}

	product := ToProduct(raw)
	return &product
}

// CreateOrder posts a new order and returns the created record.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	var created OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) endpoint(path string) string {
	q := url.Values{}
	q.Set("consumer_key", c.consumerKey)
	q.Set("consumer_secret", c.consumerSecret)
	return c.baseURL + path + "?" + q.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}
	return nil
}

// APIError is a non-2xx answer from the store.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("woocommerce API error (%d): %s", e.StatusCode, e.Body)
}
