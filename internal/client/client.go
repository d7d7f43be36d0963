// Package client is a typed binding for the storefront HTTP API. Calls are not
// retried; transport failures and non-2xx responses are returned as errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/maxandsherry/storefront/internal/domain"
	"github.com/maxandsherry/storefront/internal/telemetry"
)

const DefaultTimeout = 10 * time.Second

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("storefront api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("storefront api: status %d: %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New returns a client for the API rooted at baseURL, e.g. http://localhost:3000/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: telemetry.NewTransport(nil),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelopeResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func (c *Client) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return do[[]domain.MenuItem](ctx, c, http.MethodGet, "/menu", nil)
}

func (c *Client) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	item, err := do[domain.MenuItem](ctx, c, http.MethodGet, "/menu/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetMenuByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	return do[[]domain.MenuItem](ctx, c, http.MethodGet, "/menu/category/"+url.PathEscape(category), nil)
}

func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	order, err := do[domain.Order](ctx, c, http.MethodPost, "/orders", draft)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := do[domain.Order](ctx, c, http.MethodGet, "/orders/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetCustomerOrders(ctx context.Context, phone string) ([]domain.Order, error) {
	return do[[]domain.Order](ctx, c, http.MethodGet, "/orders/customer/"+url.PathEscape(phone), nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	body := map[string]string{"status": string(status)}
	order, err := do[domain.Order](ctx, c, http.MethodPatch, "/orders/"+strconv.FormatInt(id, 10)+"/status", body)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelopeResponse[T]
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return zero, fmt.Errorf("decode %s %s response: %w", method, path, decodeErr)
	}
	if !env.Success {
		return zero, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return env.Data, nil
}
