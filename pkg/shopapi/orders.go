package shopapi

import (
	"context"
	"net/http"
	"net/url"
)

// CreateOrder places an order on behalf of the authenticated user.
func (c *Client) CreateOrder(ctx context.Context, token string, input CreateOrderInput) (*OrderView, error) {
	var order OrderView
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/orders",
		endpoint: "/api/orders",
		token:    token,
		body:     input,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// MyOrders lists the authenticated user's orders.
func (c *Client) MyOrders(ctx context.Context, token string) ([]OrderView, error) {
	var orders []OrderView
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/orders/myorders",
		endpoint: "/api/orders/myorders",
		token:    token,
	}, &orders)
	return orders, err
}

// ListOrders lists every order. Admin only.
func (c *Client) ListOrders(ctx context.Context, token string) ([]OrderView, error) {
	var orders []OrderView
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/orders",
		endpoint: "/api/orders",
		token:    token,
	}, &orders)
	return orders, err
}

// GetOrder fetches one order by ID.
func (c *Client) GetOrder(ctx context.Context, token, id string) (*OrderView, error) {
	var order OrderView
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/orders/" + url.PathEscape(id),
		endpoint: "/api/orders/:id",
		token:    token,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets an order's explicit status field and returns the
// updated record. Admin only.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, id, status string) (*OrderView, error) {
	var order OrderView
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     "/api/orders/" + url.PathEscape(id) + "/status",
		endpoint: "/api/orders/:id/status",
		token:    token,
		body:     map[string]string{"status": status},
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
