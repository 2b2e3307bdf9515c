package shopapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListProducts fetches the catalog, optionally filtered.
func (c *Client) ListProducts(ctx context.Context, query ProductQuery) ([]Product, error) {
	values := url.Values{}
	if query.Featured {
		values.Set("featured", "true")
	}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}

	var products []Product
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/products",
		endpoint: "/api/products",
		query:    values,
	}, &products)
	return products, err
}

// GetProduct fetches one product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/products/" + url.PathEscape(id),
		endpoint: "/api/products/:id",
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories lists the distinct product categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/products/categories",
		endpoint: "/api/products/categories",
	}, &categories)
	return categories, err
}

// CreateProduct adds a product to the catalog. Admin only.
func (c *Client) CreateProduct(ctx context.Context, token string, input ProductInput) (*Product, error) {
	var product Product
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/products",
		endpoint: "/api/products",
		token:    token,
		body:     input,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a product's catalog fields. Admin only.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, input ProductInput) (*Product, error) {
	var product Product
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     "/api/products/" + url.PathEscape(id),
		endpoint: "/api/products/:id",
		token:    token,
		body:     input,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product. Admin only.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/api/products/" + url.PathEscape(id),
		endpoint: "/api/products/:id",
		token:    token,
	}, nil)
}
