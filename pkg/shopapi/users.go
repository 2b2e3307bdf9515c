package shopapi

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var auth AuthResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/users/login",
		endpoint: "/api/users/login",
		body:     body,
	}, &auth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register creates an account and returns a session for it.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var auth AuthResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/users/register",
		endpoint: "/api/users/register",
		body:     body,
	}, &auth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// Profile fetches the user the token belongs to.
func (c *Client) Profile(ctx context.Context, token string) (*User, error) {
	var user User
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/users/profile",
		endpoint: "/api/users/profile",
		token:    token,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers lists every account. Admin only.
func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var users []User
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/users",
		endpoint: "/api/users",
		token:    token,
	}, &users)
	return users, err
}

// GetUser fetches one account by ID. Admin only.
func (c *Client) GetUser(ctx context.Context, token, id string) (*User, error) {
	var user User
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/users/" + url.PathEscape(id),
		endpoint: "/api/users/:id",
		token:    token,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser edits an account. Admin only.
func (c *Client) UpdateUser(ctx context.Context, token, id string, input UpdateUserInput) (*User, error) {
	var user User
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     "/api/users/" + url.PathEscape(id),
		endpoint: "/api/users/:id",
		token:    token,
		body:     input,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/api/users/" + url.PathEscape(id),
		endpoint: "/api/users/:id",
		token:    token,
	}, nil)
}

// DashboardStats fetches the admin dashboard summary.
func (c *Client) DashboardStats(ctx context.Context, token string) (*DashboardStats, error) {
	var stats DashboardStats
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/admin/dashboard",
		endpoint: "/api/admin/dashboard",
		token:    token,
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
