// Package shopapi is the typed client for the upstream shop REST API that
// owns all durable commerce data: products, orders, users, and categories.
package shopapi

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

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/config"
	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/metrics"
)

// Client issues authenticated requests against the shop API.
type Client struct {
	base    *url.URL
	httpc   *http.Client
	logg    *logger.Logger
	metrics *metrics.UpstreamMetrics
}

// New builds a client from the upstream configuration.
func New(cfg config.UpstreamConfig, logg *logger.Logger, m *metrics.UpstreamMetrics) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing upstream base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:    base,
		httpc:   &http.Client{Timeout: timeout},
		logg:    logg,
		metrics: m,
	}, nil
}

// Origin returns the upstream origin, used for image URL normalization.
func (c *Client) Origin() string {
	return strings.TrimRight(c.base.String(), "/")
}

// errorPayload is the shape the shop API uses for failures.
type errorPayload struct {
	Message string `json:"message"`
}

// request carries one upstream call. The endpoint field is the path template
// used as the metrics label so IDs never explode label cardinality.
type request struct {
	method   string
	path     string
	endpoint string
	query    url.Values
	token    string
	body     any
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	target := *c.base
	target.Path = strings.TrimRight(target.Path, "/") + req.path
	if req.query != nil {
		target.RawQuery = req.query.Encode()
	}

	var payload io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request body")
		}
		payload = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building upstream request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(httpReq)
	c.metrics.ObserveDuration(req.endpoint, req.method, time.Since(start))
	if err != nil {
		c.metrics.IncError(req.endpoint, req.method)
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "calling shop API")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		c.metrics.IncError(req.endpoint, req.method)
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.IncError(req.endpoint, req.method)
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decoding shop API response")
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	var payload errorPayload
	// A non-JSON error body still maps onto a status-derived code.
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		message = fmt.Sprintf("shop API returned status %d", resp.StatusCode)
	}

	var code pkgerrors.Code
	switch resp.StatusCode {
	case http.StatusBadRequest:
		code = pkgerrors.CodeValidation
	case http.StatusUnauthorized:
		code = pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		code = pkgerrors.CodeForbidden
	case http.StatusNotFound:
		code = pkgerrors.CodeNotFound
	default:
		code = pkgerrors.CodeUpstream
	}

	return pkgerrors.New(code, message).WithDetails(map[string]any{
		"upstream_status": resp.StatusCode,
	})
}
