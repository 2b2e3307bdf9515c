package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	cartsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/cart"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/localstore"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/types"
)

type stubProductFetcher struct {
	product shopapi.Product
}

func (s *stubProductFetcher) GetProduct(_ context.Context, id string) (*shopapi.Product, error) {
	product := s.product
	product.ID = id
	return &product, nil
}

func newCartManager(t *testing.T) *cartsvc.Manager {
	t.Helper()
	manager, err := cartsvc.NewManager(localstore.NewMemory(), nil)
	if err != nil {
		t.Fatalf("new cart manager: %v", err)
	}
	return manager
}

func visitorRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithVisitorID(req.Context(), "v1"))
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var envelope struct {
		Data cartResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding cart response: %v", err)
	}
	return envelope.Data
}

func TestCartAddAndGet(t *testing.T) {
	carts := newCartManager(t)
	fetcher := &stubProductFetcher{
		product: shopapi.Product{Name: "Tee", Price: decimal.RequireFromString("19.99")},
	}

	rec := httptest.NewRecorder()
	CartAdd(carts, fetcher, nil).ServeHTTP(rec, visitorRequest(
		http.MethodPost, "/api/cart/items",
		`{"product_id":"p1","quantity":2,"size":"M"}`,
	))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	cart := decodeCart(t, rec)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", cart)
	}
	if !cart.TotalPrice.Equal(decimal.RequireFromString("39.98")) {
		t.Fatalf("unexpected total %s", cart.TotalPrice)
	}

	rec = httptest.NewRecorder()
	CartGet(carts, nil).ServeHTTP(rec, visitorRequest(http.MethodGet, "/api/cart", ""))
	if got := decodeCart(t, rec); got.TotalQuantity != 2 {
		t.Fatalf("expected persisted cart on read, got %+v", got)
	}
}

func TestCartAddMergesSameIdentity(t *testing.T) {
	carts := newCartManager(t)
	fetcher := &stubProductFetcher{product: shopapi.Product{Price: decimal.NewFromInt(5)}}

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		CartAdd(carts, fetcher, nil).ServeHTTP(rec, visitorRequest(
			http.MethodPost, "/api/cart/items",
			`{"product_id":"p1","quantity":1,"size":"M"}`,
		))
		if rec.Code != http.StatusOK {
			t.Fatalf("add %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	CartGet(carts, nil).ServeHTTP(rec, visitorRequest(http.MethodGet, "/api/cart", ""))
	cart := decodeCart(t, rec)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected merged line with qty 2, got %+v", cart.Items)
	}
}

func TestCartUpdateZeroRemovesLine(t *testing.T) {
	carts := newCartManager(t)
	fetcher := &stubProductFetcher{product: shopapi.Product{Price: decimal.NewFromInt(5)}}

	rec := httptest.NewRecorder()
	CartAdd(carts, fetcher, nil).ServeHTTP(rec, visitorRequest(
		http.MethodPost, "/api/cart/items", `{"product_id":"p1","quantity":1}`,
	))

	rec = httptest.NewRecorder()
	CartUpdate(carts, nil).ServeHTTP(rec, visitorRequest(
		http.MethodPut, "/api/cart/items", `{"product_id":"p1","quantity":0}`,
	))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cart := decodeCart(t, rec); len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestCartAddRejectsMissingProductID(t *testing.T) {
	carts := newCartManager(t)

	rec := httptest.NewRecorder()
	CartAdd(carts, &stubProductFetcher{}, nil).ServeHTTP(rec, visitorRequest(
		http.MethodPost, "/api/cart/items", `{"quantity":1}`,
	))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	if envelope.Error.Code == "" {
		t.Fatalf("expected error code in envelope")
	}
}

func TestCartGetWithoutVisitorIdentity(t *testing.T) {
	carts := newCartManager(t)

	rec := httptest.NewRecorder()
	CartGet(carts, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without visitor identity, got %d", rec.Code)
	}
}
