package shopapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/config"
	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(config.UpstreamConfig{BaseURL: server.URL}, nil, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func TestListProductsEncodesFilters(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"p1","name":"Shirt","price":19.99}]`))
	}))

	products, err := client.ListProducts(context.Background(), ProductQuery{
		Featured: true,
		Sort:     "-createdAt",
		Limit:    4,
	})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("unexpected products %+v", products)
	}
	if !products[0].Price.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("unexpected price %s", products[0].Price)
	}
	for _, want := range []string{"featured=true", "sort=-createdAt", "limit=4"} {
		if !strings.Contains(gotQuery, want) {
			t.Fatalf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.MyOrders(context.Background(), "tok-123"); err != nil {
		t.Fatalf("my orders: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
}

func TestUpstreamErrorMessageSurfaced(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))

	_, err := client.Login(context.Background(), "a@b.c", "nope")
	if err == nil {
		t.Fatalf("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %T", err)
	}
	if typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected code %s", typed.Code())
	}
	if typed.Message() != "Invalid email or password" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestUpstreamErrorWithoutBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.GetProduct(context.Background(), "p1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeUpstream {
		t.Fatalf("unexpected code %s", pkgerrors.As(err).Code())
	}
}

func TestNotFoundMapped(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	}))

	_, err := client.GetProduct(context.Background(), "missing")
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
