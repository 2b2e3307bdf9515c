package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/cart"
	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/localstore"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type stubAPI struct {
	create func(token string, input shopapi.CreateOrderInput) (*shopapi.OrderView, error)
}

func (s *stubAPI) CreateOrder(_ context.Context, token string, input shopapi.CreateOrderInput) (*shopapi.OrderView, error) {
	if s.create == nil {
		return nil, errors.New("not implemented")
	}
	return s.create(token, input)
}

func loadedCart(t *testing.T) *cart.Store {
	t.Helper()
	store, err := cart.NewStore(localstore.NewMemory(), "visitor:v1:cart", nil)
	if err != nil {
		t.Fatalf("new cart: %v", err)
	}
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load cart: %v", err)
	}
	return store
}

func validInput() Input {
	return Input{
		ShippingAddress: shopapi.ShippingAddress{
			FullName:   "Alice Perera",
			Address:    "1 Galle Road",
			City:       "Colombo",
			PostalCode: "00300",
			Country:    "Sri Lanka",
		},
		PaymentMethod: "PayPal",
	}
}

func TestPlaceOrderBuildsPayloadAndClearsCart(t *testing.T) {
	size := "M"
	store := loadedCart(t)
	store.Add(shopapi.Product{
		ID:    "p1",
		Name:  "Tee",
		Price: decimal.RequireFromString("19.99"),
		Image: "/img/tee.jpg",
	}, 2, &size, nil)

	var captured shopapi.CreateOrderInput
	var token string
	api := &stubAPI{
		create: func(tok string, input shopapi.CreateOrderInput) (*shopapi.OrderView, error) {
			token = tok
			captured = input
			return &shopapi.OrderView{ID: "order-1"}, nil
		},
	}
	svc, err := NewService(api, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	result, err := svc.PlaceOrder(context.Background(), "tok-1", store, validInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if result.OrderID != "order-1" {
		t.Fatalf("unexpected order id %q", result.OrderID)
	}
	if token != "tok-1" {
		t.Fatalf("expected bearer token forwarded, got %q", token)
	}

	if len(captured.OrderItems) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(captured.OrderItems))
	}
	item := captured.OrderItems[0]
	if item.Product != "p1" || item.Qty != 2 || item.Size == nil || *item.Size != "M" {
		t.Fatalf("unexpected order item %+v", item)
	}

	// 2 x 19.99 = 39.98 items, 10% tax, free shipping.
	if !captured.ItemsPrice.Equal(decimal.RequireFromString("39.98")) {
		t.Fatalf("unexpected items price %s", captured.ItemsPrice)
	}
	if !captured.ShippingPrice.IsZero() {
		t.Fatalf("expected free shipping, got %s", captured.ShippingPrice)
	}
	if !captured.TaxPrice.Equal(decimal.RequireFromString("4.00")) {
		t.Fatalf("unexpected tax %s", captured.TaxPrice)
	}
	if !captured.TotalPrice.Equal(decimal.RequireFromString("43.98")) {
		t.Fatalf("unexpected total %s", captured.TotalPrice)
	}

	if len(store.Lines()) != 0 {
		t.Fatalf("cart must be cleared after a successful order")
	}
}

func TestPlaceOrderEmptyCartRejected(t *testing.T) {
	svc, _ := NewService(&stubAPI{}, nil)

	_, err := svc.PlaceOrder(context.Background(), "tok", loadedCart(t), validInput())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderMissingFieldsRejected(t *testing.T) {
	store := loadedCart(t)
	store.Add(shopapi.Product{ID: "p1", Price: decimal.NewFromInt(10)}, 1, nil, nil)
	svc, _ := NewService(&stubAPI{}, nil)

	input := validInput()
	input.ShippingAddress.City = ""
	input.PaymentMethod = "  "

	_, err := svc.PlaceOrder(context.Background(), "tok", store, input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	missing, _ := details["missing"].([]string)
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", details["missing"])
	}
}

func TestPlaceOrderUpstreamFailureKeepsCart(t *testing.T) {
	store := loadedCart(t)
	store.Add(shopapi.Product{ID: "p1", Price: decimal.NewFromInt(10)}, 1, nil, nil)
	api := &stubAPI{
		create: func(string, shopapi.CreateOrderInput) (*shopapi.OrderView, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUpstream, "shop API unavailable")
		},
	}
	svc, _ := NewService(api, nil)

	_, err := svc.PlaceOrder(context.Background(), "tok", store, validInput())
	if err == nil {
		t.Fatalf("expected upstream error")
	}
	if len(store.Lines()) != 1 {
		t.Fatalf("cart must survive a failed order")
	}
}

func TestSummarizeRoundsTax(t *testing.T) {
	store := loadedCart(t)
	store.Add(shopapi.Product{ID: "p1", Price: decimal.RequireFromString("3.33")}, 1, nil, nil)
	svc, _ := NewService(&stubAPI{}, nil)

	summary := svc.Summarize(store)
	if !summary.TaxPrice.Equal(decimal.RequireFromString("0.33")) {
		t.Fatalf("expected rounded tax, got %s", summary.TaxPrice)
	}
	if !summary.TotalPrice.Equal(decimal.RequireFromString("3.66")) {
		t.Fatalf("unexpected total %s", summary.TotalPrice)
	}
}
