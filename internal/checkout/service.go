// Package checkout turns a visitor's cart into a placed order.
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/cart"
	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

// Tax is flat at 10% of the items subtotal; shipping is free.
var taxRate = decimal.NewFromFloat(0.10)

type upstream interface {
	CreateOrder(ctx context.Context, token string, input shopapi.CreateOrderInput) (*shopapi.OrderView, error)
}

// Input is what the checkout form collects.
type Input struct {
	ShippingAddress shopapi.ShippingAddress `json:"shipping_address" validate:"required"`
	PaymentMethod   string                  `json:"payment_method" validate:"required"`
}

// Summary is the priced breakdown shown before and after placing the order.
type Summary struct {
	ItemsPrice    decimal.Decimal `json:"items_price"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
	TaxPrice      decimal.Decimal `json:"tax_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// Result identifies the placed order.
type Result struct {
	OrderID string  `json:"order_id"`
	Summary Summary `json:"summary"`
}

// Service places orders from cart contents.
type Service interface {
	Summarize(store *cart.Store) Summary
	PlaceOrder(ctx context.Context, token string, store *cart.Store, input Input) (*Result, error)
}

type service struct {
	api  upstream
	logg *logger.Logger
}

// NewService builds the checkout service.
func NewService(api upstream, logg *logger.Logger) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("shop API client required")
	}
	return &service{api: api, logg: logg}, nil
}

// Summarize prices the cart as it stands.
func (s *service) Summarize(store *cart.Store) Summary {
	return summarize(store.Total())
}

// PlaceOrder validates the cart and shipping details, submits the order, and
// clears the cart only once the shop API has accepted it.
func (s *service) PlaceOrder(ctx context.Context, token string, store *cart.Store, input Input) (*Result, error) {
	lines := store.Lines()
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	summary := summarize(store.Total())
	payload := shopapi.CreateOrderInput{
		OrderItems:      orderItems(lines),
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		ItemsPrice:      summary.ItemsPrice,
		ShippingPrice:   summary.ShippingPrice,
		TaxPrice:        summary.TaxPrice,
		TotalPrice:      summary.TotalPrice,
	}

	order, err := s.api.CreateOrder(ctx, token, payload)
	if err != nil {
		return nil, err
	}

	store.Clear()
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "order_id", order.ID), "order placed")
	}
	return &Result{OrderID: order.ID, Summary: summary}, nil
}

func summarize(itemsPrice decimal.Decimal) Summary {
	tax := itemsPrice.Mul(taxRate).Round(2)
	return Summary{
		ItemsPrice:    itemsPrice,
		ShippingPrice: decimal.Zero,
		TaxPrice:      tax,
		TotalPrice:    itemsPrice.Add(tax),
	}
}

func orderItems(lines []cart.Line) []shopapi.OrderItem {
	items := make([]shopapi.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = shopapi.OrderItem{
			Product: line.ProductID,
			Name:    line.Name,
			Qty:     line.Quantity,
			Price:   line.Price,
			Image:   line.Image,
			Size:    line.Size,
			Color:   line.Color,
		}
	}
	return items
}

func validateInput(input Input) error {
	var missing []string
	address := input.ShippingAddress
	for _, field := range []struct {
		name  string
		value string
	}{
		{"fullName", address.FullName},
		{"address", address.Address},
		{"city", address.City},
		{"postalCode", address.PostalCode},
		{"country", address.Country},
		{"paymentMethod", input.PaymentMethod},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing required checkout fields").
			WithDetails(map[string]any{"missing": missing})
	}
	return nil
}
