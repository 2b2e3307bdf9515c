// Package orders presents order history to customers and the full order book
// to admins, annotating every record with its derived display status.
package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/orderstatus"
	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/pagination"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type upstream interface {
	MyOrders(ctx context.Context, token string) ([]shopapi.OrderView, error)
	ListOrders(ctx context.Context, token string) ([]shopapi.OrderView, error)
	GetOrder(ctx context.Context, token, id string) (*shopapi.OrderView, error)
	UpdateOrderStatus(ctx context.Context, token, id, status string) (*shopapi.OrderView, error)
}

// Order is an upstream order annotated with its derived display status.
type Order struct {
	shopapi.OrderView
	DerivedStatus   string `json:"derived_status"`
	FormattedStatus string `json:"formatted_status"`
	BadgeColor      string `json:"badge_color"`
}

// Page is one page of the admin order book.
type Page struct {
	Orders []Order         `json:"orders"`
	Meta   pagination.Meta `json:"meta"`
}

// ListFilter narrows the admin order book.
type ListFilter struct {
	Status string
	Page   pagination.Params
}

// Service is the order history surface.
type Service interface {
	Mine(ctx context.Context, token string) ([]Order, error)
	Get(ctx context.Context, token, id string) (*Order, error)
	List(ctx context.Context, token string, filter ListFilter) (*Page, error)
	UpdateStatus(ctx context.Context, token, id, status string) (*Order, error)
}

type service struct {
	api  upstream
	logg *logger.Logger
}

// NewService builds the orders service.
func NewService(api upstream, logg *logger.Logger) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("shop API client required")
	}
	return &service{api: api, logg: logg}, nil
}

// Mine returns the authenticated customer's orders, newest first as the shop
// API serves them.
func (s *service) Mine(ctx context.Context, token string) ([]Order, error) {
	views, err := s.api.MyOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	return annotateAll(views), nil
}

func (s *service) Get(ctx context.Context, token, id string) (*Order, error) {
	view, err := s.api.GetOrder(ctx, token, id)
	if err != nil {
		return nil, err
	}
	order := annotate(*view)
	return &order, nil
}

// List returns one page of the admin order book, optionally filtered by
// derived status. Filtering happens after derivation so legacy records with
// no explicit status field still match.
func (s *service) List(ctx context.Context, token string, filter ListFilter) (*Page, error) {
	views, err := s.api.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	orders := annotateAll(views)
	if filter.Status != "" {
		filtered := orders[:0]
		for _, order := range orders {
			if strings.EqualFold(order.DerivedStatus, filter.Status) {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	start, end, meta := pagination.Slice(filter.Page, len(orders))
	return &Page{Orders: orders[start:end], Meta: meta}, nil
}

// UpdateStatus sets an explicit status on the order. Only the canonical
// statuses may be assigned.
func (s *service) UpdateStatus(ctx context.Context, token, id, status string) (*Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !orderstatus.IsAssignable(status) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").
			WithDetails(map[string]any{"allowed": orderstatus.Assignable})
	}

	view, err := s.api.UpdateOrderStatus(ctx, token, id, status)
	if err != nil {
		return nil, err
	}
	if s.logg != nil {
		fields := s.logg.WithFields(ctx, map[string]any{"order_id": id, "status": status})
		s.logg.Info(fields, "order status updated")
	}
	order := annotate(*view)
	return &order, nil
}

func annotate(view shopapi.OrderView) Order {
	derived := orderstatus.DeriveOrder(view)
	return Order{
		OrderView:       view,
		DerivedStatus:   derived,
		FormattedStatus: orderstatus.Format(derived),
		BadgeColor:      orderstatus.BadgeColor(derived),
	}
}

func annotateAll(views []shopapi.OrderView) []Order {
	orders := make([]Order, len(views))
	for i, view := range views {
		orders[i] = annotate(view)
	}
	return orders
}
