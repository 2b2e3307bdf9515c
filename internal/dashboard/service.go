// Package dashboard assembles the admin overview numbers.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/orderstatus"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type upstream interface {
	DashboardStats(ctx context.Context, token string) (*shopapi.DashboardStats, error)
	ListOrders(ctx context.Context, token string) ([]shopapi.OrderView, error)
}

// Stats is the dashboard summary with every field populated.
type Stats struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalOrders   int             `json:"total_orders"`
	TotalProducts int             `json:"total_products"`
	PendingOrders int             `json:"pending_orders"`
}

// Service is the admin dashboard surface.
type Service interface {
	Stats(ctx context.Context, token string) (*Stats, error)
}

type service struct {
	api  upstream
	logg *logger.Logger
}

// NewService builds the dashboard service.
func NewService(api upstream, logg *logger.Logger) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("shop API client required")
	}
	return &service{api: api, logg: logg}, nil
}

// Stats returns the dashboard numbers. Older shop API versions omit the
// pending order count; when it is missing it is recomputed from the order
// book by counting orders whose derived status is processing.
func (s *service) Stats(ctx context.Context, token string) (*Stats, error) {
	upstream, err := s.api.DashboardStats(ctx, token)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalSales:    upstream.TotalSales,
		TotalOrders:   upstream.TotalOrders,
		TotalProducts: upstream.TotalProducts,
	}

	if upstream.PendingOrders != nil {
		stats.PendingOrders = *upstream.PendingOrders
		return stats, nil
	}

	orders, err := s.api.ListOrders(ctx, token)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "recomputing pending orders failed, reporting zero")
		}
		return stats, nil
	}
	for _, order := range orders {
		if orderstatus.DeriveOrder(order) == orderstatus.StatusProcessing {
			stats.PendingOrders++
		}
	}
	return stats, nil
}
