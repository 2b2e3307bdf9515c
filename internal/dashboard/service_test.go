package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type stubAPI struct {
	stats func(token string) (*shopapi.DashboardStats, error)
	list  func(token string) ([]shopapi.OrderView, error)

	listCalls int
}

func (s *stubAPI) DashboardStats(_ context.Context, token string) (*shopapi.DashboardStats, error) {
	if s.stats == nil {
		return nil, errors.New("not implemented")
	}
	return s.stats(token)
}

func (s *stubAPI) ListOrders(_ context.Context, token string) ([]shopapi.OrderView, error) {
	s.listCalls++
	if s.list == nil {
		return nil, errors.New("not implemented")
	}
	return s.list(token)
}

func TestStatsPassthroughWhenPendingPresent(t *testing.T) {
	pending := 7
	api := &stubAPI{
		stats: func(token string) (*shopapi.DashboardStats, error) {
			return &shopapi.DashboardStats{
				TotalSales:    decimal.RequireFromString("1234.50"),
				TotalOrders:   42,
				TotalProducts: 9,
				PendingOrders: &pending,
			}, nil
		},
	}
	svc, err := NewService(api, nil)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 7, stats.PendingOrders)
	assert.Equal(t, 42, stats.TotalOrders)
	assert.Zero(t, api.listCalls, "order book should not be consulted")
}

func TestStatsRecomputesPendingFromOrderBook(t *testing.T) {
	api := &stubAPI{
		stats: func(token string) (*shopapi.DashboardStats, error) {
			return &shopapi.DashboardStats{TotalOrders: 4}, nil
		},
		list: func(token string) ([]shopapi.OrderView, error) {
			return []shopapi.OrderView{
				{ID: "o1"},
				{ID: "o2", IsPaid: true},
				{ID: "o3", IsPaid: true, TrackingNumber: "TRK-1"},
				{ID: "o4", IsCancelled: true},
			}, nil
		},
	}
	svc, _ := NewService(api, nil)

	stats, err := svc.Stats(context.Background(), "tok")
	require.NoError(t, err)
	// o1 defaults to processing, o2 is paid without tracking.
	assert.Equal(t, 2, stats.PendingOrders)
}

func TestStatsOrderBookFailureReportsZeroPending(t *testing.T) {
	api := &stubAPI{
		stats: func(token string) (*shopapi.DashboardStats, error) {
			return &shopapi.DashboardStats{TotalOrders: 4}, nil
		},
		list: func(token string) ([]shopapi.OrderView, error) {
			return nil, errors.New("upstream down")
		},
	}
	svc, _ := NewService(api, nil)

	stats, err := svc.Stats(context.Background(), "tok")
	require.NoError(t, err)
	assert.Zero(t, stats.PendingOrders)
	assert.Equal(t, 4, stats.TotalOrders)
}
