package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/pagination"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type stubAPI struct {
	mine         func(token string) ([]shopapi.OrderView, error)
	list         func(token string) ([]shopapi.OrderView, error)
	get          func(token, id string) (*shopapi.OrderView, error)
	updateStatus func(token, id, status string) (*shopapi.OrderView, error)
}

func (s *stubAPI) MyOrders(_ context.Context, token string) ([]shopapi.OrderView, error) {
	if s.mine == nil {
		return nil, errors.New("not implemented")
	}
	return s.mine(token)
}

func (s *stubAPI) ListOrders(_ context.Context, token string) ([]shopapi.OrderView, error) {
	if s.list == nil {
		return nil, errors.New("not implemented")
	}
	return s.list(token)
}

func (s *stubAPI) GetOrder(_ context.Context, token, id string) (*shopapi.OrderView, error) {
	if s.get == nil {
		return nil, errors.New("not implemented")
	}
	return s.get(token, id)
}

func (s *stubAPI) UpdateOrderStatus(_ context.Context, token, id, status string) (*shopapi.OrderView, error) {
	if s.updateStatus == nil {
		return nil, errors.New("not implemented")
	}
	return s.updateStatus(token, id, status)
}

func newService(t *testing.T, api *stubAPI) Service {
	t.Helper()
	svc, err := NewService(api, nil)
	require.NoError(t, err)
	return svc
}

func TestMineAnnotatesDerivedStatus(t *testing.T) {
	api := &stubAPI{
		mine: func(token string) ([]shopapi.OrderView, error) {
			assert.Equal(t, "tok-1", token)
			return []shopapi.OrderView{
				{ID: "o1", IsPaid: true, TrackingNumber: "TRK-1"},
				{ID: "o2", IsCancelled: true},
				{ID: "o3"},
			}, nil
		},
	}

	orders, err := newService(t, api).Mine(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "shipped", orders[0].DerivedStatus)
	assert.Equal(t, "Shipped", orders[0].FormattedStatus)
	assert.Equal(t, "info", orders[0].BadgeColor)

	assert.Equal(t, "cancelled", orders[1].DerivedStatus)
	assert.Equal(t, "danger", orders[1].BadgeColor)

	assert.Equal(t, "processing", orders[2].DerivedStatus)
	assert.Equal(t, "warning", orders[2].BadgeColor)
}

func TestGetAnnotatesSingleOrder(t *testing.T) {
	api := &stubAPI{
		get: func(token, id string) (*shopapi.OrderView, error) {
			return &shopapi.OrderView{ID: id, IsDelivered: true}, nil
		},
	}

	order, err := newService(t, api).Get(context.Background(), "tok", "o1")
	require.NoError(t, err)
	assert.Equal(t, "delivered", order.DerivedStatus)
	assert.Equal(t, "success", order.BadgeColor)
}

func TestListFiltersByDerivedStatus(t *testing.T) {
	api := &stubAPI{
		list: func(token string) ([]shopapi.OrderView, error) {
			return []shopapi.OrderView{
				{ID: "o1", IsPaid: true, TrackingNumber: "TRK-1"},
				{ID: "o2"},
				{ID: "o3", Status: "shipped"},
				{ID: "o4", IsCancelled: true},
			}, nil
		},
	}

	page, err := newService(t, api).List(context.Background(), "tok", ListFilter{Status: "shipped"})
	require.NoError(t, err)
	require.Len(t, page.Orders, 2)
	assert.Equal(t, "o1", page.Orders[0].ID)
	assert.Equal(t, "o3", page.Orders[1].ID)
	assert.Equal(t, 2, page.Meta.TotalItems)
}

func TestListPaginates(t *testing.T) {
	views := make([]shopapi.OrderView, 25)
	for i := range views {
		views[i] = shopapi.OrderView{ID: string(rune('a' + i))}
	}
	api := &stubAPI{
		list: func(token string) ([]shopapi.OrderView, error) { return views, nil },
	}
	svc := newService(t, api)

	page, err := svc.List(context.Background(), "tok", ListFilter{
		Page: pagination.Params{Page: 3, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Len(t, page.Orders, 5)
	assert.Equal(t, 3, page.Meta.Page)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, 25, page.Meta.TotalItems)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newService(t, &stubAPI{})

	_, err := svc.UpdateStatus(context.Background(), "tok", "o1", "teleported")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateStatusNormalizesAndForwards(t *testing.T) {
	var sent string
	api := &stubAPI{
		updateStatus: func(token, id, status string) (*shopapi.OrderView, error) {
			sent = status
			return &shopapi.OrderView{ID: id, Status: status}, nil
		},
	}

	order, err := newService(t, api).UpdateStatus(context.Background(), "tok", "o1", " Shipped ")
	require.NoError(t, err)
	assert.Equal(t, "shipped", sent)
	assert.Equal(t, "shipped", order.DerivedStatus)
}
