// Package users backs the admin user console. User records live in the shop
// API; this layer joins them with order counts and guards destructive edits.
package users

import (
	"context"
	"fmt"

	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type upstream interface {
	ListUsers(ctx context.Context, token string) ([]shopapi.User, error)
	GetUser(ctx context.Context, token, id string) (*shopapi.User, error)
	UpdateUser(ctx context.Context, token, id string, input shopapi.UpdateUserInput) (*shopapi.User, error)
	DeleteUser(ctx context.Context, token, id string) error
	ListOrders(ctx context.Context, token string) ([]shopapi.OrderView, error)
}

// Row is a user joined with how many orders they have placed.
type Row struct {
	shopapi.User
	OrderCount int `json:"order_count"`
}

// Service is the admin user management surface.
type Service interface {
	List(ctx context.Context, token string) ([]Row, error)
	Get(ctx context.Context, token, id string) (*shopapi.User, error)
	Update(ctx context.Context, token, id string, input shopapi.UpdateUserInput) (*shopapi.User, error)
	Delete(ctx context.Context, token, actorID, id string) error
}

type service struct {
	api  upstream
	logg *logger.Logger
}

// NewService builds the user admin service.
func NewService(api upstream, logg *logger.Logger) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("shop API client required")
	}
	return &service{api: api, logg: logg}, nil
}

// List joins every user with their order count. An order book failure leaves
// counts at zero rather than failing the whole table.
func (s *service) List(ctx context.Context, token string) ([]Row, error) {
	users, err := s.api.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	orders, err := s.api.ListOrders(ctx, token)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "loading orders for user counts failed")
		}
	} else {
		for _, order := range orders {
			if order.User != nil {
				counts[order.User.ID]++
			}
		}
	}

	rows := make([]Row, len(users))
	for i, user := range users {
		rows[i] = Row{User: user, OrderCount: counts[user.ID]}
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, token, id string) (*shopapi.User, error) {
	return s.api.GetUser(ctx, token, id)
}

func (s *service) Update(ctx context.Context, token, id string, input shopapi.UpdateUserInput) (*shopapi.User, error) {
	user, err := s.api.UpdateUser(ctx, token, id, input)
	if err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "target_user_id", id), "user updated")
	}
	return user, nil
}

// Delete removes a user. The acting admin cannot delete their own account;
// that would strand the console mid-session.
func (s *service) Delete(ctx context.Context, token, actorID, id string) error {
	if actorID != "" && actorID == id {
		return pkgerrors.New(pkgerrors.CodeValidation, "you cannot delete your own account")
	}
	if err := s.api.DeleteUser(ctx, token, id); err != nil {
		return err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "target_user_id", id), "user deleted")
	}
	return nil
}
