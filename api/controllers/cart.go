package controllers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/responses"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/validators"
	cartsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/cart"
	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

// ProductFetcher resolves the product snapshot captured into a cart line.
type ProductFetcher interface {
	GetProduct(ctx context.Context, id string) (*shopapi.Product, error)
}

type addToCartRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size"`
	Color     *string `json:"color"`
}

type updateCartRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size"`
	Color     *string `json:"color"`
}

type removeFromCartRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Size      *string `json:"size"`
	Color     *string `json:"color"`
}

type cartResponse struct {
	Items         []cartsvc.Line  `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

func newCartResponse(store *cartsvc.Store) cartResponse {
	items := store.Lines()
	if items == nil {
		items = []cartsvc.Line{}
	}
	return cartResponse{
		Items:         items,
		TotalQuantity: store.Quantity(),
		TotalPrice:    store.Total(),
	}
}

// CartGet returns the visitor's cart with derived totals.
func CartGet(carts *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := cartForRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartAdd merges a product into the cart, snapshotting its details from the
// shop API at add time.
func CartAdd(carts *cartsvc.Manager, products ProductFetcher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addToCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := cartForRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.GetProduct(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Add(*product, payload.Quantity, payload.Size, payload.Color)
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartUpdate sets the quantity of an existing line; zero removes it.
func CartUpdate(carts *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := cartForRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Update(payload.ProductID, payload.Quantity, payload.Size, payload.Color)
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartRemove drops a line from the cart.
func CartRemove(carts *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload removeFromCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := cartForRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Remove(payload.ProductID, payload.Size, payload.Color)
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartClear empties the cart.
func CartClear(carts *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := cartForRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear()
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

func cartForRequest(carts *cartsvc.Manager, r *http.Request) (*cartsvc.Store, error) {
	visitorID := middleware.VisitorIDFromContext(r.Context())
	if visitorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing visitor identity")
	}
	store, err := carts.Store(r.Context(), visitorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading cart")
	}
	return store, nil
}
