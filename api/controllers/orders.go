package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/responses"
	orderssvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/orders"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
)

// MyOrders lists the signed-in customer's order history.
func MyOrders(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		orders, err := svc.Mine(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if orders == nil {
			orders = []orderssvc.Order{}
		}
		responses.WriteSuccess(w, orders)
	}
}

// OrderDetail serves one order with its derived status.
func OrderDetail(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		order, err := svc.Get(r.Context(), token, chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
