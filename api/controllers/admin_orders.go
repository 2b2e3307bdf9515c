package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/responses"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/validators"
	orderssvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/orders"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/pagination"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminOrders serves one page of the order book, filterable by derived status.
func AdminOrders(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<20)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		perPage, err := validators.ParseQueryInt(r, "per_page", pagination.DefaultPerPage, 1, pagination.MaxPerPage)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := orderssvc.ListFilter{
			Status: strings.TrimSpace(r.URL.Query().Get("status")),
			Page:   pagination.Params{Page: page, PerPage: perPage},
		}

		token := middleware.TokenFromContext(r.Context())
		result, err := svc.List(r.Context(), token, filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminOrderStatusUpdate assigns an explicit status to an order.
func AdminOrderStatusUpdate(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := middleware.TokenFromContext(r.Context())
		order, err := svc.UpdateStatus(r.Context(), token, chi.URLParam(r, "id"), payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
