package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/responses"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/validators"
	catalogsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/catalog"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type productRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Image        string          `json:"image"`
	Category     string          `json:"category"`
	Sizes        []string        `json:"sizes"`
	Colors       []string        `json:"colors"`
	CountInStock int             `json:"count_in_stock" validate:"min=0"`
	Featured     bool            `json:"featured"`
}

func (r productRequest) toInput() shopapi.ProductInput {
	return shopapi.ProductInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Image:        r.Image,
		Category:     r.Category,
		Sizes:        r.Sizes,
		Colors:       r.Colors,
		CountInStock: r.CountInStock,
		Featured:     r.Featured,
	}
}

// AdminProductCreate adds a product to the catalog.
func AdminProductCreate(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := middleware.TokenFromContext(r.Context())
		product, err := svc.Create(r.Context(), token, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminProductUpdate replaces a product's details.
func AdminProductUpdate(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := middleware.TokenFromContext(r.Context())
		product, err := svc.Update(r.Context(), token, chi.URLParam(r, "id"), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminProductDelete removes a product from the catalog.
func AdminProductDelete(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		if err := svc.Delete(r.Context(), token, chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
