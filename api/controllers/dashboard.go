package controllers

import (
	"net/http"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/responses"
	dashboardsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/dashboard"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
)

// Dashboard serves the admin overview numbers.
func Dashboard(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		stats, err := svc.Stats(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}
