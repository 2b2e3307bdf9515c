package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/responses"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/validators"
	userssvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/users"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type updateUserRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	IsAdmin bool   `json:"is_admin"`
}

// AdminUsers lists every user with their order counts.
func AdminUsers(svc userssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		rows, err := svc.List(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if rows == nil {
			rows = []userssvc.Row{}
		}
		responses.WriteSuccess(w, rows)
	}
}

// AdminUserDetail fetches one user.
func AdminUserDetail(svc userssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		user, err := svc.Get(r.Context(), token, chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// AdminUserUpdate edits a user's profile and admin flag.
func AdminUserUpdate(svc userssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := middleware.TokenFromContext(r.Context())
		user, err := svc.Update(r.Context(), token, chi.URLParam(r, "id"), shopapi.UpdateUserInput{
			Name:    payload.Name,
			Email:   payload.Email,
			IsAdmin: payload.IsAdmin,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// AdminUserDelete removes a user. Admins cannot delete themselves.
func AdminUserDelete(svc userssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.TokenFromContext(ctx)
		actorID := middleware.UserIDFromContext(ctx)
		if err := svc.Delete(ctx, token, actorID, chi.URLParam(r, "id")); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
