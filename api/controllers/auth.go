package controllers

import (
	"net/http"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/responses"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/validators"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/session"
	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type sessionResponse struct {
	User    shopapi.User `json:"user"`
	IsAdmin bool         `json:"is_admin"`
}

func newSessionResponse(sess *session.Session) sessionResponse {
	return sessionResponse{User: sess.User, IsAdmin: sess.User.IsAdmin}
}

// Login signs the visitor in against the shop API.
func Login(sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		holder, err := holderForRequest(sessions, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ok, message := holder.Login(r.Context(), payload.Email, payload.Password)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, message))
			return
		}

		responses.WriteSuccess(w, newSessionResponse(holder.Session()))
	}
}

// Register creates an account and signs the visitor in.
func Register(sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		holder, err := holderForRequest(sessions, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ok, message := holder.Register(r.Context(), payload.Name, payload.Email, payload.Password)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, message))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newSessionResponse(holder.Session()))
	}
}

// Logout clears the visitor's session and persisted token.
func Logout(sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder, err := holderForRequest(sessions, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		holder.Logout(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "signed_out"})
	}
}

// Me reports the visitor's session, signed in or not.
func Me(sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder, err := holderForRequest(sessions, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess := holder.Session()
		if sess == nil {
			responses.WriteSuccess(w, map[string]any{"authenticated": false})
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"authenticated": true,
			"session":       newSessionResponse(sess),
		})
	}
}

func holderForRequest(sessions *session.Manager, r *http.Request) (*session.Holder, error) {
	visitorID := middleware.VisitorIDFromContext(r.Context())
	if visitorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing visitor identity")
	}
	holder, err := sessions.Holder(r.Context(), visitorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading session")
	}
	return holder, nil
}
