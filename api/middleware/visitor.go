package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
)

// VisitorCookie identifies the browser the cart and session hang off.
const VisitorCookie = "storefront_visitor"

const visitorCookieMaxAge = 60 * 60 * 24 * 365

// Visitor assigns every request a stable visitor identity. A browser without
// the cookie gets a fresh UUID; the identity rides the request context so
// handlers can look up the visitor's cart and session.
func Visitor(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitorID := ""
			if cookie, err := r.Cookie(VisitorCookie); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					visitorID = cookie.Value
				}
			}
			if visitorID == "" {
				visitorID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    visitorID,
					Path:     "/",
					MaxAge:   visitorCookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithVisitorID(r.Context(), visitorID)
			if logg != nil {
				ctx = logg.WithVisitorID(ctx, visitorID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
