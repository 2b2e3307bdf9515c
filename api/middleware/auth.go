package middleware

import (
	"net/http"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/responses"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/session"
	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
)

// RequireUser admits only visitors with a restored or fresh session, seeding
// the request context with the user's identity and bearer token.
func RequireUser(sessions *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return requireSession(sessions, logg, false)
}

// RequireAdmin additionally demands the admin capability flag.
func RequireAdmin(sessions *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return requireSession(sessions, logg, true)
}

func requireSession(sessions *session.Manager, logg *logger.Logger, admin bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			visitorID := VisitorIDFromContext(ctx)
			if visitorID == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing visitor identity"))
				return
			}

			holder, err := sessions.Holder(ctx, visitorID)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading session"))
				return
			}

			sess := holder.Session()
			if sess == nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in required"))
				return
			}
			if admin && !sess.User.IsAdmin {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
				return
			}

			ctx = WithSession(ctx, sess.User.ID, sess.Token, sess.User.IsAdmin)
			if logg != nil {
				ctx = logg.WithUserID(ctx, sess.User.ID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
