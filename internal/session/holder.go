// Package session holds the authenticated user and bearer token for a
// visitor, persisting the token so a returning visitor stays signed in.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	pkgerrors "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/errors"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/localstore"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
	"github.com/golang-jwt/jwt/v5"
)

// Fallback messages when the shop API fails without a usable payload.
const (
	loginFailedMessage    = "Login failed"
	registerFailedMessage = "Registration failed"
)

// upstream is the slice of the shop API the holder needs.
type upstream interface {
	Login(ctx context.Context, email, password string) (*shopapi.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*shopapi.AuthResponse, error)
	Profile(ctx context.Context, token string) (*shopapi.User, error)
}

// Session is the authenticated user plus the token that proves it.
type Session struct {
	User  shopapi.User
	Token string
}

// Holder owns one visitor's session. UI handlers read it; only the holder
// mutates it. A failed login or register leaves existing state untouched.
type Holder struct {
	mu       sync.Mutex
	session  *Session
	restored bool

	api   upstream
	state localstore.Store
	key   string
	logg  *logger.Logger
}

// NewHolder builds an unrestored holder persisting its token under key.
func NewHolder(api upstream, state localstore.Store, key string, logg *logger.Logger) (*Holder, error) {
	if api == nil {
		return nil, fmt.Errorf("shop API client required")
	}
	if state == nil {
		return nil, fmt.Errorf("state store required")
	}
	if key == "" {
		return nil, fmt.Errorf("state key required")
	}
	return &Holder{api: api, state: state, key: key, logg: logg}, nil
}

// Restore validates a previously persisted token against the shop API. Any
// failure (expired token, rejection, network error) discards the token and
// leaves the holder unauthenticated; nothing is surfaced. Idempotent.
func (h *Holder) Restore(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.restored {
		return
	}
	h.restored = true

	token, err := h.state.Get(ctx, h.key)
	if errors.Is(err, localstore.ErrNotFound) {
		return
	}
	if err != nil {
		if h.logg != nil {
			h.logg.Warn(ctx, "reading persisted token failed, starting unauthenticated")
		}
		return
	}

	if tokenExpired(token) {
		h.discardTokenLocked(ctx)
		return
	}

	user, err := h.api.Profile(ctx, token)
	if err != nil {
		h.discardTokenLocked(ctx)
		return
	}

	h.session = &Session{User: *user, Token: token}
}

// Login authenticates against the shop API. On success the session is stored
// in memory and the token persisted; on failure ok is false and message
// carries the API's error message or a generic fallback.
func (h *Holder) Login(ctx context.Context, email, password string) (ok bool, message string) {
	auth, err := h.api.Login(ctx, email, password)
	if err != nil {
		return false, failureMessage(err, loginFailedMessage)
	}
	h.adopt(ctx, auth)
	return true, ""
}

// Register creates an account server-side, then behaves like Login.
func (h *Holder) Register(ctx context.Context, name, email, password string) (ok bool, message string) {
	auth, err := h.api.Register(ctx, name, email, password)
	if err != nil {
		return false, failureMessage(err, registerFailedMessage)
	}
	h.adopt(ctx, auth)
	return true, ""
}

// Logout clears the in-memory session and the persisted token. The shop API
// is not called.
func (h *Holder) Logout(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = nil
	h.discardTokenLocked(ctx)
}

// Session returns a copy of the current session, if any.
func (h *Holder) Session() *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		return nil
	}
	copied := *h.session
	return &copied
}

// IsAuthenticated reports whether a session is present.
func (h *Holder) IsAuthenticated() bool {
	return h.Session() != nil
}

// IsAdmin reports whether the session carries the admin capability flag.
func (h *Holder) IsAdmin() bool {
	sess := h.Session()
	return sess != nil && sess.User.IsAdmin
}

// Token returns the bearer token for outbound calls, empty when signed out.
func (h *Holder) Token() string {
	sess := h.Session()
	if sess == nil {
		return ""
	}
	return sess.Token
}

func (h *Holder) adopt(ctx context.Context, auth *shopapi.AuthResponse) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = &Session{User: auth.User, Token: auth.Token}
	if err := h.state.Set(ctx, h.key, auth.Token); err != nil && h.logg != nil {
		h.logg.Warn(ctx, "persisting token failed, session is memory-only")
	}
}

func (h *Holder) discardTokenLocked(ctx context.Context) {
	if err := h.state.Delete(ctx, h.key); err != nil && h.logg != nil {
		h.logg.Warn(ctx, "removing persisted token failed")
	}
}

// failureMessage surfaces the API's own error message when one exists; plain
// transport failures collapse to the generic fallback.
func failureMessage(err error, fallback string) string {
	typed := pkgerrors.As(err)
	if typed == nil {
		return fallback
	}
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeForbidden,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict:
		if msg := typed.Message(); msg != "" {
			return msg
		}
	}
	return fallback
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; only the shop API holds the signing secret. Opaque tokens pass
// through for the API to judge.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
