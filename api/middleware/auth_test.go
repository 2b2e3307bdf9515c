package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/session"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/localstore"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

type stubAuthAPI struct {
	login   func(email, password string) (*shopapi.AuthResponse, error)
	profile func(token string) (*shopapi.User, error)
}

func (s *stubAuthAPI) Login(_ context.Context, email, password string) (*shopapi.AuthResponse, error) {
	return s.login(email, password)
}

func (s *stubAuthAPI) Register(_ context.Context, name, email, password string) (*shopapi.AuthResponse, error) {
	return nil, nil
}

func (s *stubAuthAPI) Profile(_ context.Context, token string) (*shopapi.User, error) {
	if s.profile == nil {
		return nil, nil
	}
	return s.profile(token)
}

func signedInManager(t *testing.T, visitorID string, user shopapi.User) *session.Manager {
	t.Helper()
	api := &stubAuthAPI{
		login: func(email, password string) (*shopapi.AuthResponse, error) {
			return &shopapi.AuthResponse{User: user, Token: "tok-1"}, nil
		},
	}
	manager, err := session.NewManager(api, localstore.NewMemory(), nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	holder, err := manager.Holder(context.Background(), visitorID)
	if err != nil {
		t.Fatalf("holder: %v", err)
	}
	if ok, msg := holder.Login(context.Background(), user.Email, "pw"); !ok {
		t.Fatalf("login failed: %s", msg)
	}
	return manager
}

func requestWithVisitor(visitorID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if visitorID != "" {
		r = r.WithContext(WithVisitorID(r.Context(), visitorID))
	}
	return r
}

func TestRequireUserSeedsContext(t *testing.T) {
	manager := signedInManager(t, "v1", shopapi.User{ID: "u1", Email: "a@b.c"})

	var gotUser, gotToken string
	handler := RequireUser(manager, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
		gotToken = TokenFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestWithVisitor("v1"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "u1" || gotToken != "tok-1" {
		t.Fatalf("context not seeded, user=%q token=%q", gotUser, gotToken)
	}
}

func TestRequireUserRejectsSignedOutVisitor(t *testing.T) {
	api := &stubAuthAPI{}
	manager, err := session.NewManager(api, localstore.NewMemory(), nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	handler := RequireUser(manager, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestWithVisitor("v1"))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireUserRejectsMissingVisitor(t *testing.T) {
	manager := signedInManager(t, "v1", shopapi.User{ID: "u1"})

	handler := RequireUser(manager, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestWithVisitor(""))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	manager := signedInManager(t, "v1", shopapi.User{ID: "u1"})

	handler := RequireAdmin(manager, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestWithVisitor("v1"))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAdminAdmitsAdmin(t *testing.T) {
	manager := signedInManager(t, "v1", shopapi.User{ID: "u2", IsAdmin: true})

	ran := false
	handler := RequireAdmin(manager, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		if !IsAdminFromContext(r.Context()) {
			t.Fatalf("expected admin flag in context")
		}
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestWithVisitor("v1"))

	if !ran || w.Code != http.StatusOK {
		t.Fatalf("expected handler to run with 200, ran=%v code=%d", ran, w.Code)
	}
}
