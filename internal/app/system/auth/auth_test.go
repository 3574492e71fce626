package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/policy/domainpolicy"
)

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	m, err := NewSessionManager("0123456789abcdef0123456789abcdef", "lenshub_session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return m
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestEstablishAndLoad(t *testing.T) {
	m := newTestManager(t)

	// Establish writes the cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	err := m.Establish(rec, req, SessionUser{UID: "u1", Name: "Asha", Email: "asha@iiitnr.edu.in"})
	if err != nil {
		t.Fatalf("Establish: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	// LoadSessionUser restores the user on the next request.
	var got *SessionUser
	handler := m.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))
	req2 := httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req2)

	if got == nil {
		t.Fatal("expected user in context")
	}
	if got.UID != "u1" || got.Email != "asha@iiitnr.edu.in" || got.Name != "Asha" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestClear_DropsSession(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.Establish(rec, req, SessionUser{UID: "u1"}); err != nil {
		t.Fatalf("Establish: %v", err)
	}

	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, c := range rec.Result().Cookies() {
		req2.AddCookie(c)
	}
	if err := m.Clear(rec2, req2); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	var found bool
	handler := m.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = CurrentUser(r)
	}))
	req3 := httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range rec2.Result().Cookies() {
		req3.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req3)

	if found {
		t.Error("expected no user after Clear")
	}
}

func TestRequireSignedIn(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireSignedIn(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := WithTestUser(httptest.NewRequest(http.MethodGet, "/", nil), &SessionUser{UID: "u1"})
	RequireSignedIn(ok).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("signed in: got %d, want 200", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	policy := domainpolicy.New("iiitnr.edu.in", []string{"admin@iiitnr.edu.in"})
	mw := RequireAdmin(policy)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	mw(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := WithTestUser(httptest.NewRequest(http.MethodGet, "/", nil), &SessionUser{Email: "member@iiitnr.edu.in"})
	mw(ok).ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin: got %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = WithTestUser(httptest.NewRequest(http.MethodGet, "/", nil), &SessionUser{Email: "ADMIN@iiitnr.edu.in"})
	mw(ok).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin: got %d, want 200", rec.Code)
	}
}
