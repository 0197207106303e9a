package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clerk/clerk-sdk-go/v2"
)

func setClerkInitialized(t *testing.T, value bool) {
	t.Helper()
	prev := clerkInitialized
	clerkInitialized = value
	t.Cleanup(func() {
		clerkInitialized = prev
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestSessionTokenPrefersBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: "cookie-token"})
	if got := sessionToken(req); got != "cookie-token" {
		t.Fatalf("expected cookie token, got %q", got)
	}

	req.Header.Set("Authorization", "Bearer header-token")
	if got := sessionToken(req); got != "header-token" {
		t.Fatalf("expected header token, got %q", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if got := sessionToken(req); got != "" {
		t.Fatalf("expected no token for basic auth, got %q", got)
	}
}

func TestRequireSessionPassesThroughWhenClerkDisabled(t *testing.T) {
	setClerkInitialized(t, false)

	rec := httptest.NewRecorder()
	RequireSession(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/teams", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}
}

func TestRequireSessionRejectsMissingClaims(t *testing.T) {
	setClerkInitialized(t, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	RequireSession(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "authentication required") {
		t.Fatalf("expected JSON error body, got %q", rec.Body.String())
	}
}

func TestRequireSessionAcceptsClaims(t *testing.T) {
	setClerkInitialized(t, true)

	claims := &clerk.SessionClaims{}
	claims.Subject = "user_123"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", nil)
	req = req.WithContext(clerk.ContextWithSessionClaims(req.Context(), claims))

	rec := httptest.NewRecorder()
	RequireSession(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected claims to be accepted, got %d", rec.Code)
	}
}

func TestWithClerkSessionIgnoresInvalidToken(t *testing.T) {
	setClerkInitialized(t, true)

	var hasClaims bool
	handler := WithClerkSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasClaims = clerk.SessionClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if hasClaims {
		t.Fatalf("expected no claims for an invalid token")
	}
}
