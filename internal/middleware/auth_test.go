package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func signTestToken(t *testing.T, secret, role string, exp time.Time) string {
	t.Helper()
	token, err := SignToken(secret, TokenClaims{
		Sub:      "op-1",
		Role:     role,
		Exp:      exp.Unix(),
		Issuer:   "campaignd",
		Audience: "campaignd-admin",
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthPopulatesSubjectAndRole(t *testing.T) {
	token := signTestToken(t, "secret", RoleAdministrator, time.Now().Add(time.Hour))

	var gotSub, gotRole string
	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if gotSub != "op-1" || gotRole != RoleAdministrator {
		t.Fatalf("context mismatch: sub=%q role=%q", gotSub, gotRole)
	}
}

func TestAuthRejectsBadSignature(t *testing.T) {
	token := signTestToken(t, "other-secret", RoleAdministrator, time.Now().Add(time.Hour))

	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	token := signTestToken(t, "secret", RoleAdministrator, time.Now().Add(-time.Hour))

	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRequireAdminRejectsOtherRoles(t *testing.T) {
	token := signTestToken(t, "secret", "viewer", time.Now().Add(time.Hour))

	handler := Auth("secret")(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})))

	req := httptest.NewRequest("GET", "/admin/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
