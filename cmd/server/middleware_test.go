package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"xetasuite/internal/handlers"
	"xetasuite/internal/models"
)

func TestRequirePermission(t *testing.T) {
	app := &application{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := app.requirePermission(models.PermSitesManage)(next)

	cases := []struct {
		name       string
		user       *models.User
		wantStatus int
	}{
		{"no user in context", nil, http.StatusUnauthorized},
		{"missing permission", &models.User{Permissions: []string{models.PermSitesView}}, http.StatusForbidden},
		{"held permission", &models.User{Permissions: []string{models.PermSitesManage}}, http.StatusOK},
		{"admin passes", &models.User{Roles: []string{models.RoleAdmin}}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/sites", nil)
			if tc.user != nil {
				r = r.WithContext(context.WithValue(r.Context(), handlers.ContextKeyUser, *tc.user))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestSecureHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	secureHeaders(next).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if got := rec.Header().Get("X-Frame-Options"); got != "deny" {
		t.Fatalf("expected deny got %q", got)
	}
	if got := rec.Header().Get("X-XSS-Protection"); got != "1; mode=block" {
		t.Fatalf("expected xss header got %q", got)
	}
}
