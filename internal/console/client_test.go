package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"xetasuite/internal/models"
)

// newTestAPI fakes just enough of the server: CSRF token endpoint, cookie
// login, and a sites listing.
func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /auth/csrf", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"csrf_token": "test-token"})
	})

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-CSRF-Token") != "test-token" {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid csrf token"})
			return
		}
		var creds models.Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "correct horse" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: models.SessionCookie, Value: "session-1", Path: "/"})
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": models.User{ID: 1, FirstName: "Ana", Email: creds.Email, Roles: []string{models.RoleAdmin}},
		})
	})

	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(models.SessionCookie)
		if err != nil || cookie.Value != "session-1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": models.User{ID: 1, FirstName: "Ana", Roles: []string{models.RoleAdmin}},
		})
	})

	mux.HandleFunc("GET /sites", func(w http.ResponseWriter, r *http.Request) {
		sites := make([]models.Site, 8)
		for i := range sites {
			sites[i] = models.Site{ID: i + 1, Name: "Site"}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": sites,
			"meta": models.ListMeta{CurrentPage: 1, LastPage: 3, Total: 24},
		})
	})

	mux.HandleFunc("POST /sites", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"errors": {"name": "name is required"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLoginAndSession(t *testing.T) {
	srv := newTestAPI(t)
	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	auth := NewAuth(client)
	ctx := context.Background()

	res := auth.Login(ctx, "ana@example.com", "wrong")
	if res.Success {
		t.Fatal("expected login failure")
	}
	if res.Message != "invalid credentials" {
		t.Fatalf("expected invalid credentials got %q", res.Message)
	}
	if auth.LoggedIn() {
		t.Fatal("expected no session after failed login")
	}

	res = auth.Login(ctx, "ana@example.com", "correct horse")
	if !res.Success {
		t.Fatalf("expected login success got %q", res.Message)
	}
	if !auth.LoggedIn() {
		t.Fatal("expected session after login")
	}
	if token := client.SessionToken(); token != "session-1" {
		t.Fatalf("expected session cookie stored got %q", token)
	}

	check := auth.CheckSession(ctx)
	if !check.Success || check.Data.ID != 1 {
		t.Fatalf("expected session check to return user got %+v", check)
	}

	if !auth.Can(models.PermUsersManage) {
		t.Fatal("admin must pass every permission check")
	}
	if auth.CanAny() {
		t.Fatal("empty permission set must never be satisfied")
	}
}

func TestSiteManagerList(t *testing.T) {
	srv := newTestAPI(t)
	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	mgr := &SiteManager{Repo: &SiteRepository{Client: client}}

	res := mgr.List(context.Background(), models.ListParams{Page: 1, PerPage: 8})
	if !res.Success {
		t.Fatalf("expected success got %q", res.Message)
	}
	if got := len(res.Data.Data); got != 8 {
		t.Fatalf("expected 8 sites got %d", got)
	}
	meta := res.Data.Meta
	if meta.CurrentPage != 1 || meta.LastPage != 3 || meta.Total != 24 {
		t.Fatalf("expected meta {1 3 24} got %+v", meta)
	}
}

func TestSiteManagerValidationErrors(t *testing.T) {
	srv := newTestAPI(t)
	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	mgr := &SiteManager{Repo: &SiteRepository{Client: client}}

	res := mgr.Create(context.Background(), models.Site{})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Fields["name"] != "name is required" {
		t.Fatalf("expected field error got %+v", res.Fields)
	}
}

func TestManagerUnreachableServer(t *testing.T) {
	client, err := NewClient("http://127.0.0.1:1")
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	mgr := &SiteManager{Repo: &SiteRepository{Client: client}}

	res := mgr.List(context.Background(), models.ListParams{})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Message == "" {
		t.Fatal("expected a message for the user")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	fieldErr := &APIError{Status: 422, Fields: map[string]string{"email": "taken"}}
	if fieldErr.Error() != "email: taken" {
		t.Fatalf("unexpected message %q", fieldErr.Error())
	}

	plain := &APIError{Status: 404, Message: "resource not found"}
	if plain.Error() != "resource not found" {
		t.Fatalf("unexpected message %q", plain.Error())
	}

	bare := &APIError{Status: 500}
	if bare.Error() != "request failed with status 500" {
		t.Fatalf("unexpected message %q", bare.Error())
	}
}
