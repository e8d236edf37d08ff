package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"reflect"
	"testing"

	"xetasuite/internal/models"
)

func TestWriteError(t *testing.T) {
	validation := models.NewValidationError()
	validation.Add("name", "name is required")

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", validation, 422},
		{"not found", models.ErrNoRecord, 404},
		{"wrapped not found", errors.Join(errors.New("get site"), models.ErrNoRecord), 404},
		{"bad credentials", models.ErrInvalidCredentials, 401},
		{"no session", models.ErrSessionNotFound, 401},
		{"forbidden", models.ErrForbidden, 403},
		{"duplicate email", models.ErrDuplicateEmail, 422},
		{"duplicate reference", models.ErrDuplicateReference, 422},
		{"unexpected", errors.New("boom"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d got %d", tc.wantStatus, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected application/json got %s", ct)
			}
		})
	}
}

func TestWriteErrorValidationBody(t *testing.T) {
	validation := models.NewValidationError()
	validation.Add("email", "a valid email is required")

	rec := httptest.NewRecorder()
	writeError(rec, validation)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Errors["email"] != "a valid email is required" {
		t.Fatalf("expected field message got %v", body.Errors)
	}
}

func TestParseListParams(t *testing.T) {
	cases := []struct {
		name       string
		url        string
		filterKeys []string
		want       models.ListParams
	}{
		{
			"all params",
			"/items?page=2&per_page=8&search=mop&sort_by=name&sort_dir=desc",
			nil,
			models.ListParams{Page: 2, PerPage: 8, Search: "mop", SortBy: "name", SortDir: "desc"},
		},
		{
			"defaults",
			"/items",
			nil,
			models.ListParams{Page: 1, PerPage: models.DefaultPerPage, SortDir: "asc"},
		},
		{
			"garbage numbers fall back",
			"/items?page=abc&per_page=-1",
			nil,
			models.ListParams{Page: 1, PerPage: models.DefaultPerPage, SortDir: "asc"},
		},
		{
			"named filters captured",
			"/maintenances?resolved=true&site_id=3",
			[]string{"resolved", "site_id"},
			models.ListParams{
				Page: 1, PerPage: models.DefaultPerPage, SortDir: "asc",
				Filters: map[string]string{"resolved": "true", "site_id": "3"},
			},
		},
		{
			"unnamed filters ignored",
			"/maintenances?resolved=true",
			nil,
			models.ListParams{Page: 1, PerPage: models.DefaultPerPage, SortDir: "asc"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			got := parseListParams(r, tc.filterKeys...)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %+v got %+v", tc.want, got)
			}
		})
	}
}

func TestSiteMismatch(t *testing.T) {
	hq := &models.User{SiteID: 1, Site: &models.Site{Headquarters: true}}
	admin := &models.User{Roles: []string{models.RoleAdmin}, SiteID: 2}
	scoped := &models.User{SiteID: 7, Site: &models.Site{}}

	cases := []struct {
		name   string
		user   *models.User
		siteID int
		want   bool
	}{
		{"nil user", nil, 7, true},
		{"headquarters sees everything", hq, 9, false},
		{"admin sees everything", admin, 9, false},
		{"own site", scoped, 7, false},
		{"other site", scoped, 8, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := siteMismatch(tc.user, tc.siteID); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestListSiteID(t *testing.T) {
	hq := &models.User{SiteID: 1, Site: &models.Site{Headquarters: true}}
	scoped := &models.User{SiteID: 7, Site: &models.Site{}}

	withFilter := models.ListParams{Filters: map[string]string{"site_id": "3"}}

	if got := listSiteID(hq, models.ListParams{}); got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
	if got := listSiteID(hq, withFilter); got != 3 {
		t.Fatalf("expected narrowed site 3 got %d", got)
	}
	// scoped callers cannot widen or switch their site
	if got := listSiteID(scoped, withFilter); got != 7 {
		t.Fatalf("expected pinned site 7 got %d", got)
	}
	badFilter := models.ListParams{Filters: map[string]string{"site_id": "zero"}}
	if got := listSiteID(hq, badFilter); got != 0 {
		t.Fatalf("expected 0 on bad filter got %d", got)
	}
}

func TestScopeSiteID(t *testing.T) {
	admin := &models.User{Roles: []string{models.RoleAdmin}, SiteID: 4}
	hq := &models.User{SiteID: 1, Site: &models.Site{Headquarters: true}}
	scoped := &models.User{SiteID: 7, Site: &models.Site{}}

	if got := scopeSiteID(admin); got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
	if got := scopeSiteID(hq); got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
	if got := scopeSiteID(scoped); got != 7 {
		t.Fatalf("expected 7 got %d", got)
	}
	if got := scopeSiteID(nil); got != -1 {
		t.Fatalf("expected -1 got %d", got)
	}
}
