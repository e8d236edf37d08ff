package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"xetasuite/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeListJSON(w http.ResponseWriter, data interface{}, meta models.ListMeta) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": data,
		"meta": meta,
	})
}

// writeError maps service errors onto the API error taxonomy: validation
// failures carry field messages, everything unexpected collapses to a 500
// with the detail kept server-side.
func writeError(w http.ResponseWriter, err error) {
	var v *models.ValidationError
	switch {
	case errors.As(err, &v):
		writeJSON(w, http.StatusUnprocessableEntity, v)
	case errors.Is(err, models.ErrNoRecord):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "resource not found"})
	case errors.Is(err, models.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	case errors.Is(err, models.ErrSessionNotFound):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case errors.Is(err, models.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, models.ErrDuplicateEmail):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]map[string]string{
			"errors": {"email": "email is already in use"},
		})
	case errors.Is(err, models.ErrDuplicateReference):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]map[string]string{
			"errors": {"reference": "reference is already in use"},
		})
	default:
		log.Printf("Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func pathID(r *http.Request) (int, error) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		return 0, errors.New("missing id")
	}
	return strconv.Atoi(idStr)
}

// parseListParams reads the shared pagination query parameters, plus any
// entity-specific filter keys the caller names.
func parseListParams(r *http.Request, filterKeys ...string) models.ListParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	params := models.ListParams{
		Page:    page,
		PerPage: perPage,
		Search:  q.Get("search"),
		SortBy:  q.Get("sort_by"),
		SortDir: q.Get("sort_dir"),
	}.Normalize()

	for _, key := range filterKeys {
		if value := q.Get(key); value != "" {
			if params.Filters == nil {
				params.Filters = make(map[string]string, len(filterKeys))
			}
			params.Filters[key] = value
		}
	}
	return params
}

type contextKey string

// ContextKeyUser stores the authenticated models.User on the request
// context.
const ContextKeyUser = contextKey("user")

// CurrentUser pulls the authenticated user placed in the request context by
// the session middleware.
func CurrentUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(ContextKeyUser).(models.User)
	if !ok {
		return nil
	}
	return &user
}

// scopeSiteID is the site filter for list queries: zero means cross-site
// visibility (headquarters and admins).
func scopeSiteID(user *models.User) int {
	if user == nil {
		return -1
	}
	if user.SeesAllSites() {
		return 0
	}
	return user.SiteID
}

// listSiteID resolves the site scope for a list query. Scoped users are
// pinned to their own site; cross-site callers may narrow to one site with
// the site_id filter.
func listSiteID(user *models.User, params models.ListParams) int {
	siteID := scopeSiteID(user)
	if siteID == 0 {
		if id, err := strconv.Atoi(params.Filter("site_id")); err == nil && id > 0 {
			return id
		}
	}
	return siteID
}

// siteMismatch reports whether a record belonging to siteID is outside the
// caller's visibility.
func siteMismatch(user *models.User, siteID int) bool {
	if user == nil {
		return true
	}
	if user.SeesAllSites() {
		return false
	}
	return user.SiteID != siteID
}
