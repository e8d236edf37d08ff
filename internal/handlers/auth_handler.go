package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"xetasuite/internal/models"
	"xetasuite/internal/services"
)

type AuthHandler struct {
	AuthService   *services.AuthService
	AuditService  *services.AuditService
	SecureCookies bool
}

// CSRFToken hands the console the token it must echo back in the
// X-CSRF-Token header on unsafe requests.
func (h *AuthHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"csrf_token": csrf.Token(r)})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, session, err := h.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	h.AuditService.Record(r.Context(), user.ID, models.AuditActionLogin, "user", user.ID, user.Email)
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(models.SessionCookie); err == nil {
		token = cookie.Value
	}
	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionLogout, "user", user.ID, user.Email)
	}
	h.AuthService.Logout(r.Context(), token)

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	if user == nil {
		writeError(w, models.ErrSessionNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": user})
}

// WSTicket issues a short-lived token so the websocket upgrade does not have
// to carry the session cookie.
func (h *AuthHandler) WSTicket(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	if user == nil {
		writeError(w, models.ErrSessionNotFound)
		return
	}
	ticket, err := h.AuthService.WSTicket(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ticket": ticket})
}
