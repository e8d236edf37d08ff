package handlers

import (
	"encoding/json"
	"net/http"

	"xetasuite/internal/models"
	"xetasuite/internal/services"
)

type UserHandler struct {
	UserService  *services.UserService
	AuditService *services.AuditService
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := h.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}

	if actor := CurrentUser(r); actor != nil {
		h.AuditService.Record(r.Context(), actor.ID, models.AuditActionCreate, "user", created.ID, created.Email)
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": created})
}

// visibleUser loads a user record and enforces the caller's site scope.
func (h *UserHandler) visibleUser(r *http.Request, id int) (models.User, error) {
	user, err := h.UserService.GetUserByID(r.Context(), id)
	if err != nil {
		return models.User{}, err
	}
	if siteMismatch(CurrentUser(r), user.SiteID) {
		return models.User{}, models.ErrNoRecord
	}
	return user, nil
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	user, err := h.visibleUser(r, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": user})
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r, "site_id")
	users, meta, err := h.UserService.GetUsers(r.Context(), listSiteID(CurrentUser(r), params), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeListJSON(w, users, meta)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleUser(r, id); err != nil {
		writeError(w, err)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	user.ID = id

	updated, err := h.UserService.UpdateUser(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}

	if actor := CurrentUser(r); actor != nil {
		h.AuditService.Record(r.Context(), actor.ID, models.AuditActionUpdate, "user", updated.ID, updated.Email)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": updated})
}

// UpdatePassword changes the caller's own password after verifying the old
// one.
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	actor := CurrentUser(r)
	if actor == nil {
		writeError(w, models.ErrSessionNotFound)
		return
	}

	var body struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.UserService.UpdatePassword(r.Context(), actor.ID, body.OldPassword, body.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	actor := CurrentUser(r)
	if actor != nil && actor.ID == id {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]map[string]string{
			"errors": {"id": "you cannot delete your own account"},
		})
		return
	}

	if _, err := h.visibleUser(r, id); err != nil {
		writeError(w, err)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if actor != nil {
		h.AuditService.Record(r.Context(), actor.ID, models.AuditActionDelete, "user", id, "")
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
