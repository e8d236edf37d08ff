package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"xetasuite/internal/models"
	"xetasuite/internal/services"
)

type CleaningHandler struct {
	CleaningService *services.CleaningService
	AuditService    *services.AuditService
}

func (h *CleaningHandler) CreateCleaning(w http.ResponseWriter, r *http.Request) {
	var cleaning models.Cleaning
	if err := json.NewDecoder(r.Body).Decode(&cleaning); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user := CurrentUser(r)
	if user != nil {
		cleaning.CreatedByID = user.ID
		if cleaning.DoneByID == 0 {
			cleaning.DoneByID = user.ID
		}
	}

	created, err := h.CleaningService.CreateCleaning(r.Context(), cleaning)
	if err != nil {
		writeError(w, err)
		return
	}

	if user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionCreate, "cleaning", created.ID, strconv.Itoa(created.ItemID))
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": created})
}

// visibleCleaning loads a cleaning and enforces the caller's site scope.
func (h *CleaningHandler) visibleCleaning(r *http.Request, id int) (models.Cleaning, error) {
	cleaning, err := h.CleaningService.GetCleaningByID(r.Context(), id)
	if err != nil {
		return models.Cleaning{}, err
	}
	if siteMismatch(CurrentUser(r), cleaning.SiteID) {
		return models.Cleaning{}, models.ErrNoRecord
	}
	return cleaning, nil
}

func (h *CleaningHandler) GetCleaning(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	cleaning, err := h.visibleCleaning(r, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": cleaning})
}

func (h *CleaningHandler) GetCleanings(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r, "site_id")
	cleanings, meta, err := h.CleaningService.GetCleanings(r.Context(), listSiteID(CurrentUser(r), params), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeListJSON(w, cleanings, meta)
}

func (h *CleaningHandler) UpdateCleaning(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleCleaning(r, id); err != nil {
		writeError(w, err)
		return
	}

	var cleaning models.Cleaning
	if err := json.NewDecoder(r.Body).Decode(&cleaning); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	cleaning.ID = id

	updated, err := h.CleaningService.UpdateCleaning(r.Context(), cleaning)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionUpdate, "cleaning", updated.ID, strconv.Itoa(updated.ItemID))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": updated})
}

func (h *CleaningHandler) DeleteCleaning(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleCleaning(r, id); err != nil {
		writeError(w, err)
		return
	}

	if err := h.CleaningService.DeleteCleaning(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionDelete, "cleaning", id, strconv.Itoa(id))
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
