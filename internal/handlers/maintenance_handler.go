package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"xetasuite/internal/models"
	"xetasuite/internal/services"
)

type MaintenanceHandler struct {
	MaintenanceService *services.MaintenanceService
	AuditService       *services.AuditService
}

func (h *MaintenanceHandler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var maintenance models.Maintenance
	if err := json.NewDecoder(r.Body).Decode(&maintenance); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user := CurrentUser(r)
	if user != nil {
		maintenance.CreatedByID = user.ID
	}

	created, err := h.MaintenanceService.CreateMaintenance(r.Context(), maintenance)
	if err != nil {
		writeError(w, err)
		return
	}

	if user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionCreate, "maintenance", created.ID, strconv.Itoa(created.ItemID))
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": created})
}

// visibleMaintenance loads a maintenance and enforces the caller's site
// scope.
func (h *MaintenanceHandler) visibleMaintenance(r *http.Request, id int) (models.Maintenance, error) {
	maintenance, err := h.MaintenanceService.GetMaintenanceByID(r.Context(), id)
	if err != nil {
		return models.Maintenance{}, err
	}
	if siteMismatch(CurrentUser(r), maintenance.SiteID) {
		return models.Maintenance{}, models.ErrNoRecord
	}
	return maintenance, nil
}

func (h *MaintenanceHandler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	maintenance, err := h.visibleMaintenance(r, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": maintenance})
}

func (h *MaintenanceHandler) GetMaintenances(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r, "resolved", "site_id")
	maintenances, meta, err := h.MaintenanceService.GetMaintenances(r.Context(), listSiteID(CurrentUser(r), params), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeListJSON(w, maintenances, meta)
}

func (h *MaintenanceHandler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleMaintenance(r, id); err != nil {
		writeError(w, err)
		return
	}

	var maintenance models.Maintenance
	if err := json.NewDecoder(r.Body).Decode(&maintenance); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	maintenance.ID = id

	updated, err := h.MaintenanceService.UpdateMaintenance(r.Context(), maintenance)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionUpdate, "maintenance", updated.ID, strconv.Itoa(updated.ItemID))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": updated})
}

func (h *MaintenanceHandler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleMaintenance(r, id); err != nil {
		writeError(w, err)
		return
	}

	if err := h.MaintenanceService.DeleteMaintenance(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionDelete, "maintenance", id, strconv.Itoa(id))
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
