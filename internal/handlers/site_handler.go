package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"xetasuite/internal/models"
	"xetasuite/internal/services"
)

type SiteHandler struct {
	SiteService  *services.SiteService
	AuditService *services.AuditService
}

func (h *SiteHandler) CreateSite(w http.ResponseWriter, r *http.Request) {
	var site models.Site
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := h.SiteService.CreateSite(r.Context(), site)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionCreate, "site", created.ID, created.Name)
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": created})
}

func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	site, err := h.SiteService.GetSiteByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": site})
}

func (h *SiteHandler) GetSites(w http.ResponseWriter, r *http.Request) {
	sites, meta, err := h.SiteService.GetSites(r.Context(), parseListParams(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeListJSON(w, sites, meta)
}

func (h *SiteHandler) UpdateSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var site models.Site
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	site.ID = id

	updated, err := h.SiteService.UpdateSite(r.Context(), site)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionUpdate, "site", updated.ID, updated.Name)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": updated})
}

func (h *SiteHandler) DeleteSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.SiteService.DeleteSite(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionDelete, "site", id, strconv.Itoa(id))
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
