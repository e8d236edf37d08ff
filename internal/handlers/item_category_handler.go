package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"xetasuite/internal/models"
	"xetasuite/internal/services"
)

type ItemCategoryHandler struct {
	ItemCategoryService *services.ItemCategoryService
	AuditService        *services.AuditService
}

func (h *ItemCategoryHandler) CreateItemCategory(w http.ResponseWriter, r *http.Request) {
	var category models.ItemCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := h.ItemCategoryService.CreateItemCategory(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionCreate, "item_category", created.ID, created.Name)
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": created})
}

func (h *ItemCategoryHandler) GetItemCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	category, err := h.ItemCategoryService.GetItemCategoryByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": category})
}

func (h *ItemCategoryHandler) GetItemCategories(w http.ResponseWriter, r *http.Request) {
	categories, meta, err := h.ItemCategoryService.GetItemCategories(r.Context(), parseListParams(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeListJSON(w, categories, meta)
}

func (h *ItemCategoryHandler) UpdateItemCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var category models.ItemCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	category.ID = id

	updated, err := h.ItemCategoryService.UpdateItemCategory(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionUpdate, "item_category", updated.ID, updated.Name)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": updated})
}

func (h *ItemCategoryHandler) DeleteItemCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.ItemCategoryService.DeleteItemCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionDelete, "item_category", id, strconv.Itoa(id))
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
