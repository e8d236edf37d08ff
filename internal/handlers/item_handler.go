package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"xetasuite/internal/models"
	"xetasuite/internal/services"
)

// maxPhotoSize caps item photo uploads at 5 MB.
const maxPhotoSize = 5 << 20

// Notifier pushes stock alerts to connected consoles. The websocket hub in
// cmd/server implements it.
type Notifier interface {
	BroadcastStockAlert(alert models.StockAlert)
}

type ItemHandler struct {
	ItemService  *services.ItemService
	AuditService *services.AuditService
	Notifier     Notifier
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := h.ItemService.CreateItem(r.Context(), item)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionCreate, "item", created.ID, created.Reference)
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": created})
}

// visibleItem loads an item and enforces the caller's site scope. Items at
// other sites read as not found so their existence is not leaked.
func (h *ItemHandler) visibleItem(r *http.Request, id int) (models.Item, error) {
	item, err := h.ItemService.GetItemByID(r.Context(), id)
	if err != nil {
		return models.Item{}, err
	}
	if siteMismatch(CurrentUser(r), item.SiteID) {
		return models.Item{}, models.ErrNoRecord
	}
	return item, nil
}

func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	item, err := h.visibleItem(r, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": item})
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r, "site_id")
	items, meta, err := h.ItemService.GetItems(r.Context(), listSiteID(CurrentUser(r), params), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeListJSON(w, items, meta)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleItem(r, id); err != nil {
		writeError(w, err)
		return
	}

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	item.ID = id

	updated, err := h.ItemService.UpdateItem(r.Context(), item)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionUpdate, "item", updated.ID, updated.Reference)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": updated})
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleItem(r, id); err != nil {
		writeError(w, err)
		return
	}

	if err := h.ItemService.DeleteItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionDelete, "item", id, strconv.Itoa(id))
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AdjustStock applies a delta to an item's stock and broadcasts an alert when
// the item crosses into critical or empty.
func (h *ItemHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleItem(r, id); err != nil {
		writeError(w, err)
		return
	}

	var entry models.StockEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	entry.ItemID = id
	if user := CurrentUser(r); user != nil {
		entry.CreatedByID = user.ID
	}

	item, created, alert, err := h.ItemService.AdjustStock(r.Context(), entry)
	if err != nil {
		writeError(w, err)
		return
	}

	if alert != nil && h.Notifier != nil {
		h.Notifier.BroadcastStockAlert(*alert)
	}
	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionUpdate, "item", item.ID, "stock "+strconv.Itoa(created.Delta))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  item,
		"entry": created,
	})
}

func (h *ItemHandler) GetStockEntries(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleItem(r, id); err != nil {
		writeError(w, err)
		return
	}

	entries, meta, err := h.ItemService.GetStockEntries(r.Context(), id, parseListParams(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeListJSON(w, entries, meta)
}

// QRCode serves the item's scan label as a PNG.
func (h *ItemHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleItem(r, id); err != nil {
		writeError(w, err)
		return
	}

	png, err := h.ItemService.QRCodePNG(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Write(png)
}

// Scan resolves a scanned label to the console's item detail page.
func (h *ItemHandler) Scan(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get(":code")
	if code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing code"})
		return
	}

	item, err := h.ItemService.GetItemByQRCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	http.Redirect(w, r, h.ItemService.ScanURL(item), http.StatusFound)
}

func (h *ItemHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.visibleItem(r, id); err != nil {
		writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "photo file is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]map[string]string{
			"errors": {"photo": "photo must be a JPEG or PNG image"},
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := h.ItemService.UploadPhoto(r.Context(), id, data, contentType)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := CurrentUser(r); user != nil {
		h.AuditService.Record(r.Context(), user.ID, models.AuditActionUpdate, "item", item.ID, "photo")
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": item})
}
