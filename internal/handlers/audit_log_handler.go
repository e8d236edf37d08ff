package handlers

import (
	"net/http"

	"xetasuite/internal/services"
)

type AuditLogHandler struct {
	AuditService *services.AuditService
}

func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, meta, err := h.AuditService.GetAuditLogs(r.Context(), parseListParams(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeListJSON(w, logs, meta)
}
