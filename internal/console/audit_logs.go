package console

import (
	"context"

	"xetasuite/internal/models"
)

type AuditLogRepository struct {
	Client *Client
}

func (r *AuditLogRepository) List(ctx context.Context, params models.ListParams) (Page[models.AuditLog], error) {
	var page Page[models.AuditLog]
	err := r.Client.Get(ctx, "/audit-logs", listQuery(params), &page)
	return page, err
}

type AuditLogManager struct {
	Repo *AuditLogRepository
}

func (m *AuditLogManager) List(ctx context.Context, params models.ListParams) Result[Page[models.AuditLog]] {
	page, err := m.Repo.List(ctx, params)
	if err != nil {
		return fail[Page[models.AuditLog]](err)
	}
	return ok(page)
}
