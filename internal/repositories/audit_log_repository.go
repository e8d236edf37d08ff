package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"xetasuite/internal/models"
)

type AuditLogRepository struct {
	DB *sql.DB
}

func (r *AuditLogRepository) CreateAuditLog(ctx context.Context, l models.AuditLog) (models.AuditLog, error) {
	query := `
		INSERT INTO audit_logs (actor_id, action, entity, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		l.ActorID, l.Action, l.Entity, l.EntityID, l.Detail,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return models.AuditLog{}, err
	}
	return l, nil
}

func (r *AuditLogRepository) GetAuditLogs(ctx context.Context, params models.ListParams) ([]models.AuditLog, models.ListMeta, error) {
	params = params.Normalize()

	var (
		conditions []string
		args       []interface{}
	)
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(a.entity ILIKE $%d OR a.action ILIKE $%d OR a.detail ILIKE $%d)", len(args), len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_logs a"+where, args...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.actor_id, COALESCE(u.first_name || ' ' || u.last_name, ''),
		       a.action, a.entity, a.entity_id, a.detail, a.created_at
		FROM audit_logs a
		LEFT JOIN users u ON a.actor_id = u.id
		%s ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var l models.AuditLog
		if err := rows.Scan(&l.ID, &l.ActorID, &l.ActorName, &l.Action, &l.Entity, &l.EntityID, &l.Detail, &l.CreatedAt); err != nil {
			return nil, models.ListMeta{}, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return logs, models.NewListMeta(params.Page, params.PerPage, total), nil
}

// PurgeOlderThan removes logs past the retention window and reports how many
// rows went away.
func (r *AuditLogRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM audit_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
