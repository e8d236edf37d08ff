package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"xetasuite/internal/models"
)

type MaintenanceRepository struct {
	DB *sql.DB
}

var maintenanceSortColumns = map[string]string{
	"created_at":  "m.created_at",
	"resolved_at": "m.resolved_at",
}

const maintenanceSelect = `
	SELECT m.id, m.item_id, i.id, i.name, i.reference, m.site_id, m.description,
	       m.resolved, m.resolved_at, m.created_at, m.updated_at, m.created_by_id
	FROM maintenances m
	JOIN items i ON m.item_id = i.id
`

func scanMaintenance(scan func(dest ...interface{}) error) (models.Maintenance, error) {
	var (
		m    models.Maintenance
		item models.Item
	)
	err := scan(
		&m.ID, &m.ItemID, &item.ID, &item.Name, &item.Reference, &m.SiteID, &m.Description,
		&m.Resolved, &m.ResolvedAt, &m.CreatedAt, &m.UpdatedAt, &m.CreatedByID,
	)
	if err != nil {
		return models.Maintenance{}, err
	}
	m.Item = &item
	return m, nil
}

func (r *MaintenanceRepository) CreateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error) {
	query := `
		INSERT INTO maintenances (item_id, site_id, description, created_at, created_by_id)
		VALUES ($1, $2, $3, NOW(), $4)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		m.ItemID, m.SiteID, m.Description, m.CreatedByID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return models.Maintenance{}, err
	}
	return m, nil
}

func (r *MaintenanceRepository) GetMaintenanceByID(ctx context.Context, id int) (models.Maintenance, error) {
	row := r.DB.QueryRowContext(ctx, maintenanceSelect+` WHERE m.id = $1`, id)
	m, err := scanMaintenance(row.Scan)
	if err == sql.ErrNoRows {
		return models.Maintenance{}, models.ErrNoRecord
	}
	return m, err
}

func (r *MaintenanceRepository) GetMaintenances(ctx context.Context, siteID int, params models.ListParams) ([]models.Maintenance, models.ListMeta, error) {
	params = params.Normalize()

	var (
		conditions []string
		args       []interface{}
	)
	if siteID != 0 {
		args = append(args, siteID)
		conditions = append(conditions, fmt.Sprintf("m.site_id = $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(i.name ILIKE $%d OR m.description ILIKE $%d)", len(args), len(args)))
	}
	if v := params.Filter("resolved"); v == "true" || v == "false" {
		args = append(args, v == "true")
		conditions = append(conditions, fmt.Sprintf("m.resolved = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM maintenances m JOIN items i ON m.item_id = i.id` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	column, ok := maintenanceSortColumns[params.SortBy]
	if !ok {
		column = "m.created_at"
		if params.SortBy == "" {
			params.SortDir = "desc"
		}
	}
	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		maintenanceSelect, where, column, strings.ToUpper(params.SortDir), len(args)+1, len(args)+2)
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var maintenances []models.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows.Scan)
		if err != nil {
			return nil, models.ListMeta{}, err
		}
		maintenances = append(maintenances, m)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return maintenances, models.NewListMeta(params.Page, params.PerPage, total), nil
}

func (r *MaintenanceRepository) UpdateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error) {
	query := `
		UPDATE maintenances
		SET item_id = $1, description = $2, resolved = $3, resolved_at = $4, updated_at = NOW()
		WHERE id = $5
	`
	result, err := r.DB.ExecContext(ctx, query, m.ItemID, m.Description, m.Resolved, m.ResolvedAt, m.ID)
	if err != nil {
		return models.Maintenance{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Maintenance{}, err
	}
	if rowsAffected == 0 {
		return models.Maintenance{}, models.ErrNoRecord
	}
	return r.GetMaintenanceByID(ctx, m.ID)
}

func (r *MaintenanceRepository) DeleteMaintenance(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNoRecord
	}
	return nil
}
