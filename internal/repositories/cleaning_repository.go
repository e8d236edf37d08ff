package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"xetasuite/internal/models"
)

type CleaningRepository struct {
	DB *sql.DB
}

var cleaningSortColumns = map[string]string{
	"done_at":    "c.done_at",
	"created_at": "c.created_at",
}

const cleaningSelect = `
	SELECT c.id, c.item_id, i.id, i.name, i.reference, c.site_id, c.done_by_id,
	       u.id, u.first_name, u.last_name,
	       c.done_at, c.notes, c.created_at, c.updated_at, c.created_by_id
	FROM cleanings c
	JOIN items i ON c.item_id = i.id
	LEFT JOIN users u ON c.done_by_id = u.id
`

func scanCleaning(scan func(dest ...interface{}) error) (models.Cleaning, error) {
	var (
		c      models.Cleaning
		item   models.Item
		userID sql.NullInt64
		first  sql.NullString
		last   sql.NullString
	)
	err := scan(
		&c.ID, &c.ItemID, &item.ID, &item.Name, &item.Reference, &c.SiteID, &c.DoneByID,
		&userID, &first, &last,
		&c.DoneAt, &c.Notes, &c.CreatedAt, &c.UpdatedAt, &c.CreatedByID,
	)
	if err != nil {
		return models.Cleaning{}, err
	}
	c.Item = &item
	if userID.Valid {
		c.DoneBy = &models.User{ID: int(userID.Int64), FirstName: first.String, LastName: last.String}
	}
	return c, nil
}

func (r *CleaningRepository) CreateCleaning(ctx context.Context, c models.Cleaning) (models.Cleaning, error) {
	query := `
		INSERT INTO cleanings (item_id, site_id, done_by_id, done_at, notes, created_at, created_by_id)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		c.ItemID, c.SiteID, c.DoneByID, c.DoneAt, c.Notes, c.CreatedByID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return models.Cleaning{}, err
	}
	return c, nil
}

func (r *CleaningRepository) GetCleaningByID(ctx context.Context, id int) (models.Cleaning, error) {
	row := r.DB.QueryRowContext(ctx, cleaningSelect+` WHERE c.id = $1`, id)
	c, err := scanCleaning(row.Scan)
	if err == sql.ErrNoRows {
		return models.Cleaning{}, models.ErrNoRecord
	}
	return c, err
}

func (r *CleaningRepository) GetCleanings(ctx context.Context, siteID int, params models.ListParams) ([]models.Cleaning, models.ListMeta, error) {
	params = params.Normalize()

	var (
		conditions []string
		args       []interface{}
	)
	if siteID != 0 {
		args = append(args, siteID)
		conditions = append(conditions, fmt.Sprintf("c.site_id = $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(i.name ILIKE $%d OR c.notes ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM cleanings c JOIN items i ON c.item_id = i.id LEFT JOIN users u ON c.done_by_id = u.id` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	column, ok := cleaningSortColumns[params.SortBy]
	if !ok {
		column = "c.done_at"
		if params.SortBy == "" {
			params.SortDir = "desc"
		}
	}
	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		cleaningSelect, where, column, strings.ToUpper(params.SortDir), len(args)+1, len(args)+2)
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var cleanings []models.Cleaning
	for rows.Next() {
		c, err := scanCleaning(rows.Scan)
		if err != nil {
			return nil, models.ListMeta{}, err
		}
		cleanings = append(cleanings, c)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return cleanings, models.NewListMeta(params.Page, params.PerPage, total), nil
}

func (r *CleaningRepository) UpdateCleaning(ctx context.Context, c models.Cleaning) (models.Cleaning, error) {
	query := `
		UPDATE cleanings
		SET item_id = $1, done_by_id = $2, done_at = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
	`
	result, err := r.DB.ExecContext(ctx, query, c.ItemID, c.DoneByID, c.DoneAt, c.Notes, c.ID)
	if err != nil {
		return models.Cleaning{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Cleaning{}, err
	}
	if rowsAffected == 0 {
		return models.Cleaning{}, models.ErrNoRecord
	}
	return r.GetCleaningByID(ctx, c.ID)
}

func (r *CleaningRepository) DeleteCleaning(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM cleanings WHERE id = $1`, id)
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
