package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"xetasuite/internal/models"
)

type ItemCategoryRepository struct {
	DB *sql.DB
}

var itemCategorySortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

func (r *ItemCategoryRepository) CreateItemCategory(ctx context.Context, c models.ItemCategory) (models.ItemCategory, error) {
	query := `
		INSERT INTO item_categories (name, description, created_at, created_by_id)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, c.Name, c.Description, c.CreatedByID).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return models.ItemCategory{}, err
	}
	return c, nil
}

func (r *ItemCategoryRepository) GetItemCategoryByID(ctx context.Context, id int) (models.ItemCategory, error) {
	var c models.ItemCategory
	query := `
		SELECT id, name, description, created_at, updated_at, created_by_id
		FROM item_categories WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.CreatedByID,
	)
	if err == sql.ErrNoRows {
		return models.ItemCategory{}, models.ErrNoRecord
	}
	return c, err
}

func (r *ItemCategoryRepository) GetItemCategories(ctx context.Context, params models.ListParams) ([]models.ItemCategory, models.ListMeta, error) {
	params = params.Normalize()

	var (
		conditions []string
		args       []interface{}
	)
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM item_categories"+where, args...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	column, ok := itemCategorySortColumns[params.SortBy]
	if !ok {
		column = "name"
	}
	query := fmt.Sprintf(`
		SELECT id, name, description, created_at, updated_at, created_by_id
		FROM item_categories%s ORDER BY %s %s LIMIT $%d OFFSET $%d
	`, where, column, strings.ToUpper(params.SortDir), len(args)+1, len(args)+2)
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var categories []models.ItemCategory
	for rows.Next() {
		var c models.ItemCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.CreatedByID); err != nil {
			return nil, models.ListMeta{}, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return categories, models.NewListMeta(params.Page, params.PerPage, total), nil
}

func (r *ItemCategoryRepository) UpdateItemCategory(ctx context.Context, c models.ItemCategory) (models.ItemCategory, error) {
	query := `
		UPDATE item_categories SET name = $1, description = $2, updated_at = NOW() WHERE id = $3
	`
	result, err := r.DB.ExecContext(ctx, query, c.Name, c.Description, c.ID)
	if err != nil {
		return models.ItemCategory{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.ItemCategory{}, err
	}
	if rowsAffected == 0 {
		return models.ItemCategory{}, models.ErrNoRecord
	}
	return r.GetItemCategoryByID(ctx, c.ID)
}

func (r *ItemCategoryRepository) DeleteItemCategory(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM item_categories WHERE id = $1`, id)
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
