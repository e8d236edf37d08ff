package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"xetasuite/internal/models"
)

type SupplierRepository struct {
	DB *sql.DB
}

var supplierSortColumns = map[string]string{
	"name":         "name",
	"contact_name": "contact_name",
	"created_at":   "created_at",
}

func (r *SupplierRepository) CreateSupplier(ctx context.Context, s models.Supplier) (models.Supplier, error) {
	query := `
		INSERT INTO suppliers (name, contact_name, email, phone, notes, created_at, created_by_id)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.Name, s.ContactName, s.Email, s.Phone, s.Notes, s.CreatedByID,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return models.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierRepository) GetSupplierByID(ctx context.Context, id int) (models.Supplier, error) {
	var s models.Supplier
	query := `
		SELECT id, name, contact_name, email, phone, notes, created_at, updated_at, created_by_id
		FROM suppliers WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt, &s.CreatedByID,
	)
	if err == sql.ErrNoRows {
		return models.Supplier{}, models.ErrNoRecord
	}
	return s, err
}

func (r *SupplierRepository) GetSuppliers(ctx context.Context, params models.ListParams) ([]models.Supplier, models.ListMeta, error) {
	params = params.Normalize()

	var (
		conditions []string
		args       []interface{}
	)
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR contact_name ILIKE $%d OR email ILIKE $%d)", len(args), len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM suppliers"+where, args...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	column, ok := supplierSortColumns[params.SortBy]
	if !ok {
		column = "name"
	}
	query := fmt.Sprintf(`
		SELECT id, name, contact_name, email, phone, notes, created_at, updated_at, created_by_id
		FROM suppliers%s ORDER BY %s %s LIMIT $%d OFFSET $%d
	`, where, column, strings.ToUpper(params.SortDir), len(args)+1, len(args)+2)
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Notes,
			&s.CreatedAt, &s.UpdatedAt, &s.CreatedByID,
		); err != nil {
			return nil, models.ListMeta{}, err
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return suppliers, models.NewListMeta(params.Page, params.PerPage, total), nil
}

func (r *SupplierRepository) UpdateSupplier(ctx context.Context, s models.Supplier) (models.Supplier, error) {
	query := `
		UPDATE suppliers
		SET name = $1, contact_name = $2, email = $3, phone = $4, notes = $5, updated_at = NOW()
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.Name, s.ContactName, s.Email, s.Phone, s.Notes, s.ID,
	)
	if err != nil {
		return models.Supplier{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Supplier{}, err
	}
	if rowsAffected == 0 {
		return models.Supplier{}, models.ErrNoRecord
	}
	return r.GetSupplierByID(ctx, s.ID)
}

func (r *SupplierRepository) DeleteSupplier(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
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
