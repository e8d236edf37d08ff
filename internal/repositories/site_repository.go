package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"xetasuite/internal/models"
)

type SiteRepository struct {
	DB *sql.DB
}

var siteSortColumns = map[string]string{
	"name":       "name",
	"city":       "city",
	"created_at": "created_at",
}

func (r *SiteRepository) CreateSite(ctx context.Context, site models.Site) (models.Site, error) {
	query := `
		INSERT INTO sites (name, address, city, zip_code, headquarters, created_at, created_by_id)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		site.Name, site.Address, site.City, site.ZipCode, site.Headquarters, site.CreatedByID,
	).Scan(&site.ID, &site.CreatedAt)
	if err != nil {
		return models.Site{}, err
	}
	return site, nil
}

func (r *SiteRepository) GetSiteByID(ctx context.Context, id int) (models.Site, error) {
	var s models.Site
	query := `
		SELECT id, name, address, city, zip_code, headquarters, created_at, updated_at, created_by_id
		FROM sites WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.City, &s.ZipCode, &s.Headquarters,
		&s.CreatedAt, &s.UpdatedAt, &s.CreatedByID,
	)
	if err == sql.ErrNoRows {
		return models.Site{}, models.ErrNoRecord
	}
	return s, err
}

func (r *SiteRepository) GetSites(ctx context.Context, params models.ListParams) ([]models.Site, models.ListMeta, error) {
	params = params.Normalize()

	var (
		conditions []string
		args       []interface{}
	)
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR city ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM sites"+where, args...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	column, ok := siteSortColumns[params.SortBy]
	if !ok {
		column = "name"
	}
	query := fmt.Sprintf(`
		SELECT id, name, address, city, zip_code, headquarters, created_at, updated_at, created_by_id
		FROM sites%s ORDER BY %s %s LIMIT $%d OFFSET $%d
	`, where, column, strings.ToUpper(params.SortDir), len(args)+1, len(args)+2)
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var sites []models.Site
	for rows.Next() {
		var s models.Site
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Address, &s.City, &s.ZipCode, &s.Headquarters,
			&s.CreatedAt, &s.UpdatedAt, &s.CreatedByID,
		); err != nil {
			return nil, models.ListMeta{}, err
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return sites, models.NewListMeta(params.Page, params.PerPage, total), nil
}

func (r *SiteRepository) UpdateSite(ctx context.Context, site models.Site) (models.Site, error) {
	query := `
		UPDATE sites
		SET name = $1, address = $2, city = $3, zip_code = $4, headquarters = $5, updated_at = NOW()
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		site.Name, site.Address, site.City, site.ZipCode, site.Headquarters, site.ID,
	)
	if err != nil {
		return models.Site{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Site{}, err
	}
	if rowsAffected == 0 {
		return models.Site{}, models.ErrNoRecord
	}
	return r.GetSiteByID(ctx, site.ID)
}

func (r *SiteRepository) DeleteSite(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sites WHERE id = $1`, id)
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

// GetHeadquarters returns the distinguished headquarters site if one exists.
func (r *SiteRepository) GetHeadquarters(ctx context.Context) (models.Site, error) {
	var s models.Site
	query := `
		SELECT id, name, address, city, zip_code, headquarters, created_at, updated_at, created_by_id
		FROM sites WHERE headquarters = TRUE ORDER BY id LIMIT 1
	`
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&s.ID, &s.Name, &s.Address, &s.City, &s.ZipCode, &s.Headquarters,
		&s.CreatedAt, &s.UpdatedAt, &s.CreatedByID,
	)
	if err == sql.ErrNoRows {
		return models.Site{}, models.ErrNoRecord
	}
	return s, err
}
