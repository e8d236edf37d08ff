package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"xetasuite/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

var itemSortColumns = map[string]string{
	"name":          "i.name",
	"reference":     "i.reference",
	"price":         "i.price",
	"current_stock": "i.current_stock",
	"created_at":    "i.created_at",
}

const itemSelect = `
	SELECT i.id, i.name, i.reference, i.description, i.site_id, s.id, s.name, s.headquarters,
	       i.category_id, i.supplier_id, i.unit, i.price, i.current_stock,
	       i.warning_threshold, i.critical_threshold, i.qr_code, i.photo_url,
	       i.created_at, i.updated_at, i.created_by_id
	FROM items i
	JOIN sites s ON i.site_id = s.id
`

func scanItem(scan func(dest ...interface{}) error) (models.Item, error) {
	var (
		i    models.Item
		site models.Site
	)
	err := scan(
		&i.ID, &i.Name, &i.Reference, &i.Description, &i.SiteID, &site.ID, &site.Name, &site.Headquarters,
		&i.CategoryID, &i.SupplierID, &i.Unit, &i.Price, &i.CurrentStock,
		&i.WarningThreshold, &i.CriticalThreshold, &i.QRCode, &i.PhotoURL,
		&i.CreatedAt, &i.UpdatedAt, &i.CreatedByID,
	)
	if err != nil {
		return models.Item{}, err
	}
	i.Site = &site
	i.DeriveStockStatus()
	return i, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
		INSERT INTO items
			(name, reference, description, site_id, category_id, supplier_id, unit, price,
			 current_stock, warning_threshold, critical_threshold, qr_code, photo_url, created_at, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), $14)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		item.Name, item.Reference, item.Description, item.SiteID, item.CategoryID, item.SupplierID,
		item.Unit, item.Price, item.CurrentStock, item.WarningThreshold, item.CriticalThreshold,
		item.QRCode, item.PhotoURL, item.CreatedByID,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "items_reference_key") {
			return models.Item{}, models.ErrDuplicateReference
		}
		return models.Item{}, err
	}
	item.DeriveStockStatus()
	return item, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	row := r.DB.QueryRowContext(ctx, itemSelect+` WHERE i.id = $1`, id)
	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrNoRecord
	}
	return item, err
}

func (r *ItemRepository) GetItemByQRCode(ctx context.Context, code string) (models.Item, error) {
	row := r.DB.QueryRowContext(ctx, itemSelect+` WHERE i.qr_code = $1`, code)
	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrNoRecord
	}
	return item, err
}

// GetItems lists items scoped to a site. A zero siteID means cross-site
// visibility (headquarters).
func (r *ItemRepository) GetItems(ctx context.Context, siteID int, params models.ListParams) ([]models.Item, models.ListMeta, error) {
	params = params.Normalize()

	var (
		conditions []string
		args       []interface{}
	)
	if siteID != 0 {
		args = append(args, siteID)
		conditions = append(conditions, fmt.Sprintf("i.site_id = $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(i.name ILIKE $%d OR i.reference ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM items i JOIN sites s ON i.site_id = s.id" + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	column, ok := itemSortColumns[params.SortBy]
	if !ok {
		column = "i.name"
	}
	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		itemSelect, where, column, strings.ToUpper(params.SortDir), len(args)+1, len(args)+2)
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, models.ListMeta{}, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return items, models.NewListMeta(params.Page, params.PerPage, total), nil
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
		UPDATE items
		SET name = $1, reference = $2, description = $3, site_id = $4, category_id = $5,
		    supplier_id = $6, unit = $7, price = $8, warning_threshold = $9,
		    critical_threshold = $10, updated_at = NOW()
		WHERE id = $11
	`
	result, err := r.DB.ExecContext(ctx, query,
		item.Name, item.Reference, item.Description, item.SiteID, item.CategoryID,
		item.SupplierID, item.Unit, item.Price, item.WarningThreshold, item.CriticalThreshold,
		item.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "items_reference_key") {
			return models.Item{}, models.ErrDuplicateReference
		}
		return models.Item{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		return models.Item{}, models.ErrNoRecord
	}
	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
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

func (r *ItemRepository) UpdatePhotoURL(ctx context.Context, id int, url string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE items SET photo_url = $1, updated_at = NOW() WHERE id = $2`, url, id)
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

// AdjustStock applies a stock entry and the resulting stock level in one
// transaction. The row lock on items keeps concurrent adjustments consistent.
func (r *ItemRepository) AdjustStock(ctx context.Context, entry models.StockEntry) (models.StockEntry, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.StockEntry{}, err
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT current_stock FROM items WHERE id = $1 FOR UPDATE`, entry.ItemID,
	).Scan(&current)
	if err == sql.ErrNoRows {
		return models.StockEntry{}, models.ErrNoRecord
	}
	if err != nil {
		return models.StockEntry{}, err
	}

	entry.ResultingStock = current + entry.Delta

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET current_stock = $1, updated_at = NOW() WHERE id = $2`,
		entry.ResultingStock, entry.ItemID,
	)
	if err != nil {
		return models.StockEntry{}, err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO stock_entries (item_id, delta, reason, resulting_stock, created_at, created_by_id)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING id, created_at
	`, entry.ItemID, entry.Delta, entry.Reason, entry.ResultingStock, entry.CreatedByID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return models.StockEntry{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.StockEntry{}, err
	}
	return entry, nil
}

func (r *ItemRepository) GetStockEntries(ctx context.Context, itemID int, params models.ListParams) ([]models.StockEntry, models.ListMeta, error) {
	params = params.Normalize()

	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_entries WHERE item_id = $1`, itemID,
	).Scan(&total); err != nil {
		return nil, models.ListMeta{}, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, item_id, delta, reason, resulting_stock, created_at, created_by_id
		FROM stock_entries WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, itemID, params.PerPage, params.Offset())
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	defer rows.Close()

	var entries []models.StockEntry
	for rows.Next() {
		var e models.StockEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.Delta, &e.Reason, &e.ResultingStock, &e.CreatedAt, &e.CreatedByID); err != nil {
			return nil, models.ListMeta{}, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, models.ListMeta{}, err
	}

	return entries, models.NewListMeta(params.Page, params.PerPage, total), nil
}
