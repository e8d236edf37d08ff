package console

import (
	"context"
	"fmt"

	"xetasuite/internal/models"
)

type ItemRepository struct {
	Client *Client
}

func (r *ItemRepository) List(ctx context.Context, params models.ListParams) (Page[models.Item], error) {
	var page Page[models.Item]
	err := r.Client.Get(ctx, "/items", listQuery(params), &page)
	return page, err
}

func (r *ItemRepository) Get(ctx context.Context, id int) (models.Item, error) {
	var body struct {
		Data models.Item `json:"data"`
	}
	err := r.Client.Get(ctx, fmt.Sprintf("/items/%d", id), nil, &body)
	return body.Data, err
}

func (r *ItemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	var body struct {
		Data models.Item `json:"data"`
	}
	err := r.Client.Post(ctx, "/items", item, &body)
	return body.Data, err
}

func (r *ItemRepository) Update(ctx context.Context, item models.Item) (models.Item, error) {
	var body struct {
		Data models.Item `json:"data"`
	}
	err := r.Client.Put(ctx, fmt.Sprintf("/items/%d", item.ID), item, &body)
	return body.Data, err
}

func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	return r.Client.Delete(ctx, fmt.Sprintf("/items/%d", id))
}

// AdjustStock posts a delta and returns the refreshed item plus the recorded
// entry.
func (r *ItemRepository) AdjustStock(ctx context.Context, itemID, delta int, reason string) (models.Item, models.StockEntry, error) {
	in := models.StockEntry{Delta: delta, Reason: reason}
	var body struct {
		Data  models.Item       `json:"data"`
		Entry models.StockEntry `json:"entry"`
	}
	err := r.Client.Post(ctx, fmt.Sprintf("/items/%d/stock", itemID), in, &body)
	return body.Data, body.Entry, err
}

func (r *ItemRepository) StockEntries(ctx context.Context, itemID int, params models.ListParams) (Page[models.StockEntry], error) {
	var page Page[models.StockEntry]
	err := r.Client.Get(ctx, fmt.Sprintf("/items/%d/stock-entries", itemID), listQuery(params), &page)
	return page, err
}

// QRCodePNG downloads the printable scan label.
func (r *ItemRepository) QRCodePNG(ctx context.Context, itemID int) ([]byte, error) {
	return r.Client.GetRaw(ctx, fmt.Sprintf("/items/%d/qrcode", itemID))
}

func (r *ItemRepository) UploadPhoto(ctx context.Context, itemID int, fileName, contentType string, data []byte) (models.Item, error) {
	var body struct {
		Data models.Item `json:"data"`
	}
	err := r.Client.PostFile(ctx, fmt.Sprintf("/items/%d/photo", itemID), "photo", fileName, contentType, data, &body)
	return body.Data, err
}

type ItemManager struct {
	Repo *ItemRepository
}

func (m *ItemManager) List(ctx context.Context, params models.ListParams) Result[Page[models.Item]] {
	page, err := m.Repo.List(ctx, params)
	if err != nil {
		return fail[Page[models.Item]](err)
	}
	return ok(page)
}

func (m *ItemManager) Get(ctx context.Context, id int) Result[models.Item] {
	item, err := m.Repo.Get(ctx, id)
	if err != nil {
		return fail[models.Item](err)
	}
	return ok(item)
}

func (m *ItemManager) Create(ctx context.Context, item models.Item) Result[models.Item] {
	created, err := m.Repo.Create(ctx, item)
	if err != nil {
		return fail[models.Item](err)
	}
	return ok(created)
}

func (m *ItemManager) Update(ctx context.Context, item models.Item) Result[models.Item] {
	updated, err := m.Repo.Update(ctx, item)
	if err != nil {
		return fail[models.Item](err)
	}
	return ok(updated)
}

func (m *ItemManager) Delete(ctx context.Context, id int) Result[struct{}] {
	if err := m.Repo.Delete(ctx, id); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}

func (m *ItemManager) AdjustStock(ctx context.Context, itemID, delta int, reason string) Result[models.Item] {
	item, _, err := m.Repo.AdjustStock(ctx, itemID, delta, reason)
	if err != nil {
		return fail[models.Item](err)
	}
	return ok(item)
}

func (m *ItemManager) StockEntries(ctx context.Context, itemID int, params models.ListParams) Result[Page[models.StockEntry]] {
	page, err := m.Repo.StockEntries(ctx, itemID, params)
	if err != nil {
		return fail[Page[models.StockEntry]](err)
	}
	return ok(page)
}

// StockStatusLabel is the human label the console shows for a stock status.
func StockStatusLabel(status string) string {
	switch status {
	case models.StockStatusEmpty:
		return "Out of stock"
	case models.StockStatusCritical:
		return "Critical"
	case models.StockStatusWarning:
		return "Low"
	case models.StockStatusOK:
		return "In stock"
	}
	return "Unknown"
}

// FormatPrice renders a price for display.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
