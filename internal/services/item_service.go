package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"xetasuite/internal/models"
	"xetasuite/internal/repositories"
	"xetasuite/utils"
)

type ItemService struct {
	ItemRepo *repositories.ItemRepository
	Storage  *utils.Storage

	// ScanBaseURL is the console URL a scanned QR code redirects to,
	// e.g. https://console.example.com/items.
	ScanBaseURL string
}

func validateItem(item models.Item) error {
	v := models.NewValidationError()
	if strings.TrimSpace(item.Name) == "" {
		v.Add("name", "name is required")
	}
	if strings.TrimSpace(item.Reference) == "" {
		v.Add("reference", "reference is required")
	}
	if item.SiteID <= 0 {
		v.Add("site_id", "site is required")
	}
	if item.WarningThreshold < 0 || item.CriticalThreshold < 0 {
		v.Add("thresholds", "thresholds cannot be negative")
	}
	if item.CriticalThreshold > item.WarningThreshold {
		v.Add("critical_threshold", "critical threshold cannot exceed warning threshold")
	}
	if item.Price < 0 {
		v.Add("price", "price cannot be negative")
	}
	if v.Empty() {
		return nil
	}
	return v
}

func (s *ItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := validateItem(item); err != nil {
		return models.Item{}, err
	}
	item.QRCode = uuid.New().String()
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) GetItems(ctx context.Context, siteID int, params models.ListParams) ([]models.Item, models.ListMeta, error) {
	return s.ItemRepo.GetItems(ctx, siteID, params)
}

func (s *ItemService) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := validateItem(item); err != nil {
		return models.Item{}, err
	}
	return s.ItemRepo.UpdateItem(ctx, item)
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	return s.ItemRepo.DeleteItem(ctx, id)
}

// AdjustStock applies a stock entry and returns the refreshed item plus an
// alert when the adjustment dropped the item to critical or empty.
func (s *ItemService) AdjustStock(ctx context.Context, entry models.StockEntry) (models.Item, models.StockEntry, *models.StockAlert, error) {
	if entry.Delta == 0 {
		v := models.NewValidationError()
		v.Add("delta", "delta cannot be zero")
		return models.Item{}, models.StockEntry{}, nil, v
	}

	before, err := s.ItemRepo.GetItemByID(ctx, entry.ItemID)
	if err != nil {
		return models.Item{}, models.StockEntry{}, nil, err
	}
	statusBefore := before.StockStatus

	entry, err = s.ItemRepo.AdjustStock(ctx, entry)
	if err != nil {
		return models.Item{}, models.StockEntry{}, nil, err
	}

	item, err := s.ItemRepo.GetItemByID(ctx, entry.ItemID)
	if err != nil {
		return models.Item{}, models.StockEntry{}, nil, err
	}

	var alert *models.StockAlert
	dropped := item.StockStatus == models.StockStatusCritical || item.StockStatus == models.StockStatusEmpty
	if dropped && item.StockStatus != statusBefore {
		alert = &models.StockAlert{
			ItemID:    item.ID,
			ItemName:  item.Name,
			SiteID:    item.SiteID,
			Stock:     item.CurrentStock,
			Status:    item.StockStatus,
			Reference: item.Reference,
		}
	}
	return item, entry, alert, nil
}

func (s *ItemService) GetStockEntries(ctx context.Context, itemID int, params models.ListParams) ([]models.StockEntry, models.ListMeta, error) {
	if _, err := s.ItemRepo.GetItemByID(ctx, itemID); err != nil {
		return nil, models.ListMeta{}, err
	}
	return s.ItemRepo.GetStockEntries(ctx, itemID, params)
}

func (s *ItemService) GetItemByQRCode(ctx context.Context, code string) (models.Item, error) {
	return s.ItemRepo.GetItemByQRCode(ctx, code)
}

// ScanURL is the console detail URL a scanned label redirects to.
func (s *ItemService) ScanURL(item models.Item) string {
	return fmt.Sprintf("%s/%d", strings.TrimRight(s.ScanBaseURL, "/"), item.ID)
}

// QRCodePNG renders the scan label for an item.
func (s *ItemService) QRCodePNG(ctx context.Context, id int) ([]byte, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(item.QRCode, qrcode.Medium, 256)
}

// UploadPhoto stores an item photo and records its URL.
func (s *ItemService) UploadPhoto(ctx context.Context, id int, data []byte, contentType string) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	ext := "jpg"
	if contentType == "image/png" {
		ext = "png"
	}
	fileName := fmt.Sprintf("%d-%s.%s", item.ID, uuid.New().String(), ext)

	url, err := s.Storage.UploadFile(data, fileName, "items", contentType)
	if err != nil {
		return models.Item{}, err
	}
	if err := s.ItemRepo.UpdatePhotoURL(ctx, id, url); err != nil {
		return models.Item{}, err
	}

	item.PhotoURL = url
	return item, nil
}
