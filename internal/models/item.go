package models

import (
	"time"
)

// Stock status labels derived from an item's current stock against its
// configured thresholds.
const (
	StockStatusOK       = "ok"
	StockStatusWarning  = "warning"
	StockStatusCritical = "critical"
	StockStatusEmpty    = "empty"
)

type Item struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Reference         string     `json:"reference"`
	Description       string     `json:"description"`
	SiteID            int        `json:"site_id"`
	Site              *Site      `json:"site,omitempty"`
	CategoryID        int        `json:"category_id"`
	Category          *ItemCategory `json:"category,omitempty"`
	SupplierID        int        `json:"supplier_id"`
	Supplier          *Supplier  `json:"supplier,omitempty"`
	Unit              string     `json:"unit"`
	Price             float64    `json:"price"`
	CurrentStock      int        `json:"current_stock"`
	WarningThreshold  int        `json:"warning_threshold"`
	CriticalThreshold int        `json:"critical_threshold"`
	QRCode            string     `json:"qr_code"`
	PhotoURL          string     `json:"photo_url,omitempty"`
	StockStatus       string     `json:"stock_status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
	CreatedByID       int        `json:"created_by_id"`
}

// DeriveStockStatus recomputes the stock status label. Empty wins over
// critical, critical over warning.
func (i *Item) DeriveStockStatus() string {
	switch {
	case i.CurrentStock <= 0:
		i.StockStatus = StockStatusEmpty
	case i.CurrentStock <= i.CriticalThreshold:
		i.StockStatus = StockStatusCritical
	case i.CurrentStock <= i.WarningThreshold:
		i.StockStatus = StockStatusWarning
	default:
		i.StockStatus = StockStatusOK
	}
	return i.StockStatus
}

type ItemCategory struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	CreatedByID int        `json:"created_by_id"`
}

// StockEntry is one stock adjustment; creating it moves Item.CurrentStock by
// Delta and records the resulting level.
type StockEntry struct {
	ID             int       `json:"id"`
	ItemID         int       `json:"item_id"`
	Delta          int       `json:"delta"`
	Reason         string    `json:"reason"`
	ResultingStock int       `json:"resulting_stock"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedByID    int       `json:"created_by_id"`
}

// StockAlert is pushed to websocket subscribers when an adjustment drops an
// item to critical or empty.
type StockAlert struct {
	ItemID    int    `json:"item_id"`
	ItemName  string `json:"item_name"`
	SiteID    int    `json:"site_id"`
	Stock     int    `json:"stock"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}
