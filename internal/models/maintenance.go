package models

import (
	"time"
)

type Maintenance struct {
	ID          int        `json:"id"`
	ItemID      int        `json:"item_id"`
	Item        *Item      `json:"item,omitempty"`
	SiteID      int        `json:"site_id"`
	Description string     `json:"description"`
	Resolved    bool       `json:"resolved"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	CreatedByID int        `json:"created_by_id"`
}
