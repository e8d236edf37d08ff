package models

import (
	"time"
)

type Cleaning struct {
	ID          int        `json:"id"`
	ItemID      int        `json:"item_id"`
	Item        *Item      `json:"item,omitempty"`
	SiteID      int        `json:"site_id"`
	DoneByID    int        `json:"done_by_id"`
	DoneBy      *User      `json:"done_by,omitempty"`
	DoneAt      time.Time  `json:"done_at"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	CreatedByID int        `json:"created_by_id"`
}
