package models

import (
	"time"
)

type Site struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	ZipCode      string     `json:"zip_code"`
	Headquarters bool       `json:"headquarters"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	CreatedByID  int        `json:"created_by_id"`
}
