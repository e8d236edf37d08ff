package models

import (
	"time"
)

type Supplier struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	ContactName string     `json:"contact_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	CreatedByID int        `json:"created_by_id"`
}
