package models

import (
	"time"
)

// SessionCookie is the name of the httpOnly cookie carrying the session token.
const SessionCookie = "xetasuite_session"

type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
