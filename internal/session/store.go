// Package session holds server-side session records. The browser only
// carries an opaque signed token; everything else lives in a Store.
package session

import (
	"context"
	"errors"
	"time"
)

// CookieName is the browser cookie carrying the signed session token
const CookieName = "session"

// ErrSessionNotFound is returned for unknown or expired tokens
var ErrSessionNotFound = errors.New("session not found")

// Session binds a token to an authenticated username
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions between requests
type Store interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
