package model

import "time"

// Session is a server-side login session. Only the SHA-256 hash of the
// opaque cookie token is stored.
type Session struct {
	ID        int64
	UserID    int64
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}
