package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session pairs an auth token with a cached snapshot of the user it was
// issued to. The snapshot is best-effort: it is overwritten on every
// successful guard hydration and may lag behind the users collection
// until then.
type Session struct {
	Token    string    `json:"token"`
	User     User      `json:"user"`
	IssuedAt time.Time `json:"issued_at"`
}
