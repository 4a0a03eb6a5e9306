package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the result of resolving a session credential against the
// identity provider. It carries only what the gate needs; the full
// provider session never crosses into the domain.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	SessionID string    `json:"session_id"`
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid returns true if the identity's session is active and not
// expired.
func (i *Identity) IsValid() bool {
	if !i.Active {
		return false
	}
	if i.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Before(i.ExpiresAt)
}
