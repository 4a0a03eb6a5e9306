package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ClientSwitchEvent is an append-only audit record written whenever a
// grant-validated client switch occurs. The gate only ever appends
// these; nothing in the request path reads them back.
type ClientSwitchEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ClientID  uuid.UUID `json:"client_id"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClientSwitchEvent creates a switch event with validation.
func NewClientSwitchEvent(userID, clientID uuid.UUID, ipAddress, userAgent string) (*ClientSwitchEvent, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}

	if clientID == uuid.Nil {
		return nil, fmt.Errorf("client id is required")
	}

	return &ClientSwitchEvent{
		ID:        uuid.New(),
		UserID:    userID,
		ClientID:  clientID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}, nil
}
