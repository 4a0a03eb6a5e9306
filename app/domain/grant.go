package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ClientGrant records that a user (employee or admin) is permitted to
// act as a specific client. The gate consults grants only to validate
// a requested client switch; it never creates or removes them.
type ClientGrant struct {
	UserID    uuid.UUID `json:"user_id"`
	ClientID  uuid.UUID `json:"client_id"`
	GrantedBy uuid.UUID `json:"granted_by"`
	GrantedAt time.Time `json:"granted_at"`
}

// NewClientGrant creates a grant with validation.
func NewClientGrant(userID, clientID, grantedBy uuid.UUID) (*ClientGrant, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}

	if clientID == uuid.Nil {
		return nil, fmt.Errorf("client id is required")
	}

	if grantedBy == uuid.Nil {
		return nil, fmt.Errorf("granting user id is required")
	}

	return &ClientGrant{
		UserID:    userID,
		ClientID:  clientID,
		GrantedBy: grantedBy,
		GrantedAt: time.Now(),
	}, nil
}
