package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Profile maps an identity-provider account to a back-office role and,
// for client accounts, a home client. The authorization gate only ever
// reads profiles; they are managed by the user-administration flows.
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	ClientID  *uuid.UUID `json:"client_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewProfile creates a profile with validation. The id must match the
// identity-provider account id so a session resolves to exactly one
// profile.
func NewProfile(id uuid.UUID, email string, role Role, clientID *uuid.UUID) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("profile id is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if role == RoleClient && clientID == nil {
		return nil, fmt.Errorf("client role requires a home client")
	}

	now := time.Now()

	return &Profile{
		ID:        id,
		Email:     email,
		Role:      role,
		ClientID:  clientID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeRole changes the profile's role with validation.
func (p *Profile) ChangeRole(role Role) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	p.Role = role
	p.UpdatedAt = time.Now()
	return nil
}

// IsClient returns true if the profile belongs to a client account.
func (p *Profile) IsClient() bool {
	return p.Role == RoleClient
}
