package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InquiryStatus represents the handling status of an inquiry
type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusClosed     InquiryStatus = "closed"
)

// Inquiry represents a contact-form submission from a client's
// marketing site. Submissions arrive unauthenticated; reading and
// triage happen behind the gate, scoped to the owning client.
type Inquiry struct {
	ID        uuid.UUID     `json:"id"`
	ClientID  uuid.UUID     `json:"client_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewInquiry creates an inquiry with validation
func NewInquiry(clientID uuid.UUID, name, email, phone, message string) (*Inquiry, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("client id is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	now := time.Now()

	return &Inquiry{
		ID:        uuid.New(),
		ClientID:  clientID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		Status:    InquiryStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeStatus changes the inquiry status with validation
func (i *Inquiry) ChangeStatus(status InquiryStatus) error {
	switch status {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusClosed:
		i.Status = status
		i.UpdatedAt = time.Now()
		return nil
	}
	return fmt.Errorf("invalid inquiry status: %s", status)
}

// SubmitInquiryRequest represents a public contact-form submission
type SubmitInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=30"`
	Message string `json:"message" validate:"required,min=5,max=5000"`
}
