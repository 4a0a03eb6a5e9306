package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClientStatus represents the status of a client
type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusSuspended ClientStatus = "suspended"
	ClientStatusDeleted   ClientStatus = "deleted"
)

// Client represents an organization whose marketing site and
// back-office data we manage. Every business row (blog, inquiry, task)
// belongs to exactly one client.
type Client struct {
	ID        uuid.UUID    `json:"id"`
	Slug      string       `json:"slug"`
	Name      string       `json:"name"`
	Website   string       `json:"website,omitempty"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty"`
}

// slugRegex validates client slugs (lowercase, alphanumeric, hyphens only)
var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// NewClient creates a new client with validation
func NewClient(slug, name string) (*Client, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	if len(slug) > 100 {
		return nil, fmt.Errorf("slug must be 100 characters or less")
	}

	if !slugRegex.MatchString(slug) {
		return nil, fmt.Errorf("slug must contain only lowercase letters, numbers, and hyphens")
	}

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty or whitespace only")
	}

	now := time.Now()

	return &Client{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		Status:    ClientStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Suspend suspends the client
func (c *Client) Suspend() {
	c.Status = ClientStatusSuspended
	c.UpdatedAt = time.Now()
}

// Activate activates the client
func (c *Client) Activate() {
	c.Status = ClientStatusActive
	c.UpdatedAt = time.Now()
}

// SoftDelete marks the client as deleted
func (c *Client) SoftDelete() {
	now := time.Now()
	c.DeletedAt = &now
	c.Status = ClientStatusDeleted
	c.UpdatedAt = now
}

// IsActive returns true if the client is active
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

// IsDeleted returns true if the client is soft deleted
func (c *Client) IsDeleted() bool {
	return c.DeletedAt != nil || c.Status == ClientStatusDeleted
}

// UpdateName updates the client name
func (c *Client) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty or whitespace only")
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// CreateClientRequest represents client creation request
type CreateClientRequest struct {
	Slug string `json:"slug" validate:"required,min=3,max=100"`
	Name string `json:"name" validate:"required,min=3,max=100"`
}
