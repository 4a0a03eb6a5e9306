package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlogStatus represents the publication status of a blog post
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogPost represents a client-owned marketing blog post
type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	ClientID    uuid.UUID  `json:"client_id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	Status      BlogStatus `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

var (
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9]+`)
	repeatedHyphen = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL slug from a post title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = repeatedHyphen.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 120 {
		slug = strings.Trim(slug[:120], "-")
	}
	return slug
}

// NewBlogPost creates a draft blog post with validation. The slug is
// derived from the title.
func NewBlogPost(clientID, authorID uuid.UUID, title, body string) (*BlogPost, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("client id is required")
	}

	if authorID == uuid.Nil {
		return nil, fmt.Errorf("author id is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	slug := Slugify(title)
	if slug == "" {
		return nil, fmt.Errorf("title must contain at least one alphanumeric character")
	}

	now := time.Now()

	return &BlogPost{
		ID:        uuid.New(),
		ClientID:  clientID,
		AuthorID:  authorID,
		Title:     title,
		Slug:      slug,
		Body:      body,
		Status:    BlogStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Publish marks the post as published
func (b *BlogPost) Publish() {
	now := time.Now()
	b.Status = BlogStatusPublished
	b.PublishedAt = &now
	b.UpdatedAt = now
}

// Unpublish returns the post to draft
func (b *BlogPost) Unpublish() {
	b.Status = BlogStatusDraft
	b.PublishedAt = nil
	b.UpdatedAt = time.Now()
}

// UpdateContent updates title, body and slug
func (b *BlogPost) UpdateContent(title, excerpt, body string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}

	slug := Slugify(title)
	if slug == "" {
		return fmt.Errorf("title must contain at least one alphanumeric character")
	}

	b.Title = title
	b.Slug = slug
	b.Excerpt = excerpt
	b.Body = body
	b.UpdatedAt = time.Now()
	return nil
}

// CreateBlogPostRequest represents blog post creation request
type CreateBlogPostRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=200"`
	Excerpt string `json:"excerpt" validate:"max=500"`
	Body    string `json:"body" validate:"required"`
}
