package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "punctuation stripped",
			title: "What's New in 2026?",
			want:  "what-s-new-in-2026",
		},
		{
			name:  "leading and trailing noise trimmed",
			title: "  --Launch!--  ",
			want:  "launch",
		},
		{
			name:  "repeated separators collapse",
			title: "One   --  Two",
			want:  "one-two",
		},
		{
			name:  "symbols only",
			title: "!!!",
			want:  "",
		},
		{
			name:  "long title truncated",
			title: strings.Repeat("word ", 40),
			want:  strings.Trim(strings.Repeat("word-", 24), "-"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestNewBlogPost(t *testing.T) {
	clientID := uuid.New()
	authorID := uuid.New()

	post, err := NewBlogPost(clientID, authorID, "Launch Announcement", "We are live.")
	require.NoError(t, err)
	assert.Equal(t, "launch-announcement", post.Slug)
	assert.Equal(t, BlogStatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)

	_, err = NewBlogPost(uuid.Nil, authorID, "Title", "body")
	assert.Error(t, err)

	_, err = NewBlogPost(clientID, authorID, "   ", "body")
	assert.Error(t, err)

	_, err = NewBlogPost(clientID, authorID, "!!!", "body")
	assert.Error(t, err)
}

func TestBlogPostPublishCycle(t *testing.T) {
	post, err := NewBlogPost(uuid.New(), uuid.New(), "Launch", "body")
	require.NoError(t, err)

	post.Publish()
	assert.Equal(t, BlogStatusPublished, post.Status)
	require.NotNil(t, post.PublishedAt)

	post.Unpublish()
	assert.Equal(t, BlogStatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
}
