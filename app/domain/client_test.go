package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		orgName   string
		expectErr bool
	}{
		{
			name:    "valid client",
			slug:    "acme-corp",
			orgName: "Acme Corp",
		},
		{
			name:      "empty slug",
			slug:      "",
			orgName:   "Acme Corp",
			expectErr: true,
		},
		{
			name:      "uppercase slug rejected",
			slug:      "Acme",
			orgName:   "Acme Corp",
			expectErr: true,
		},
		{
			name:      "slug with spaces rejected",
			slug:      "acme corp",
			orgName:   "Acme Corp",
			expectErr: true,
		},
		{
			name:      "empty name",
			slug:      "acme-corp",
			orgName:   "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.slug, tt.orgName)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.slug, client.Slug)
			assert.Equal(t, ClientStatusActive, client.Status)
			assert.True(t, client.IsActive())
		})
	}
}

func TestClientLifecycle(t *testing.T) {
	client, err := NewClient("acme-corp", "Acme Corp")
	require.NoError(t, err)

	client.Suspend()
	assert.Equal(t, ClientStatusSuspended, client.Status)
	assert.False(t, client.IsActive())

	client.Activate()
	assert.Equal(t, ClientStatusActive, client.Status)
	assert.True(t, client.IsActive())

	client.SoftDelete()
	assert.True(t, client.IsDeleted())
	assert.False(t, client.IsActive())
	assert.NotNil(t, client.DeletedAt)
}
