package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice-api/app/domain"
	mock_port "backoffice-api/app/mocks"
)

func newClientUsecase(t *testing.T) (*mock_port.MockClientRepository, *ClientUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	clientRepo := mock_port.NewMockClientRepository(ctrl)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	return clientRepo, NewClientUseCase(clientRepo, logger)
}

func TestCreateClient(t *testing.T) {
	clientRepo, uc := newClientUsecase(t)
	ctx := context.Background()

	clientRepo.EXPECT().
		GetBySlug(ctx, "acme-corp").
		Return(nil, domain.ErrClientNotFound)
	clientRepo.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil)

	client, err := uc.CreateClient(ctx, &domain.CreateClientRequest{
		Slug: "acme-corp",
		Name: "Acme Corp",
	})

	require.NoError(t, err)
	assert.Equal(t, "acme-corp", client.Slug)
	assert.Equal(t, domain.ClientStatusActive, client.Status)
}

func TestCreateClient_SlugTaken(t *testing.T) {
	clientRepo, uc := newClientUsecase(t)
	ctx := context.Background()

	existing := &domain.Client{ID: uuid.New(), Slug: "acme-corp", Name: "Acme Corp"}
	clientRepo.EXPECT().
		GetBySlug(ctx, "acme-corp").
		Return(existing, nil)

	_, err := uc.CreateClient(ctx, &domain.CreateClientRequest{
		Slug: "acme-corp",
		Name: "Another Acme",
	})

	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestSuspendAndActivateClient(t *testing.T) {
	clientRepo, uc := newClientUsecase(t)
	ctx := context.Background()
	clientID := uuid.New()

	client := &domain.Client{
		ID:     clientID,
		Slug:   "acme-corp",
		Name:   "Acme Corp",
		Status: domain.ClientStatusActive,
	}

	clientRepo.EXPECT().GetByID(ctx, clientID).Return(client, nil)
	clientRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *domain.Client) error {
			assert.Equal(t, domain.ClientStatusSuspended, updated.Status)
			return nil
		})

	require.NoError(t, uc.SuspendClient(ctx, clientID))

	clientRepo.EXPECT().GetByID(ctx, clientID).Return(client, nil)
	clientRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *domain.Client) error {
			assert.Equal(t, domain.ClientStatusActive, updated.Status)
			return nil
		})

	require.NoError(t, uc.ActivateClient(ctx, clientID))
}

func TestListClients_LimitNormalization(t *testing.T) {
	clientRepo, uc := newClientUsecase(t)
	ctx := context.Background()

	clientRepo.EXPECT().
		List(ctx, 20, 0).
		Return([]*domain.Client{}, nil)
	_, err := uc.ListClients(ctx, 0, 0)
	require.NoError(t, err)

	clientRepo.EXPECT().
		List(ctx, 100, 40).
		Return([]*domain.Client{}, nil)
	_, err = uc.ListClients(ctx, 500, 40)
	require.NoError(t, err)
}
