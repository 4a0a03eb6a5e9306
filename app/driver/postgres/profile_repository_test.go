package postgres

import (
	"context"
	"testing"
	"time"

	"backoffice-api/app/domain"
	"backoffice-api/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test profile repository with mocked database
func createTestProfileRepository(t *testing.T) (*ProfileRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewProfileRepository(mockDB, testLogger).(*ProfileRepository)

	return repo, mockDB
}

// Helper function to create a test profile
func createTestProfile(t *testing.T, role domain.Role) *domain.Profile {
	t.Helper()

	var clientID *uuid.UUID
	if role == domain.RoleClient {
		id := uuid.New()
		clientID = &id
	}

	profile, err := domain.NewProfile(uuid.New(), "user@example.com", role, clientID)
	require.NoError(t, err)
	profile.Name = "Test User"

	return profile
}

func TestProfileRepository_GetByID(t *testing.T) {
	tests := []struct {
		name            string
		userID          uuid.UUID
		setupDB         func(pgxmock.PgxPoolIface, uuid.UUID)
		wantErr         error
		errorMsg        string
		validateProfile func(*testing.T, *domain.Profile)
	}{
		{
			name:   "successful profile retrieval",
			userID: uuid.New(),
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID uuid.UUID) {
				now := time.Now()
				mockDB.ExpectQuery("SELECT(.+)FROM profiles WHERE id").
					WithArgs(userID).
					WillReturnRows(
						pgxmock.NewRows([]string{
							"id", "email", "name", "role", "client_id", "created_at", "updated_at",
						}).AddRow(
							userID,
							"admin@example.com",
							"Admin User",
							"admin",
							(*uuid.UUID)(nil),
							now,
							now,
						),
					)
			},
			validateProfile: func(t *testing.T, profile *domain.Profile) {
				assert.Equal(t, "admin@example.com", profile.Email)
				assert.Equal(t, domain.RoleAdmin, profile.Role)
				assert.Nil(t, profile.ClientID)
			},
		},
		{
			name:   "client profile carries home client",
			userID: uuid.New(),
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID uuid.UUID) {
				now := time.Now()
				homeClient := uuid.New()
				mockDB.ExpectQuery("SELECT(.+)FROM profiles WHERE id").
					WithArgs(userID).
					WillReturnRows(
						pgxmock.NewRows([]string{
							"id", "email", "name", "role", "client_id", "created_at", "updated_at",
						}).AddRow(
							userID,
							"client@example.com",
							"Client User",
							"client",
							&homeClient,
							now,
							now,
						),
					)
			},
			validateProfile: func(t *testing.T, profile *domain.Profile) {
				assert.Equal(t, domain.RoleClient, profile.Role)
				assert.NotNil(t, profile.ClientID)
			},
		},
		{
			name:   "profile not found",
			userID: uuid.New(),
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID uuid.UUID) {
				mockDB.ExpectQuery("SELECT(.+)FROM profiles WHERE id").
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrProfileNotFound,
		},
		{
			name:   "unknown role stored in database",
			userID: uuid.New(),
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID uuid.UUID) {
				now := time.Now()
				mockDB.ExpectQuery("SELECT(.+)FROM profiles WHERE id").
					WithArgs(userID).
					WillReturnRows(
						pgxmock.NewRows([]string{
							"id", "email", "name", "role", "client_id", "created_at", "updated_at",
						}).AddRow(
							userID,
							"user@example.com",
							"User",
							"superuser",
							(*uuid.UUID)(nil),
							now,
							now,
						),
					)
			},
			errorMsg: "invalid stored role",
		},
		{
			name:   "database error",
			userID: uuid.New(),
			setupDB: func(mockDB pgxmock.PgxPoolIface, userID uuid.UUID) {
				mockDB.ExpectQuery("SELECT(.+)FROM profiles WHERE id").
					WithArgs(userID).
					WillReturnError(pgx.ErrTxClosed)
			},
			errorMsg: "failed to get profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.userID)

			profile, err := repo.GetByID(context.Background(), tt.userID)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
			case tt.errorMsg != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, profile)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, profile)
				if tt.validateProfile != nil {
					tt.validateProfile(t, profile)
				}
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		profile  *domain.Profile
		setupDB  func(pgxmock.PgxPoolIface, *domain.Profile)
		wantErr  bool
		errorMsg string
	}{
		{
			name:    "successful profile creation",
			profile: createTestProfile(t, domain.RoleEmployee),
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectExec("INSERT INTO profiles").
					WithArgs(
						profile.ID,
						profile.Email,
						profile.Name,
						string(profile.Role),
						profile.ClientID,
						profile.CreatedAt,
						profile.UpdatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:    "database error during creation",
			profile: createTestProfile(t, domain.RoleClient),
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectExec("INSERT INTO profiles").
					WithArgs(
						profile.ID,
						profile.Email,
						profile.Name,
						string(profile.Role),
						profile.ClientID,
						profile.CreatedAt,
						profile.UpdatedAt,
					).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr:  true,
			errorMsg: "failed to create profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.profile)

			err := repo.Create(context.Background(), tt.profile)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_Update(t *testing.T) {
	tests := []struct {
		name     string
		profile  *domain.Profile
		setupDB  func(pgxmock.PgxPoolIface, *domain.Profile)
		wantErr  error
		errorMsg string
	}{
		{
			name:    "successful profile update",
			profile: createTestProfile(t, domain.RoleEmployee),
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectExec("UPDATE profiles SET").
					WithArgs(
						profile.ID,
						profile.Email,
						profile.Name,
						string(profile.Role),
						profile.ClientID,
						profile.UpdatedAt,
					).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:    "profile not found for update",
			profile: createTestProfile(t, domain.RoleEmployee),
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectExec("UPDATE profiles SET").
					WithArgs(
						profile.ID,
						profile.Email,
						profile.Name,
						string(profile.Role),
						profile.ClientID,
						profile.UpdatedAt,
					).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: domain.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.profile)

			err := repo.Update(context.Background(), tt.profile)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_ListByClient(t *testing.T) {
	repo, mockDB := createTestProfileRepository(t)
	defer mockDB.Close()

	clientID := uuid.New()
	now := time.Now()

	mockDB.ExpectQuery("SELECT(.+)FROM profiles WHERE client_id").
		WithArgs(clientID, 10, 0).
		WillReturnRows(
			pgxmock.NewRows([]string{
				"id", "email", "name", "role", "client_id", "created_at", "updated_at",
			}).AddRow(
				uuid.New(), "a@example.com", "A", "client", &clientID, now, now,
			).AddRow(
				uuid.New(), "b@example.com", "B", "client", &clientID, now, now,
			),
		)

	profiles, err := repo.ListByClient(context.Background(), clientID, 10, 0)

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, domain.RoleClient, profiles[0].Role)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
