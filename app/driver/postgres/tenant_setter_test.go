package postgres

import (
	"context"
	"testing"

	"backoffice-api/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTenantSetter(t *testing.T) (*TenantSetter, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	setter := NewTenantSetter(mockDB, testLogger).(*TenantSetter)

	return setter, mockDB
}

func TestTenantSetter_SetEffectiveClient(t *testing.T) {
	clientID := uuid.New()

	t.Run("publishes the client id as a session parameter", func(t *testing.T) {
		setter, mockDB := createTestTenantSetter(t)
		defer mockDB.Close()

		mockDB.ExpectExec("SELECT set_config").
			WithArgs(clientID.String()).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		err := setter.SetEffectiveClient(context.Background(), clientID)
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("surfaces exec failures to the best-effort caller", func(t *testing.T) {
		setter, mockDB := createTestTenantSetter(t)
		defer mockDB.Close()

		mockDB.ExpectExec("SELECT set_config").
			WithArgs(clientID.String()).
			WillReturnError(pgx.ErrTxClosed)

		err := setter.SetEffectiveClient(context.Background(), clientID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set effective client")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
