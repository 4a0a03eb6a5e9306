package postgres

import (
	"context"
	"testing"

	"backoffice-api/app/domain"
	"backoffice-api/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSwitchLedger(t *testing.T) (*SwitchLedger, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	ledger := NewSwitchLedger(mockDB, testLogger).(*SwitchLedger)

	return ledger, mockDB
}

func TestSwitchLedger_Append(t *testing.T) {
	tests := []struct {
		name      string
		ipAddress string
		userAgent string
		setupDB   func(pgxmock.PgxPoolIface, *domain.ClientSwitchEvent)
		wantErr   bool
		errorMsg  string
	}{
		{
			name:      "successful append with request metadata",
			ipAddress: "203.0.113.10",
			userAgent: "Mozilla/5.0",
			setupDB: func(mockDB pgxmock.PgxPoolIface, event *domain.ClientSwitchEvent) {
				mockDB.ExpectExec("INSERT INTO client_switch_events").
					WithArgs(
						event.ID,
						event.UserID,
						event.ClientID,
						&event.IPAddress,
						&event.UserAgent,
						event.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "successful append without request metadata",
			setupDB: func(mockDB pgxmock.PgxPoolIface, event *domain.ClientSwitchEvent) {
				mockDB.ExpectExec("INSERT INTO client_switch_events").
					WithArgs(
						event.ID,
						event.UserID,
						event.ClientID,
						(*string)(nil),
						(*string)(nil),
						event.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "database error during append",
			setupDB: func(mockDB pgxmock.PgxPoolIface, event *domain.ClientSwitchEvent) {
				mockDB.ExpectExec("INSERT INTO client_switch_events").
					WithArgs(
						event.ID,
						event.UserID,
						event.ClientID,
						(*string)(nil),
						(*string)(nil),
						event.CreatedAt,
					).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr:  true,
			errorMsg: "failed to append switch event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, mockDB := createTestSwitchLedger(t)
			defer mockDB.Close()

			event, err := domain.NewClientSwitchEvent(uuid.New(), uuid.New(), tt.ipAddress, tt.userAgent)
			require.NoError(t, err)

			tt.setupDB(mockDB, event)

			err = ledger.Append(context.Background(), event)

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
