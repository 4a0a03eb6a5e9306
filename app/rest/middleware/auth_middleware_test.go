package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice-api/app/domain"
	mock_port "backoffice-api/app/mocks"
	"backoffice-api/app/port"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGateTest(t *testing.T) (*mock_port.MockAuthUsecase, *AuthMiddleware) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authUsecase := mock_port.NewMockAuthUsecase(ctrl)
	return authUsecase, NewAuthMiddleware(authUsecase, testLogger())
}

// runGate sends a request through RequireAuth wrapped around a handler
// that records the authorization context it received.
func runGate(t *testing.T, m *AuthMiddleware, req *http.Request, roles ...domain.Role) (*httptest.ResponseRecorder, *domain.AuthContext) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.AuthContext
	handler := m.RequireAuth(roles...)(func(c echo.Context) error {
		authCtx, err := domain.AuthContextFrom(c.Request().Context())
		if err == nil {
			seen = &authCtx
		}
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, seen
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestRequireAuth_NoCredential(t *testing.T) {
	_, m := newGateTest(t)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rec, seen := runGate(t, m, req, domain.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized - Not authenticated", errorBody(t, rec))
	assert.Nil(t, seen)
}

func TestRequireAuth_AuthenticationFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid session",
			err:        domain.ErrNotAuthenticated,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized - Not authenticated",
		},
		{
			name:       "expired session",
			err:        domain.ErrSessionExpired,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized - Not authenticated",
		},
		{
			name:       "inactive session",
			err:        domain.ErrSessionInactive,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized - Not authenticated",
		},
		{
			name:       "identity without profile",
			err:        domain.ErrProfileNotFound,
			wantStatus: http.StatusUnauthorized,
			wantError:  "User profile not found",
		},
		{
			name:       "identity provider unreachable",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUsecase, m := newGateTest(t)
			authUsecase.EXPECT().
				Authenticate(gomock.Any(), "session-token").
				Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/clients", nil)
			req.Header.Set("X-Session-Token", "session-token")
			rec, seen := runGate(t, m, req, domain.RoleAdmin)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rec))
			assert.Nil(t, seen)
		})
	}
}

func TestRequireAuth_RoleDenied(t *testing.T) {
	authUsecase, m := newGateTest(t)
	authCtx := domain.AuthContext{
		UserID: uuid.New(),
		Email:  "employee@example.com",
		Role:   domain.RoleEmployee,
	}
	authUsecase.EXPECT().
		Authenticate(gomock.Any(), "session-token").
		Return(&authCtx, nil)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.Header.Set("X-Session-Token", "session-token")
	rec, seen := runGate(t, m, req, domain.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized - Requires one of these roles: admin", errorBody(t, rec))
	assert.Nil(t, seen)
}

func TestRequireAuth_RoleListInDenial(t *testing.T) {
	authUsecase, m := newGateTest(t)
	authCtx := domain.AuthContext{
		UserID: uuid.New(),
		Email:  "client@example.com",
		Role:   domain.RoleClient,
	}
	authUsecase.EXPECT().
		Authenticate(gomock.Any(), "session-token").
		Return(&authCtx, nil)

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	req.Header.Set("X-Session-Token", "session-token")
	rec, _ := runGate(t, m, req, domain.RoleAdmin, domain.RoleEmployee)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized - Requires one of these roles: admin, employee", errorBody(t, rec))
}

func TestRequireAuth_Authorized(t *testing.T) {
	authUsecase, m := newGateTest(t)
	authCtx := domain.AuthContext{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   domain.RoleAdmin,
	}
	authUsecase.EXPECT().
		Authenticate(gomock.Any(), "session-token").
		Return(&authCtx, nil)
	authUsecase.EXPECT().
		ResolveClientContext(gomock.Any(), authCtx, uuid.Nil, gomock.Any()).
		Return(authCtx)
	authUsecase.EXPECT().
		PropagateClientContext(gomock.Any(), authCtx)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("X-Session-Token", "session-token")
	rec, seen := runGate(t, m, req, domain.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, authCtx.UserID, seen.UserID)
	assert.Equal(t, domain.RoleAdmin, seen.Role)
}

func TestRequireAuth_ClientSwitchRequested(t *testing.T) {
	authUsecase, m := newGateTest(t)
	targetClient := uuid.New()
	authCtx := domain.AuthContext{
		UserID: uuid.New(),
		Email:  "employee@example.com",
		Role:   domain.RoleEmployee,
	}
	switched := authCtx
	switched.ActiveClientID = &targetClient

	authUsecase.EXPECT().
		Authenticate(gomock.Any(), "session-token").
		Return(&authCtx, nil)
	authUsecase.EXPECT().
		ResolveClientContext(gomock.Any(), authCtx, targetClient, port.RequestMeta{
			IPAddress: "192.0.2.1",
			UserAgent: "back-office/1.0",
		}).
		Return(switched)
	authUsecase.EXPECT().
		PropagateClientContext(gomock.Any(), switched)

	req := httptest.NewRequest(http.MethodGet, "/blog?clientId="+targetClient.String(), nil)
	req.Header.Set("X-Session-Token", "session-token")
	req.Header.Set("User-Agent", "back-office/1.0")
	req.RemoteAddr = "192.0.2.1:4000"
	rec, seen := runGate(t, m, req, domain.RoleEmployee)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.NotNil(t, seen.ActiveClientID)
	assert.Equal(t, targetClient, *seen.ActiveClientID)
}

func TestRequireAuth_MalformedClientIDIgnored(t *testing.T) {
	authUsecase, m := newGateTest(t)
	authCtx := domain.AuthContext{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   domain.RoleAdmin,
	}
	authUsecase.EXPECT().
		Authenticate(gomock.Any(), "session-token").
		Return(&authCtx, nil)
	authUsecase.EXPECT().
		ResolveClientContext(gomock.Any(), authCtx, uuid.Nil, gomock.Any()).
		Return(authCtx)
	authUsecase.EXPECT().
		PropagateClientContext(gomock.Any(), authCtx)

	req := httptest.NewRequest(http.MethodGet, "/blog?clientId=not-a-uuid", nil)
	req.Header.Set("X-Session-Token", "session-token")
	rec, _ := runGate(t, m, req, domain.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_NoRoleRestriction(t *testing.T) {
	authUsecase, m := newGateTest(t)
	homeClient := uuid.New()
	authCtx := domain.AuthContext{
		UserID:       uuid.New(),
		Email:        "client@example.com",
		Role:         domain.RoleClient,
		HomeClientID: &homeClient,
	}
	authUsecase.EXPECT().
		Authenticate(gomock.Any(), "session-token").
		Return(&authCtx, nil)
	authUsecase.EXPECT().
		ResolveClientContext(gomock.Any(), authCtx, uuid.Nil, gomock.Any()).
		Return(authCtx)
	authUsecase.EXPECT().
		PropagateClientContext(gomock.Any(), authCtx)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("X-Session-Token", "session-token")
	rec, seen := runGate(t, m, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, domain.RoleClient, seen.Role)
}

func TestExtractCredential(t *testing.T) {
	m := NewAuthMiddleware(nil, testLogger())

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "kratos session cookie",
			headers: map[string]string{"Cookie": "ory_kratos_session=MTY5; other=1"},
			want:    "ory_kratos_session=MTY5; other=1",
		},
		{
			name:    "unrelated cookie falls through",
			headers: map[string]string{"Cookie": "theme=dark", "X-Session-Token": "tok"},
			want:    "tok",
		},
		{
			name:    "bearer token",
			headers: map[string]string{"Authorization": "Bearer abc123"},
			want:    "abc123",
		},
		{
			name:    "raw authorization header",
			headers: map[string]string{"Authorization": "abc123"},
			want:    "abc123",
		},
		{
			name:    "session token header",
			headers: map[string]string{"X-Session-Token": "xyz789"},
			want:    "xyz789",
		},
		{
			name:    "cookie takes precedence",
			headers: map[string]string{"Cookie": "ory_kratos_session=a", "Authorization": "Bearer b"},
			want:    "ory_kratos_session=a",
		},
		{
			name:    "nothing present",
			headers: map[string]string{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, m.extractCredential(c))
		})
	}
}
