package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"locallink/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func protectedEndpoint(t *testing.T, wantUserID uuid.UUID, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, userID)

		role, ok := utils.GetRoleFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantRole, role)

		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	logger := zap.NewNop()
	userID := uuid.New()

	t.Run("valid bearer token passes through", func(t *testing.T) {
		token, err := utils.SignJWT(testSecret, userID.String(), "CUSTOMER", 1)
		require.NoError(t, err)

		handler := Auth(testSecret, logger)(protectedEndpoint(t, userID, "CUSTOMER"))

		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		handler := Auth(testSecret, logger)(protectedEndpoint(t, userID, "CUSTOMER"))

		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		handler := Auth(testSecret, logger)(protectedEndpoint(t, userID, "CUSTOMER"))

		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Token abc123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := utils.SignJWT("other-secret", userID.String(), "CUSTOMER", 1)
		require.NoError(t, err)

		handler := Auth(testSecret, logger)(protectedEndpoint(t, userID, "CUSTOMER"))

		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token with unknown role", func(t *testing.T) {
		token, err := utils.SignJWT(testSecret, userID.String(), "ADMIN", 1)
		require.NoError(t, err)

		handler := Auth(testSecret, logger)(protectedEndpoint(t, userID, "ADMIN"))

		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	logger := zap.NewNop()
	userID := uuid.New()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(role, required string) *httptest.ResponseRecorder {
		token, err := utils.SignJWT(testSecret, userID.String(), role, 1)
		require.NoError(t, err)

		handler := Auth(testSecret, logger)(RequireRole(required, logger)(ok))

		req := httptest.NewRequest(http.MethodPost, "/api/workers/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("matching role", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve("WORKER", "WORKER").Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve("CUSTOMER", "WORKER").Code)
	})

	t.Run("without auth context", func(t *testing.T) {
		handler := RequireRole("WORKER", logger)(ok)

		req := httptest.NewRequest(http.MethodPost, "/api/workers/profile", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
