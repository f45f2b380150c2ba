package middlewarectx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqaf171-stack/login-backend/internal/lib/jwt"
)

func TestJWTMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	maker := jwt.NewJWTMaker("test_secret_key", 24*time.Hour)

	validToken, err := maker.GenerateToken(1, "admin", "مدير النظام")
	require.NoError(t, err)

	expiredMaker := jwt.NewJWTMaker("test_secret_key", -time.Hour)
	expiredToken, err := expiredMaker.GenerateToken(1, "admin", "مدير النظام")
	require.NoError(t, err)

	wrongSecretMaker := jwt.NewJWTMaker("another_secret", 24*time.Hour)
	foreignToken, err := wrongSecretMaker.GenerateToken(1, "admin", "مدير النظام")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header without bearer prefix",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty bearer token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + expiredToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "token signed with another secret",
			authHeader:     "Bearer " + foreignToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, 1, r.Context().Value(UserID))
				assert.Equal(t, "admin", r.Context().Value(User))
				assert.Equal(t, "مدير النظام", r.Context().Value(Role))
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(maker, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
