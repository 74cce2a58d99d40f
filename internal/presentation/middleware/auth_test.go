package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fotolio/internal/presentation"
)

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	cfg := presentation.AuthConfig{Secret: "test-secret", TTLHours: 1}
	userID := primitive.NewObjectID().Hex()

	validToken, err := presentation.IssueToken(cfg, userID)
	require.NoError(t, err)

	foreignToken, err := presentation.IssueToken(presentation.AuthConfig{Secret: "other-secret", TTLHours: 1}, userID)
	require.NoError(t, err)

	badSubjectToken, err := presentation.IssueToken(cfg, "not-an-object-id")
	require.NoError(t, err)

	tests := []struct {
		name           string
		setupRequest   func() *http.Request
		expectedStatus int
		expectedReason string
	}{
		{
			name: "missing Authorization header",
			setupRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedReason: "missing bearer token",
		},
		{
			name: "wrong scheme",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
				req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwdw==")

				return req
			},
			expectedStatus: http.StatusUnauthorized,
			expectedReason: "missing bearer token",
		},
		{
			name: "garbage token",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
				req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.jwt")

				return req
			},
			expectedStatus: http.StatusUnauthorized,
			expectedReason: "invalid token",
		},
		{
			name: "token signed with another secret",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+foreignToken)

				return req
			},
			expectedStatus: http.StatusUnauthorized,
			expectedReason: "invalid token",
		},
		{
			name: "subject is not a valid id",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+badSubjectToken)

				return req
			},
			expectedStatus: http.StatusUnauthorized,
			expectedReason: "malformed subject",
		},
		{
			name: "valid token",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)

				return req
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(tt.setupRequest(), rec)

			handler := Auth(cfg)(func(c echo.Context) error {
				assert.Equal(t, userID, c.Get(presentation.KeyUserID))

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedReason != "" {
				assert.Equal(t, tt.expectedReason, rec.Header().Get(presentation.ReasonTag))
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID().Hex()

	expired, err := presentation.IssueToken(presentation.AuthConfig{Secret: "test-secret", TTLHours: -1}, userID)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+expired)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(presentation.AuthConfig{Secret: "test-secret"})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", rec.Header().Get(presentation.ReasonTag))
}
