package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/pkg/auth"
)

func jwtAuthRouter(jwtService *auth.JWTService, reached *bool) *gin.Engine {
	mw := NewAuthMiddleware(jwtService, nil)
	router := gin.New()
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) {
		*reached = true
		c.Status(http.StatusOK)
	})
	return router
}

// Token failures are rejected before the user lookup, through the same
// error mapping the handlers use.
func TestJWTAuth_RejectsBadCredentials(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "smartcampus-test",
	})
	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "smartcampus-test",
	})

	expiredToken, err := expiredService.GenerateToken(&models.User{ID: 1, Role: "admin"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		authHeader  string
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{"missing header", "", dto.ErrorCodeTokenMissing, "Access token required"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", dto.ErrorCodeInvalidToken, "Invalid authorization header"},
		{"malformed token", "Bearer not-a-jwt", dto.ErrorCodeInvalidToken, "Invalid token"},
		{"expired token", "Bearer " + expiredToken, dto.ErrorCodeExpiredToken, "Token expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			router := jwtAuthRouter(jwtService, &reached)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, reached, "handler must not run on auth failure")

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
		})
	}
}

func TestJWTAuth_AcceptsValidToken(t *testing.T) {
	// A valid token still requires the user lookup, so this exercises
	// only the token path up to it with a request that never gets there.
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "smartcampus-test",
	})
	token, err := jwtService.GenerateToken(&models.User{ID: 1, Role: "admin"})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}
