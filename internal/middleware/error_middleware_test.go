package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runHandleAPIError(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, &body
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"token invalid", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"token missing", apperrors.ErrTokenMissing, http.StatusUnauthorized, dto.ErrorCodeTokenMissing},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"institution not found", apperrors.ErrInstitutionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"generic not found", apperrors.ErrNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"username exists", apperrors.ErrUsernameAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"student id exists", apperrors.ErrStudentIDAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"unknown error", assert.AnError, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := runHandleAPIError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIError_CustomMessageAndField(t *testing.T) {
	err := apperrors.NewNotFoundError("faculty not found")
	status, body := runHandleAPIError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "faculty not found", body.Error.Message)
	assert.Equal(t, "faculty not found", body.Message)

	err = apperrors.NewValidationError("unknown role").WithField("role")
	status, body = runHandleAPIError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "unknown role", body.Error.Message)
	assert.Equal(t, "role", body.Error.Field)

	err = &apperrors.CustomError{Err: apperrors.ErrPermissionDenied, Message: "User no longer exists"}
	status, body = runHandleAPIError(t, err)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "User no longer exists", body.Error.Message)
}
