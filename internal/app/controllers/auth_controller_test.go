package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthService struct {
	registerFn func(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	currentFn  func(ctx context.Context, userID int64) (*dto.MeResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) GetCurrentUser(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	return f.currentFn(ctx, userID)
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthController_Register(t *testing.T) {
	svc := &fakeAuthService{
		registerFn: func(_ context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
			return &dto.AuthResponse{
				User:  &models.PublicUser{ID: 1, Username: req.Username, Email: req.Email, Role: "admin"},
				Token: "signed-token",
			}, nil
		},
	}
	router := gin.New()
	router.POST("/api/auth/register", NewAuthController(svc).Register)

	recorder := postJSON(t, router, "/api/auth/register", dto.RegisterRequest{
		Username: "principal",
		Email:    "principal@example.edu",
		Password: "s3cret-pass",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	var body struct {
		Data dto.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body.Data.Token)
	assert.Equal(t, "principal", body.Data.User.Username)
}

func TestAuthController_Register_InvalidPayload(t *testing.T) {
	svc := &fakeAuthService{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) (*dto.AuthResponse, error) {
			t.Fatal("service must not be called for invalid payloads")
			return nil, nil
		},
	}
	router := gin.New()
	router.POST("/api/auth/register", NewAuthController(svc).Register)

	recorder := postJSON(t, router, "/api/auth/register", dto.RegisterRequest{
		Username: "principal",
		Email:    "not-an-email",
		Password: "s3cret-pass",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	svc := &fakeAuthService{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) (*dto.AuthResponse, error) {
			return nil, apperrors.ErrEmailAlreadyExists
		},
	}
	router := gin.New()
	router.POST("/api/auth/register", NewAuthController(svc).Register)

	recorder := postJSON(t, router, "/api/auth/register", dto.RegisterRequest{
		Username: "principal",
		Email:    "taken@example.edu",
		Password: "s3cret-pass",
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestAuthController_Login(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(_ context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
			if req.Password != "right-pass" {
				return nil, apperrors.ErrInvalidCredentials
			}
			return &dto.AuthResponse{
				User:  &models.PublicUser{ID: 1, Email: req.Email, Role: "admin"},
				Token: "signed-token",
			}, nil
		},
	}
	router := gin.New()
	router.POST("/api/auth/login", NewAuthController(svc).Login)

	recorder := postJSON(t, router, "/api/auth/login", dto.LoginRequest{
		Email:    "principal@example.edu",
		Password: "right-pass",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = postJSON(t, router, "/api/auth/login", dto.LoginRequest{
		Email:    "principal@example.edu",
		Password: "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
