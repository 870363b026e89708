package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/repositories"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
	"github.com/smartcampus/backend/internal/pkg/auth"
	"github.com/smartcampus/backend/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*dto.MeResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo        *repositories.UserRepository
	institutionRepo *repositories.InstitutionRepository
	jwtService      *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo *repositories.UserRepository,
	institutionRepo *repositories.InstitutionRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authServiceImpl{
		userRepo:        userRepo,
		institutionRepo: institutionRepo,
		jwtService:      jwtService,
	}
}

// Register creates a new user account and returns it with a fresh token.
// Role defaults to admin: self-service registration is the first step of
// institution onboarding.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = string(models.RoleAdmin)
	}
	if !models.IsKnownRole(role) {
		return nil, apperrors.NewValidationError("unknown role").WithField("role")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     role,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if errors.Is(err, repositories.ErrUsernameAlreadyExists) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Str("role", user.Role).Msg("User registered")
	return &dto.AuthResponse{User: user.Public(), Token: token}, nil
}

// Login verifies credentials and returns the user with a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return &dto.AuthResponse{User: user.Public(), Token: token}, nil
}

// GetCurrentUser returns the authenticated user's profile plus the
// institution it belongs to, which is null until onboarding finishes.
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	resp := &dto.MeResponse{User: user.Public()}
	if user.InstitutionID != nil {
		inst, err := s.institutionRepo.GetInstitutionByID(ctx, *user.InstitutionID)
		if err != nil && !errors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, fmt.Errorf("error looking up institution: %w", err)
		}
		resp.Institution = inst
	}
	return resp, nil
}
