package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/repositories"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
	"github.com/smartcampus/backend/internal/pkg/logger"
)

// UserService defines the interface for user administration
type UserService interface {
	ListUsers(ctx context.Context, actor *models.User, role string) ([]*models.PublicUser, error)
	UpdateUserRole(ctx context.Context, actor *models.User, userID int64, req *dto.UpdateRoleRequest) (*models.PublicUser, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// ListUsers retrieves the users of the actor's institution, optionally
// filtered by role.
func (s *userServiceImpl) ListUsers(ctx context.Context, actor *models.User, role string) ([]*models.PublicUser, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if role != "" && !models.IsKnownRole(role) {
		return nil, apperrors.NewValidationError("unknown role").WithField("role")
	}

	users, err := s.userRepo.ListByInstitution(ctx, institutionID, role)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}

	public := make([]*models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}

// UpdateUserRole changes another user's role and permission set. Only admins
// of the same institution may do this.
func (s *userServiceImpl) UpdateUserRole(ctx context.Context, actor *models.User, userID int64, req *dto.UpdateRoleRequest) (*models.PublicUser, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if actor.Role != string(models.RoleAdmin) {
		return nil, apperrors.ErrPermissionDenied
	}
	if !models.IsKnownRole(req.Role) {
		return nil, apperrors.NewValidationError("unknown role").WithField("role")
	}

	target, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if target.InstitutionID == nil || *target.InstitutionID != institutionID {
		return nil, apperrors.ErrUserNotFound
	}

	updated, err := s.userRepo.UpdateRole(ctx, userID, req.Role, req.Permissions)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error updating user role: %w", err)
	}

	logger.Info().Int64("userID", userID).Str("role", req.Role).Int64("actorID", actor.ID).Msg("User role updated")
	return updated.Public(), nil
}
