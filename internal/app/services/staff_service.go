package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/repositories"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

// StaffService defines the interface for academic staff operations
type StaffService interface {
	CreateStaff(ctx context.Context, actor *models.User, req *dto.CreateStaffRequest) (*models.AcademicStaff, error)
	ListStaff(ctx context.Context, actor *models.User) ([]*models.AcademicStaff, error)
	GetStaff(ctx context.Context, actor *models.User, id int64) (*models.AcademicStaff, error)
	UpdateStaff(ctx context.Context, actor *models.User, id int64, req *dto.UpdateStaffRequest) (*models.AcademicStaff, error)
	DeleteStaff(ctx context.Context, actor *models.User, id int64) error
}

// staffServiceImpl implements the StaffService interface
type staffServiceImpl struct {
	staffRepo    *repositories.StaffRepository
	activityRepo *repositories.ActivityRepository
}

// NewStaffService creates a new staff service instance
func NewStaffService(staffRepo *repositories.StaffRepository, activityRepo *repositories.ActivityRepository) StaffService {
	return &staffServiceImpl{staffRepo: staffRepo, activityRepo: activityRepo}
}

// CreateStaff creates a staff record linked to an existing user account
func (s *staffServiceImpl) CreateStaff(ctx context.Context, actor *models.User, req *dto.CreateStaffRequest) (*models.AcademicStaff, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	staff := &models.AcademicStaff{
		UserID:          req.UserID,
		InstitutionID:   institutionID,
		DepartmentID:    req.DepartmentID,
		Rank:            req.Rank,
		Specializations: req.Specializations,
		ResearchAreas:   req.ResearchAreas,
	}
	if req.TeachingLoad != nil {
		staff.TeachingLoad = *req.TeachingLoad
	}
	if err := s.staffRepo.CreateStaff(ctx, staff); err != nil {
		return nil, fmt.Errorf("error creating staff member: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionStaffCreated,
		"Staff member added", createdMetadata("staffId", staff.ID, nil))
	return staff, nil
}

// ListStaff retrieves all staff of the actor's institution
func (s *staffServiceImpl) ListStaff(ctx context.Context, actor *models.User) ([]*models.AcademicStaff, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving staff: %w", err)
	}
	return staff, nil
}

// GetStaff retrieves one staff member of the actor's institution
func (s *staffServiceImpl) GetStaff(ctx context.Context, actor *models.User, id int64) (*models.AcademicStaff, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.GetStaffByID(ctx, institutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("staff member not found")
		}
		return nil, fmt.Errorf("error retrieving staff member: %w", err)
	}
	return staff, nil
}

// UpdateStaff applies a partial update to a staff member
func (s *staffServiceImpl) UpdateStaff(ctx context.Context, actor *models.User, id int64, req *dto.UpdateStaffRequest) (*models.AcademicStaff, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.DepartmentID != nil {
		fields["department_id"] = *req.DepartmentID
	}
	if req.Rank != nil {
		fields["rank"] = *req.Rank
	}
	if req.Specializations != nil {
		fields["specializations"] = req.Specializations
	}
	if req.ResearchAreas != nil {
		fields["research_areas"] = req.ResearchAreas
	}
	if req.TeachingLoad != nil {
		fields["teaching_load"] = *req.TeachingLoad
	}

	staff, err := s.staffRepo.UpdateStaff(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("staff member not found")
		}
		return nil, fmt.Errorf("error updating staff member: %w", err)
	}
	return staff, nil
}

// DeleteStaff deletes a staff member of the actor's institution
func (s *staffServiceImpl) DeleteStaff(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.staffRepo.DeleteStaff(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("staff member not found")
		}
		return fmt.Errorf("error deleting staff member: %w", err)
	}
	return nil
}
