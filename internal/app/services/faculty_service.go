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

// FacultyService defines the interface for faculty operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, actor *models.User, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	ListFaculties(ctx context.Context, actor *models.User) ([]*models.Faculty, error)
	GetFaculty(ctx context.Context, actor *models.User, id int64) (*models.Faculty, error)
	UpdateFaculty(ctx context.Context, actor *models.User, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, actor *models.User, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo  *repositories.FacultyRepository
	activityRepo *repositories.ActivityRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyRepository, activityRepo *repositories.ActivityRepository) FacultyService {
	return &facultyServiceImpl{facultyRepo: facultyRepo, activityRepo: activityRepo}
}

// CreateFaculty creates a new faculty in the actor's institution
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, actor *models.User, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		Name:             req.Name,
		InstitutionID:    institutionID,
		DeanID:           req.DeanID,
		BudgetAllocation: req.BudgetAllocation,
	}
	if err := s.facultyRepo.CreateFaculty(ctx, faculty); err != nil {
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionFacultyCreated,
		fmt.Sprintf("Faculty %q created", faculty.Name),
		createdMetadata("facultyId", faculty.ID, map[string]interface{}{"name": faculty.Name}))
	return faculty, nil
}

// ListFaculties retrieves all faculties of the actor's institution
func (s *facultyServiceImpl) ListFaculties(ctx context.Context, actor *models.User) ([]*models.Faculty, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	faculties, err := s.facultyRepo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// GetFaculty retrieves one faculty of the actor's institution
func (s *facultyServiceImpl) GetFaculty(ctx context.Context, actor *models.User, id int64) (*models.Faculty, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	faculty, err := s.facultyRepo.GetFacultyByID(ctx, institutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("faculty not found")
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

// UpdateFaculty applies a partial update to a faculty
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, actor *models.User, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.DeanID != nil {
		fields["dean_id"] = *req.DeanID
	}
	if req.BudgetAllocation != nil {
		fields["budget_allocation"] = *req.BudgetAllocation
	}

	faculty, err := s.facultyRepo.UpdateFaculty(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("faculty not found")
		}
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	return faculty, nil
}

// DeleteFaculty deletes a faculty of the actor's institution
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.facultyRepo.DeleteFaculty(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("faculty not found")
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
