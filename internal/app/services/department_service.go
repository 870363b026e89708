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

// DepartmentService defines the interface for department operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, actor *models.User, req *dto.CreateDepartmentRequest) (*models.Department, error)
	ListDepartments(ctx context.Context, actor *models.User, facultyID *int64) ([]*models.Department, error)
	GetDepartment(ctx context.Context, actor *models.User, id int64) (*models.Department, error)
	UpdateDepartment(ctx context.Context, actor *models.User, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, actor *models.User, id int64) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
	activityRepo   *repositories.ActivityRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository, activityRepo *repositories.ActivityRepository) DepartmentService {
	return &departmentServiceImpl{departmentRepo: departmentRepo, activityRepo: activityRepo}
}

// CreateDepartment creates a new department in the actor's institution
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, actor *models.User, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	dept := &models.Department{
		Name:          req.Name,
		InstitutionID: institutionID,
		FacultyID:     req.FacultyID,
		HeadID:        req.HeadID,
	}
	if req.StaffCount != nil {
		dept.StaffCount = *req.StaffCount
	}
	if err := s.departmentRepo.CreateDepartment(ctx, dept); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionDepartmentCreated,
		fmt.Sprintf("Department %q created", dept.Name),
		createdMetadata("departmentId", dept.ID, map[string]interface{}{"name": dept.Name}))
	return dept, nil
}

// ListDepartments retrieves departments of the actor's institution,
// optionally narrowed to one faculty.
func (s *departmentServiceImpl) ListDepartments(ctx context.Context, actor *models.User, facultyID *int64) ([]*models.Department, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	var departments []*models.Department
	if facultyID != nil {
		departments, err = s.departmentRepo.ListByFaculty(ctx, institutionID, *facultyID)
	} else {
		departments, err = s.departmentRepo.ListByInstitution(ctx, institutionID)
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetDepartment retrieves one department of the actor's institution
func (s *departmentServiceImpl) GetDepartment(ctx context.Context, actor *models.User, id int64) (*models.Department, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	dept, err := s.departmentRepo.GetDepartmentByID(ctx, institutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("department not found")
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return dept, nil
}

// UpdateDepartment applies a partial update to a department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, actor *models.User, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.FacultyID != nil {
		fields["faculty_id"] = *req.FacultyID
	}
	if req.HeadID != nil {
		fields["head_id"] = *req.HeadID
	}
	if req.StaffCount != nil {
		fields["staff_count"] = *req.StaffCount
	}

	dept, err := s.departmentRepo.UpdateDepartment(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("department not found")
		}
		return nil, fmt.Errorf("error updating department: %w", err)
	}
	return dept, nil
}

// DeleteDepartment deletes a department of the actor's institution
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.departmentRepo.DeleteDepartment(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("department not found")
		}
		return fmt.Errorf("error deleting department: %w", err)
	}
	return nil
}
