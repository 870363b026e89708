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

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, actor *models.User, req *dto.CreateCourseRequest) (*models.Course, error)
	ListCourses(ctx context.Context, actor *models.User, departmentID *int64) ([]*models.Course, error)
	GetCourse(ctx context.Context, actor *models.User, id int64) (*models.Course, error)
	UpdateCourse(ctx context.Context, actor *models.User, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, actor *models.User, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo   *repositories.CourseRepository
	activityRepo *repositories.ActivityRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, activityRepo *repositories.ActivityRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo, activityRepo: activityRepo}
}

// CreateCourse creates a new course in the actor's institution
func (s *courseServiceImpl) CreateCourse(ctx context.Context, actor *models.User, req *dto.CreateCourseRequest) (*models.Course, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	course := &models.Course{
		CourseCode:          req.CourseCode,
		Name:                req.Name,
		InstitutionID:       institutionID,
		DepartmentID:        req.DepartmentID,
		Prerequisites:       req.Prerequisites,
		LecturerID:          req.LecturerID,
		AssessmentStructure: req.AssessmentStructure,
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.HoursPerWeek != nil {
		course.HoursPerWeek = *req.HoursPerWeek
	}
	if req.DifficultyWeight != nil {
		course.DifficultyWeight = *req.DifficultyWeight
	}
	if err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionCourseCreated,
		fmt.Sprintf("Course %s created", course.CourseCode),
		createdMetadata("courseId", course.ID, map[string]interface{}{"courseCode": course.CourseCode}))
	return course, nil
}

// ListCourses retrieves courses of the actor's institution, optionally
// narrowed to one department.
func (s *courseServiceImpl) ListCourses(ctx context.Context, actor *models.User, departmentID *int64) ([]*models.Course, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	var courses []*models.Course
	if departmentID != nil {
		courses, err = s.courseRepo.ListByDepartment(ctx, institutionID, *departmentID)
	} else {
		courses, err = s.courseRepo.ListByInstitution(ctx, institutionID)
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourse retrieves one course of the actor's institution
func (s *courseServiceImpl) GetCourse(ctx context.Context, actor *models.User, id int64) (*models.Course, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetCourseByID(ctx, institutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("course not found")
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// UpdateCourse applies a partial update to a course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, actor *models.User, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.CourseCode != nil {
		fields["course_code"] = *req.CourseCode
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.DepartmentID != nil {
		fields["department_id"] = *req.DepartmentID
	}
	if req.Credits != nil {
		fields["credits"] = *req.Credits
	}
	if req.HoursPerWeek != nil {
		fields["hours_per_week"] = *req.HoursPerWeek
	}
	if req.DifficultyWeight != nil {
		fields["difficulty_weight"] = *req.DifficultyWeight
	}
	if req.Prerequisites != nil {
		fields["prerequisites"] = req.Prerequisites
	}
	if req.LecturerID != nil {
		fields["lecturer_id"] = *req.LecturerID
	}
	if req.AssessmentStructure != nil {
		fields["assessment_structure"] = req.AssessmentStructure
	}

	course, err := s.courseRepo.UpdateCourse(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("course not found")
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return course, nil
}

// DeleteCourse deletes a course of the actor's institution
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.courseRepo.DeleteCourse(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("course not found")
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
