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

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, actor *models.User, req *dto.CreateStudentRequest) (*models.Student, error)
	ListStudents(ctx context.Context, actor *models.User) ([]*models.Student, error)
	GetStudent(ctx context.Context, actor *models.User, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, actor *models.User, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, actor *models.User, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo  *repositories.StudentRepository
	activityRepo *repositories.ActivityRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, activityRepo *repositories.ActivityRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo, activityRepo: activityRepo}
}

// defaultAcademicStanding mirrors the schema default on the
// academic_standing column.
const defaultAcademicStanding = "good"

// newStudent maps a create request onto a row. Academic standing is not
// client-settable at enrollment; every student starts in good standing.
func newStudent(institutionID int64, req *dto.CreateStudentRequest) *models.Student {
	student := &models.Student{
		UserID:           req.UserID,
		InstitutionID:    institutionID,
		StudentID:        req.StudentID,
		Program:          req.Program,
		YearOfStudy:      req.YearOfStudy,
		AcademicStanding: defaultAcademicStanding,
		GPA:              req.GPA,
	}
	if req.Credits != nil {
		student.Credits = *req.Credits
	}
	return student
}

// CreateStudent creates a student record linked to an existing user account.
// The enrollment number is unique across all institutions.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, actor *models.User, req *dto.CreateStudentRequest) (*models.Student, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	student := newStudent(institutionID, req)
	if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentIDAlreadyExists) {
			return nil, apperrors.ErrStudentIDAlreadyExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionStudentCreated,
		fmt.Sprintf("Student %s enrolled", student.StudentID),
		createdMetadata("studentId", student.ID, map[string]interface{}{"enrollmentNumber": student.StudentID}))
	return student, nil
}

// ListStudents retrieves all students of the actor's institution
func (s *studentServiceImpl) ListStudents(ctx context.Context, actor *models.User) ([]*models.Student, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	students, err := s.studentRepo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudent retrieves one student of the actor's institution
func (s *studentServiceImpl) GetStudent(ctx context.Context, actor *models.User, id int64) (*models.Student, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.GetStudentByID(ctx, institutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("student not found")
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// UpdateStudent applies a partial update to a student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, actor *models.User, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Program != nil {
		fields["program"] = *req.Program
	}
	if req.YearOfStudy != nil {
		fields["year_of_study"] = *req.YearOfStudy
	}
	if req.AcademicStanding != nil {
		fields["academic_standing"] = *req.AcademicStanding
	}
	if req.GPA != nil {
		fields["gpa"] = *req.GPA
	}
	if req.Credits != nil {
		fields["credits"] = *req.Credits
	}

	student, err := s.studentRepo.UpdateStudent(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("student not found")
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// DeleteStudent deletes a student of the actor's institution
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.studentRepo.DeleteStudent(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("student not found")
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
