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

// ClassroomService defines the interface for classroom operations
type ClassroomService interface {
	CreateClassroom(ctx context.Context, actor *models.User, req *dto.CreateClassroomRequest) (*models.Classroom, error)
	ListClassrooms(ctx context.Context, actor *models.User) ([]*models.Classroom, error)
	GetClassroom(ctx context.Context, actor *models.User, id int64) (*models.Classroom, error)
	UpdateClassroom(ctx context.Context, actor *models.User, id int64, req *dto.UpdateClassroomRequest) (*models.Classroom, error)
	DeleteClassroom(ctx context.Context, actor *models.User, id int64) error
}

// classroomServiceImpl implements the ClassroomService interface
type classroomServiceImpl struct {
	classroomRepo *repositories.ClassroomRepository
	activityRepo  *repositories.ActivityRepository
}

// NewClassroomService creates a new classroom service instance
func NewClassroomService(classroomRepo *repositories.ClassroomRepository, activityRepo *repositories.ActivityRepository) ClassroomService {
	return &classroomServiceImpl{classroomRepo: classroomRepo, activityRepo: activityRepo}
}

// defaultRoomType mirrors the schema default on the room_type column.
const defaultRoomType = "lecture"

// newClassroom maps a create request onto a row, falling back to the
// default room type when the payload leaves it out.
func newClassroom(institutionID int64, req *dto.CreateClassroomRequest) *models.Classroom {
	room := &models.Classroom{
		RoomNumber:    req.RoomNumber,
		InstitutionID: institutionID,
		Building:      req.Building,
		Capacity:      req.Capacity,
		Equipment:     req.Equipment,
		RoomType:      defaultRoomType,
	}
	if req.RoomType != nil && *req.RoomType != "" {
		room.RoomType = *req.RoomType
	}
	return room
}

// CreateClassroom creates a new classroom in the actor's institution
func (s *classroomServiceImpl) CreateClassroom(ctx context.Context, actor *models.User, req *dto.CreateClassroomRequest) (*models.Classroom, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	room := newClassroom(institutionID, req)
	if err := s.classroomRepo.CreateClassroom(ctx, room); err != nil {
		return nil, fmt.Errorf("error creating classroom: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionClassroomCreated,
		fmt.Sprintf("Classroom %s created", room.RoomNumber),
		createdMetadata("classroomId", room.ID, map[string]interface{}{"roomNumber": room.RoomNumber}))
	return room, nil
}

// ListClassrooms retrieves all classrooms of the actor's institution
func (s *classroomServiceImpl) ListClassrooms(ctx context.Context, actor *models.User) ([]*models.Classroom, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	rooms, err := s.classroomRepo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classrooms: %w", err)
	}
	return rooms, nil
}

// GetClassroom retrieves one classroom of the actor's institution
func (s *classroomServiceImpl) GetClassroom(ctx context.Context, actor *models.User, id int64) (*models.Classroom, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	room, err := s.classroomRepo.GetClassroomByID(ctx, institutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("classroom not found")
		}
		return nil, fmt.Errorf("error retrieving classroom: %w", err)
	}
	return room, nil
}

// UpdateClassroom applies a partial update to a classroom
func (s *classroomServiceImpl) UpdateClassroom(ctx context.Context, actor *models.User, id int64, req *dto.UpdateClassroomRequest) (*models.Classroom, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.RoomNumber != nil {
		fields["room_number"] = *req.RoomNumber
	}
	if req.Building != nil {
		fields["building"] = *req.Building
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.Equipment != nil {
		fields["equipment"] = req.Equipment
	}
	if req.RoomType != nil {
		fields["room_type"] = *req.RoomType
	}

	room, err := s.classroomRepo.UpdateClassroom(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("classroom not found")
		}
		return nil, fmt.Errorf("error updating classroom: %w", err)
	}
	return room, nil
}

// DeleteClassroom deletes a classroom of the actor's institution
func (s *classroomServiceImpl) DeleteClassroom(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.classroomRepo.DeleteClassroom(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("classroom not found")
		}
		return fmt.Errorf("error deleting classroom: %w", err)
	}
	return nil
}
