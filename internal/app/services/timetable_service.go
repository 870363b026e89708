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

// TimetableService covers the weekly time grid and the slot assignments
// placed on it.
type TimetableService interface {
	CreateTimeSlot(ctx context.Context, actor *models.User, req *dto.CreateTimeSlotRequest) (*models.TimeSlot, error)
	ListTimeSlots(ctx context.Context, actor *models.User) ([]*models.TimeSlot, error)
	UpdateTimeSlot(ctx context.Context, actor *models.User, id int64, req *dto.UpdateTimeSlotRequest) (*models.TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, actor *models.User, id int64) error

	CreateTimetableSlot(ctx context.Context, actor *models.User, req *dto.CreateTimetableSlotRequest) (*models.TimetableSlot, error)
	ListTimetableSlots(ctx context.Context, actor *models.User) ([]*models.TimetableSlot, error)
	UpdateTimetableSlot(ctx context.Context, actor *models.User, id int64, req *dto.UpdateTimetableSlotRequest) (*models.TimetableSlot, error)
	DeleteTimetableSlot(ctx context.Context, actor *models.User, id int64) error
}

// timetableServiceImpl implements the TimetableService interface
type timetableServiceImpl struct {
	timeSlotRepo  *repositories.TimeSlotRepository
	timetableRepo *repositories.TimetableRepository
	activityRepo  *repositories.ActivityRepository
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(
	timeSlotRepo *repositories.TimeSlotRepository,
	timetableRepo *repositories.TimetableRepository,
	activityRepo *repositories.ActivityRepository,
) TimetableService {
	return &timetableServiceImpl{
		timeSlotRepo:  timeSlotRepo,
		timetableRepo: timetableRepo,
		activityRepo:  activityRepo,
	}
}

// CreateTimeSlot adds a window to the weekly grid
func (s *timetableServiceImpl) CreateTimeSlot(ctx context.Context, actor *models.User, req *dto.CreateTimeSlotRequest) (*models.TimeSlot, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	slot := &models.TimeSlot{
		InstitutionID: institutionID,
		Day:           req.Day,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Duration:      req.Duration,
	}
	if err := s.timeSlotRepo.CreateTimeSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("error creating time slot: %w", err)
	}
	return slot, nil
}

// ListTimeSlots retrieves the weekly grid of the actor's institution
func (s *timetableServiceImpl) ListTimeSlots(ctx context.Context, actor *models.User) ([]*models.TimeSlot, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	slots, err := s.timeSlotRepo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving time slots: %w", err)
	}
	return slots, nil
}

// UpdateTimeSlot applies a partial update to a grid window
func (s *timetableServiceImpl) UpdateTimeSlot(ctx context.Context, actor *models.User, id int64, req *dto.UpdateTimeSlotRequest) (*models.TimeSlot, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Day != nil {
		fields["day"] = *req.Day
	}
	if req.StartTime != nil {
		fields["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		fields["end_time"] = *req.EndTime
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}

	slot, err := s.timeSlotRepo.UpdateTimeSlot(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("time slot not found")
		}
		return nil, fmt.Errorf("error updating time slot: %w", err)
	}
	return slot, nil
}

// DeleteTimeSlot removes a grid window
func (s *timetableServiceImpl) DeleteTimeSlot(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.timeSlotRepo.DeleteTimeSlot(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("time slot not found")
		}
		return fmt.Errorf("error deleting time slot: %w", err)
	}
	return nil
}

// CreateTimetableSlot places a course in a classroom and time window.
// Overlaps with existing assignments are stored as-is; resolving
// double-bookings is left to the planner.
func (s *timetableServiceImpl) CreateTimetableSlot(ctx context.Context, actor *models.User, req *dto.CreateTimetableSlotRequest) (*models.TimetableSlot, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	slot := &models.TimetableSlot{
		InstitutionID: institutionID,
		CourseID:      req.CourseID,
		ClassroomID:   req.ClassroomID,
		TimeSlotID:    req.TimeSlotID,
		LecturerID:    req.LecturerID,
		StudentGroups: req.StudentGroups,
		AcademicYear:  req.AcademicYear,
		Semester:      req.Semester,
	}
	if err := s.timetableRepo.CreateTimetableSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("error creating timetable slot: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionTimetableUpdated,
		"Timetable entry added", map[string]interface{}{"courseId": slot.CourseID, "classroomId": slot.ClassroomID})
	return slot, nil
}

// ListTimetableSlots retrieves all assignments of the actor's institution
func (s *timetableServiceImpl) ListTimetableSlots(ctx context.Context, actor *models.User) ([]*models.TimetableSlot, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	slots, err := s.timetableRepo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timetable slots: %w", err)
	}
	return slots, nil
}

// UpdateTimetableSlot applies a partial update to an assignment
func (s *timetableServiceImpl) UpdateTimetableSlot(ctx context.Context, actor *models.User, id int64, req *dto.UpdateTimetableSlotRequest) (*models.TimetableSlot, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.CourseID != nil {
		fields["course_id"] = *req.CourseID
	}
	if req.ClassroomID != nil {
		fields["classroom_id"] = *req.ClassroomID
	}
	if req.TimeSlotID != nil {
		fields["time_slot_id"] = *req.TimeSlotID
	}
	if req.LecturerID != nil {
		fields["lecturer_id"] = *req.LecturerID
	}
	if req.StudentGroups != nil {
		fields["student_groups"] = req.StudentGroups
	}
	if req.AcademicYear != nil {
		fields["academic_year"] = *req.AcademicYear
	}
	if req.Semester != nil {
		fields["semester"] = *req.Semester
	}

	slot, err := s.timetableRepo.UpdateTimetableSlot(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("timetable slot not found")
		}
		return nil, fmt.Errorf("error updating timetable slot: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionTimetableUpdated,
		"Timetable entry updated", map[string]interface{}{"timetableSlotId": slot.ID})
	return slot, nil
}

// DeleteTimetableSlot removes an assignment
func (s *timetableServiceImpl) DeleteTimetableSlot(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.timetableRepo.DeleteTimetableSlot(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("timetable slot not found")
		}
		return fmt.Errorf("error deleting timetable slot: %w", err)
	}

	recordActivity(ctx, s.activityRepo, institutionID, actor.ID, ActionTimetableUpdated,
		"Timetable entry removed", map[string]interface{}{"timetableSlotId": id})
	return nil
}
