package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

// fakeTimetableService stores slots in memory and, like the real service,
// performs no conflict detection.
type fakeTimetableService struct {
	slots  []*models.TimetableSlot
	nextID int64
}

func (f *fakeTimetableService) CreateTimeSlot(_ context.Context, _ *models.User, _ *dto.CreateTimeSlotRequest) (*models.TimeSlot, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeTimetableService) ListTimeSlots(_ context.Context, _ *models.User) ([]*models.TimeSlot, error) {
	return nil, nil
}

func (f *fakeTimetableService) UpdateTimeSlot(_ context.Context, _ *models.User, _ int64, _ *dto.UpdateTimeSlotRequest) (*models.TimeSlot, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeTimetableService) DeleteTimeSlot(_ context.Context, _ *models.User, _ int64) error {
	return apperrors.ErrNotFound
}

func (f *fakeTimetableService) CreateTimetableSlot(_ context.Context, actor *models.User, req *dto.CreateTimetableSlotRequest) (*models.TimetableSlot, error) {
	f.nextID++
	slot := &models.TimetableSlot{
		ID:            f.nextID,
		InstitutionID: *actor.InstitutionID,
		CourseID:      req.CourseID,
		ClassroomID:   req.ClassroomID,
		TimeSlotID:    req.TimeSlotID,
		LecturerID:    req.LecturerID,
		AcademicYear:  req.AcademicYear,
		Semester:      req.Semester,
	}
	f.slots = append(f.slots, slot)
	return slot, nil
}

func (f *fakeTimetableService) ListTimetableSlots(_ context.Context, _ *models.User) ([]*models.TimetableSlot, error) {
	return f.slots, nil
}

func (f *fakeTimetableService) UpdateTimetableSlot(_ context.Context, _ *models.User, _ int64, _ *dto.UpdateTimetableSlotRequest) (*models.TimetableSlot, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeTimetableService) DeleteTimetableSlot(_ context.Context, _ *models.User, _ int64) error {
	return apperrors.ErrNotFound
}

func TestTimetableController_DoubleBookingAccepted(t *testing.T) {
	svc := &fakeTimetableService{}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	controller := NewTimetableController(svc)
	router.POST("/api/timetable", controller.CreateTimetableSlot)
	router.GET("/api/institutions/:id/timetable", controller.ListTimetableSlots)

	booking := dto.CreateTimetableSlotRequest{
		InstitutionID: 7,
		CourseID:      1,
		ClassroomID:   3,
		TimeSlotID:    5,
		LecturerID:    2,
		AcademicYear:  "2026-2027",
		Semester:      "fall",
	}

	// Same classroom and time slot twice; both must be stored.
	recorder := postJSON(t, router, "/api/timetable", booking)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	booking.CourseID = 9
	recorder = postJSON(t, router, "/api/timetable", booking)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = getWithUser(t, router, "/api/institutions/7/timetable")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, svc.slots, 2)
	assert.Equal(t, svc.slots[0].ClassroomID, svc.slots[1].ClassroomID)
	assert.Equal(t, svc.slots[0].TimeSlotID, svc.slots[1].TimeSlotID)
}
