package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/repositories"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

// attendanceDateLayout is the wire format for attendance dates: a bare
// calendar day without time or zone.
const attendanceDateLayout = "2006-01-02"

// parseAttendanceDate parses a wire-format attendance date.
func parseAttendanceDate(value string) (time.Time, error) {
	return time.Parse(attendanceDateLayout, value)
}

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	CreateAttendanceRecord(ctx context.Context, actor *models.User, req *dto.CreateAttendanceRequest) (*models.AttendanceRecord, error)
	ListAttendanceRecords(ctx context.Context, actor *models.User, studentID *int64, date *time.Time) ([]*models.AttendanceRecord, error)
	UpdateAttendanceRecord(ctx context.Context, actor *models.User, id int64, req *dto.UpdateAttendanceRequest) (*models.AttendanceRecord, error)
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// CreateAttendanceRecord records one check-in event
func (s *attendanceServiceImpl) CreateAttendanceRecord(ctx context.Context, actor *models.User, req *dto.CreateAttendanceRequest) (*models.AttendanceRecord, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	date, err := parseAttendanceDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be formatted as YYYY-MM-DD").WithField("date")
	}

	rec := &models.AttendanceRecord{
		StudentID:     req.StudentID,
		InstitutionID: institutionID,
		Date:          date,
		Status:        req.Status,
		CheckInTime:   req.CheckInTime,
		CheckOutTime:  req.CheckOutTime,
		BiometricID:   req.BiometricID,
		DeviceID:      req.DeviceID,
	}
	if err := s.attendanceRepo.CreateAttendanceRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("error creating attendance record: %w", err)
	}
	return rec, nil
}

// ListAttendanceRecords retrieves records of the actor's institution,
// optionally narrowed to one student and/or one calendar day.
func (s *attendanceServiceImpl) ListAttendanceRecords(ctx context.Context, actor *models.User, studentID *int64, date *time.Time) ([]*models.AttendanceRecord, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByInstitution(ctx, institutionID, studentID, date)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}
	return records, nil
}

// UpdateAttendanceRecord changes the status or check-in/out times of a
// record after the fact.
func (s *attendanceServiceImpl) UpdateAttendanceRecord(ctx context.Context, actor *models.User, id int64, req *dto.UpdateAttendanceRequest) (*models.AttendanceRecord, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.CheckInTime != nil {
		fields["check_in_time"] = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		fields["check_out_time"] = *req.CheckOutTime
	}

	rec, err := s.attendanceRepo.UpdateAttendanceRecord(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("attendance record not found")
		}
		return nil, fmt.Errorf("error updating attendance record: %w", err)
	}
	return rec, nil
}
