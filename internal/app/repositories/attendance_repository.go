package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/pkg/logger"
)

var attendanceColumns = []string{
	"id", "student_id", "institution_id", "date", "status",
	"check_in_time", "check_out_time", "biometric_id", "device_id", "created_at",
}

// AttendanceRepository handles attendance record database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func scanAttendanceRecord(row pgx.Row) (*models.AttendanceRecord, error) {
	a := &models.AttendanceRecord{}
	err := row.Scan(
		&a.ID, &a.StudentID, &a.InstitutionID, &a.Date, &a.Status,
		&a.CheckInTime, &a.CheckOutTime, &a.BiometricID, &a.DeviceID, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAttendanceRecord inserts a new attendance record
func (r *AttendanceRepository) CreateAttendanceRecord(ctx context.Context, rec *models.AttendanceRecord) error {
	sql, args, err := psql.Insert("attendance_records").
		Columns("student_id", "institution_id", "date", "status",
			"check_in_time", "check_out_time", "biometric_id", "device_id").
		Values(rec.StudentID, rec.InstitutionID, rec.Date, rec.Status,
			rec.CheckInTime, rec.CheckOutTime, rec.BiometricID, rec.DeviceID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create attendance record query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create attendance record query")
		return fmt.Errorf("error creating attendance record: %w", err)
	}
	return nil
}

// ListByInstitution retrieves attendance records of one institution,
// optionally filtered by student and/or calendar day.
func (r *AttendanceRepository) ListByInstitution(ctx context.Context, institutionID int64, studentID *int64, date *time.Time) ([]*models.AttendanceRecord, error) {
	query := psql.Select(attendanceColumns...).
		From("attendance_records").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("date DESC", "id DESC")
	if studentID != nil {
		query = query.Where(squirrel.Eq{"student_id": *studentID})
	}
	if date != nil {
		query = query.Where(squirrel.Eq{"date": *date})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attendance records query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list attendance records query")
		return nil, fmt.Errorf("error querying attendance records: %w", err)
	}
	defer rows.Close()

	records := []*models.AttendanceRecord{}
	for rows.Next() {
		a, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance record row: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetAttendanceRecordByID retrieves an attendance record scoped to the institution.
func (r *AttendanceRepository) GetAttendanceRecordByID(ctx context.Context, institutionID, id int64) (*models.AttendanceRecord, error) {
	sql, args, err := psql.Select(attendanceColumns...).
		From("attendance_records").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get attendance record query: %w", err)
	}

	a, err := scanAttendanceRecord(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("attendanceRecordID", id).Msg("Error scanning attendance record row")
		return nil, fmt.Errorf("error getting attendance record by ID: %w", err)
	}
	return a, nil
}

// UpdateAttendanceRecord applies a partial update and returns the updated row.
// Status stays mutable so a late check-in can be excused afterwards.
func (r *AttendanceRepository) UpdateAttendanceRecord(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.AttendanceRecord, error) {
	if len(fields) == 0 {
		return r.GetAttendanceRecordByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("attendance_records").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(attendanceColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update attendance record query: %w", err)
	}

	a, err := scanAttendanceRecord(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("attendanceRecordID", id).Msg("Error executing update attendance record query")
		return nil, fmt.Errorf("error updating attendance record: %w", err)
	}
	return a, nil
}
