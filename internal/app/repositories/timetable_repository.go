package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/pkg/logger"
)

var timetableSlotColumns = []string{
	"id", "institution_id", "course_id", "classroom_id", "time_slot_id", "lecturer_id",
	"student_groups", "efficiency_score", "weather_factor", "academic_year", "semester", "created_at",
}

// TimetableRepository handles timetable slot database operations
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{db: db}
}

func scanTimetableSlot(row pgx.Row) (*models.TimetableSlot, error) {
	s := &models.TimetableSlot{}
	err := row.Scan(
		&s.ID, &s.InstitutionID, &s.CourseID, &s.ClassroomID, &s.TimeSlotID, &s.LecturerID,
		&s.StudentGroups, &s.EfficiencyScore, &s.WeatherFactor, &s.AcademicYear, &s.Semester, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateTimetableSlot inserts a new timetable slot. Overlapping assignments
// are not rejected here; callers get whatever they ask for.
func (r *TimetableRepository) CreateTimetableSlot(ctx context.Context, slot *models.TimetableSlot) error {
	sql, args, err := psql.Insert("timetable_slots").
		Columns("institution_id", "course_id", "classroom_id", "time_slot_id", "lecturer_id",
			"student_groups", "efficiency_score", "weather_factor", "academic_year", "semester").
		Values(slot.InstitutionID, slot.CourseID, slot.ClassroomID, slot.TimeSlotID, slot.LecturerID,
			slot.StudentGroups, slot.EfficiencyScore, slot.WeatherFactor, slot.AcademicYear, slot.Semester).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create timetable slot query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create timetable slot query")
		return fmt.Errorf("error creating timetable slot: %w", err)
	}
	return nil
}

// ListByInstitution retrieves all timetable slots of one institution.
func (r *TimetableRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.TimetableSlot, error) {
	sql, args, err := psql.Select(timetableSlotColumns...).
		From("timetable_slots").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list timetable slots query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list timetable slots query")
		return nil, fmt.Errorf("error querying timetable slots: %w", err)
	}
	defer rows.Close()

	slots := []*models.TimetableSlot{}
	for rows.Next() {
		s, err := scanTimetableSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning timetable slot row: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// GetTimetableSlotByID retrieves a timetable slot scoped to the institution.
func (r *TimetableRepository) GetTimetableSlotByID(ctx context.Context, institutionID, id int64) (*models.TimetableSlot, error) {
	sql, args, err := psql.Select(timetableSlotColumns...).
		From("timetable_slots").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get timetable slot query: %w", err)
	}

	s, err := scanTimetableSlot(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("timetableSlotID", id).Msg("Error scanning timetable slot row")
		return nil, fmt.Errorf("error getting timetable slot by ID: %w", err)
	}
	return s, nil
}

// UpdateTimetableSlot applies a partial update and returns the updated row.
func (r *TimetableRepository) UpdateTimetableSlot(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.TimetableSlot, error) {
	if len(fields) == 0 {
		return r.GetTimetableSlotByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("timetable_slots").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(timetableSlotColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update timetable slot query: %w", err)
	}

	s, err := scanTimetableSlot(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("timetableSlotID", id).Msg("Error executing update timetable slot query")
		return nil, fmt.Errorf("error updating timetable slot: %w", err)
	}
	return s, nil
}

// DeleteTimetableSlot deletes a timetable slot scoped to the institution.
func (r *TimetableRepository) DeleteTimetableSlot(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("timetable_slots").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete timetable slot query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("timetableSlotID", id).Msg("Error executing delete timetable slot query")
		return fmt.Errorf("error deleting timetable slot: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByInstitution returns the number of timetable slots for an institution.
func (r *TimetableRepository) CountByInstitution(ctx context.Context, institutionID int64) (int64, error) {
	sql, args, err := psql.Select("COUNT(*)").
		From("timetable_slots").
		Where(squirrel.Eq{"institution_id": institutionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count timetable slots query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting timetable slots: %w", err)
	}
	return count, nil
}
