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

var timeSlotColumns = []string{
	"id", "institution_id", "day", "start_time", "end_time", "duration", "created_at",
}

// TimeSlotRepository handles time slot database operations
type TimeSlotRepository struct {
	db *pgxpool.Pool
}

// NewTimeSlotRepository creates a new TimeSlotRepository
func NewTimeSlotRepository(db *pgxpool.Pool) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func scanTimeSlot(row pgx.Row) (*models.TimeSlot, error) {
	t := &models.TimeSlot{}
	err := row.Scan(&t.ID, &t.InstitutionID, &t.Day, &t.StartTime, &t.EndTime, &t.Duration, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTimeSlot inserts a new time slot row
func (r *TimeSlotRepository) CreateTimeSlot(ctx context.Context, slot *models.TimeSlot) error {
	sql, args, err := psql.Insert("time_slots").
		Columns("institution_id", "day", "start_time", "end_time", "duration").
		Values(slot.InstitutionID, slot.Day, slot.StartTime, slot.EndTime, slot.Duration).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create time slot query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create time slot query")
		return fmt.Errorf("error creating time slot: %w", err)
	}
	return nil
}

// ListByInstitution retrieves every time slot of one institution.
func (r *TimeSlotRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.TimeSlot, error) {
	sql, args, err := psql.Select(timeSlotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list time slots query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list time slots query")
		return nil, fmt.Errorf("error querying time slots: %w", err)
	}
	defer rows.Close()

	slots := []*models.TimeSlot{}
	for rows.Next() {
		t, err := scanTimeSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning time slot row: %w", err)
		}
		slots = append(slots, t)
	}
	return slots, rows.Err()
}

// GetTimeSlotByID retrieves a time slot scoped to the institution.
func (r *TimeSlotRepository) GetTimeSlotByID(ctx context.Context, institutionID, id int64) (*models.TimeSlot, error) {
	sql, args, err := psql.Select(timeSlotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get time slot query: %w", err)
	}

	t, err := scanTimeSlot(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("timeSlotID", id).Msg("Error scanning time slot row")
		return nil, fmt.Errorf("error getting time slot by ID: %w", err)
	}
	return t, nil
}

// UpdateTimeSlot applies a partial update and returns the updated row.
func (r *TimeSlotRepository) UpdateTimeSlot(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.TimeSlot, error) {
	if len(fields) == 0 {
		return r.GetTimeSlotByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("time_slots").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(timeSlotColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update time slot query: %w", err)
	}

	t, err := scanTimeSlot(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("timeSlotID", id).Msg("Error executing update time slot query")
		return nil, fmt.Errorf("error updating time slot: %w", err)
	}
	return t, nil
}

// DeleteTimeSlot deletes a time slot scoped to the institution.
func (r *TimeSlotRepository) DeleteTimeSlot(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("time_slots").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete time slot query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("timeSlotID", id).Msg("Error executing delete time slot query")
		return fmt.Errorf("error deleting time slot: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
