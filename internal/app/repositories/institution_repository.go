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

// ErrInstitutionNotFound is returned when an institution row is absent.
var ErrInstitutionNotFound = ErrNotFound

var institutionColumns = []string{
	"id", "name", "type", "education_system", "location", "size",
	"academic_calendar", "structure", "is_configured", "created_at", "updated_at",
}

// InstitutionRepository handles institution database operations
type InstitutionRepository struct {
	db *pgxpool.Pool
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(db *pgxpool.Pool) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

func scanInstitution(row pgx.Row) (*models.Institution, error) {
	inst := &models.Institution{}
	err := row.Scan(
		&inst.ID, &inst.Name, &inst.Type, &inst.EducationSystem,
		&inst.Location, &inst.Size, &inst.AcademicCalendar, &inst.Structure,
		&inst.IsConfigured, &inst.CreatedAt, &inst.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// CreateInstitution inserts a new institution row inside the given
// transaction. New institutions always start unconfigured.
func (r *InstitutionRepository) CreateInstitution(ctx context.Context, tx pgx.Tx, inst *models.Institution) error {
	sql, args, err := psql.Insert("institutions").
		Columns("name", "type", "education_system", "location", "size", "academic_calendar", "structure", "is_configured").
		Values(inst.Name, inst.Type, inst.EducationSystem, inst.Location, inst.Size, inst.AcademicCalendar, inst.Structure, false).
		Suffix("RETURNING id, is_configured, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create institution query: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&inst.ID, &inst.IsConfigured, &inst.CreatedAt, &inst.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create institution query")
		return fmt.Errorf("error creating institution: %w", err)
	}
	return nil
}

// GetInstitutionByID retrieves an institution by ID
func (r *InstitutionRepository) GetInstitutionByID(ctx context.Context, id int64) (*models.Institution, error) {
	sql, args, err := psql.Select(institutionColumns...).
		From("institutions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get institution query: %w", err)
	}

	inst, err := scanInstitution(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInstitutionNotFound
		}
		logger.Error().Err(err).Int64("institutionID", id).Msg("Error scanning institution row")
		return nil, fmt.Errorf("error getting institution by ID: %w", err)
	}
	return inst, nil
}

// UpdateInstitution applies a partial update and returns the updated row.
func (r *InstitutionRepository) UpdateInstitution(ctx context.Context, id int64, fields map[string]interface{}) (*models.Institution, error) {
	if len(fields) == 0 {
		return r.GetInstitutionByID(ctx, id)
	}

	sql, args, err := psql.Update("institutions").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(institutionColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update institution query: %w", err)
	}

	inst, err := scanInstitution(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInstitutionNotFound
		}
		logger.Error().Err(err).Int64("institutionID", id).Msg("Error executing update institution query")
		return nil, fmt.Errorf("error updating institution: %w", err)
	}
	return inst, nil
}

// MarkConfigured flips is_configured to true. Calling it on an already
// configured institution is a no-op, which keeps the configure step
// idempotent.
func (r *InstitutionRepository) MarkConfigured(ctx context.Context, id int64) error {
	sql, args, err := psql.Update("institutions").
		Set("is_configured", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark configured query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("institutionID", id).Msg("Error executing mark configured query")
		return fmt.Errorf("error marking institution configured: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrInstitutionNotFound
	}
	return nil
}

// EntityCounts holds the raw COUNT results behind the stats endpoint.
type EntityCounts struct {
	Students       int
	Courses        int
	Staff          int
	Classrooms     int
	TimetableSlots int
}

// CountEntities runs one COUNT per entity, all scoped to the institution.
func (r *InstitutionRepository) CountEntities(ctx context.Context, institutionID int64) (*EntityCounts, error) {
	counts := &EntityCounts{}
	tables := []struct {
		name string
		dest *int
	}{
		{"students", &counts.Students},
		{"courses", &counts.Courses},
		{"academic_staff", &counts.Staff},
		{"classrooms", &counts.Classrooms},
		{"timetable_slots", &counts.TimetableSlots},
	}

	for _, t := range tables {
		sql, args, err := psql.Select("COUNT(*)").
			From(t.name).
			Where(squirrel.Eq{"institution_id": institutionID}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build count query for %s: %w", t.name, err)
		}
		if err := r.db.QueryRow(ctx, sql, args...).Scan(t.dest); err != nil {
			logger.Error().Err(err).Str("table", t.name).Msg("Error counting rows")
			return nil, fmt.Errorf("error counting %s: %w", t.name, err)
		}
	}
	return counts, nil
}
