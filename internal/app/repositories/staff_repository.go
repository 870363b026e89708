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

var staffColumns = []string{
	"id", "user_id", "institution_id", "department_id", "rank",
	"specializations", "research_areas", "teaching_load", "created_at",
}

// StaffRepository handles academic staff database operations
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

func scanStaff(row pgx.Row) (*models.AcademicStaff, error) {
	s := &models.AcademicStaff{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.InstitutionID, &s.DepartmentID, &s.Rank,
		&s.Specializations, &s.ResearchAreas, &s.TeachingLoad, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStaff inserts a new academic staff row
func (r *StaffRepository) CreateStaff(ctx context.Context, staff *models.AcademicStaff) error {
	sql, args, err := psql.Insert("academic_staff").
		Columns("user_id", "institution_id", "department_id", "rank", "specializations", "research_areas", "teaching_load").
		Values(staff.UserID, staff.InstitutionID, staff.DepartmentID, staff.Rank, staff.Specializations, staff.ResearchAreas, staff.TeachingLoad).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create staff query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&staff.ID, &staff.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create staff query")
		return fmt.Errorf("error creating staff member: %w", err)
	}
	return nil
}

// ListByInstitution retrieves every staff member of one institution.
func (r *StaffRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.AcademicStaff, error) {
	sql, args, err := psql.Select(staffColumns...).
		From("academic_staff").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list staff query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list staff query")
		return nil, fmt.Errorf("error querying staff: %w", err)
	}
	defer rows.Close()

	staff := []*models.AcademicStaff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning staff row: %w", err)
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// GetStaffByID retrieves a staff member scoped to the institution.
func (r *StaffRepository) GetStaffByID(ctx context.Context, institutionID, id int64) (*models.AcademicStaff, error) {
	sql, args, err := psql.Select(staffColumns...).
		From("academic_staff").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get staff query: %w", err)
	}

	s, err := scanStaff(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("staffID", id).Msg("Error scanning staff row")
		return nil, fmt.Errorf("error getting staff by ID: %w", err)
	}
	return s, nil
}

// UpdateStaff applies a partial update and returns the updated row.
func (r *StaffRepository) UpdateStaff(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.AcademicStaff, error) {
	if len(fields) == 0 {
		return r.GetStaffByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("academic_staff").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(staffColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update staff query: %w", err)
	}

	s, err := scanStaff(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("staffID", id).Msg("Error executing update staff query")
		return nil, fmt.Errorf("error updating staff member: %w", err)
	}
	return s, nil
}

// DeleteStaff deletes a staff member scoped to the institution.
func (r *StaffRepository) DeleteStaff(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("academic_staff").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", id).Msg("Error executing delete staff query")
		return fmt.Errorf("error deleting staff member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
