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

var facultyColumns = []string{
	"id", "name", "institution_id", "dean_id", "budget_allocation", "created_at",
}

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{db: db}
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	f := &models.Faculty{}
	err := row.Scan(&f.ID, &f.Name, &f.InstitutionID, &f.DeanID, &f.BudgetAllocation, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFaculty inserts a new faculty row
func (r *FacultyRepository) CreateFaculty(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := psql.Insert("faculties").
		Columns("name", "institution_id", "dean_id", "budget_allocation").
		Values(faculty.Name, faculty.InstitutionID, faculty.DeanID, faculty.BudgetAllocation).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return fmt.Errorf("error creating faculty: %w", err)
	}
	return nil
}

// ListByInstitution retrieves every faculty of one institution.
func (r *FacultyRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.Faculty, error) {
	sql, args, err := psql.Select(facultyColumns...).
		From("faculties").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculties query")
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

// GetFacultyByID retrieves a faculty scoped to the institution.
func (r *FacultyRepository) GetFacultyByID(ctx context.Context, institutionID, id int64) (*models.Faculty, error) {
	sql, args, err := psql.Select(facultyColumns...).
		From("faculties").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	f, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by ID: %w", err)
	}
	return f, nil
}

// UpdateFaculty applies a partial update and returns the updated row.
func (r *FacultyRepository) UpdateFaculty(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.Faculty, error) {
	if len(fields) == 0 {
		return r.GetFacultyByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("faculties").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(facultyColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update faculty query: %w", err)
	}

	f, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing update faculty query")
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	return f, nil
}

// DeleteFaculty deletes a faculty scoped to the institution.
func (r *FacultyRepository) DeleteFaculty(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("faculties").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
