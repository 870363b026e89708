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

var departmentColumns = []string{
	"id", "name", "institution_id", "faculty_id", "head_id", "staff_count", "created_at",
}

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func scanDepartment(row pgx.Row) (*models.Department, error) {
	d := &models.Department{}
	err := row.Scan(&d.ID, &d.Name, &d.InstitutionID, &d.FacultyID, &d.HeadID, &d.StaffCount, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// CreateDepartment inserts a new department row
func (r *DepartmentRepository) CreateDepartment(ctx context.Context, dept *models.Department) error {
	sql, args, err := psql.Insert("departments").
		Columns("name", "institution_id", "faculty_id", "head_id", "staff_count").
		Values(dept.Name, dept.InstitutionID, dept.FacultyID, dept.HeadID, dept.StaffCount).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&dept.ID, &dept.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create department query")
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// ListByInstitution retrieves every department of one institution.
func (r *DepartmentRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.Department, error) {
	sql, args, err := psql.Select(departmentColumns...).
		From("departments").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list departments query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// ListByFaculty retrieves the departments attached to one faculty.
func (r *DepartmentRepository) ListByFaculty(ctx context.Context, institutionID, facultyID int64) ([]*models.Department, error) {
	sql, args, err := psql.Select(departmentColumns...).
		From("departments").
		Where(squirrel.Eq{"institution_id": institutionID, "faculty_id": facultyID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments by faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying departments by faculty: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// GetDepartmentByID retrieves a department scoped to the institution.
func (r *DepartmentRepository) GetDepartmentByID(ctx context.Context, institutionID, id int64) (*models.Department, error) {
	sql, args, err := psql.Select(departmentColumns...).
		From("departments").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	d, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by ID: %w", err)
	}
	return d, nil
}

// UpdateDepartment applies a partial update and returns the updated row.
func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.Department, error) {
	if len(fields) == 0 {
		return r.GetDepartmentByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("departments").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(departmentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update department query: %w", err)
	}

	d, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error executing update department query")
		return nil, fmt.Errorf("error updating department: %w", err)
	}
	return d, nil
}

// DeleteDepartment deletes a department scoped to the institution.
func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("departments").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error executing delete department query")
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
