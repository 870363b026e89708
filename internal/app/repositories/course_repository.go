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

var courseColumns = []string{
	"id", "course_code", "name", "institution_id", "department_id", "credits",
	"hours_per_week", "difficulty_weight", "prerequisites", "lecturer_id",
	"assessment_structure", "created_at",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(
		&c.ID, &c.CourseCode, &c.Name, &c.InstitutionID, &c.DepartmentID,
		&c.Credits, &c.HoursPerWeek, &c.DifficultyWeight, &c.Prerequisites,
		&c.LecturerID, &c.AssessmentStructure, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateCourse inserts a new course row
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := psql.Insert("courses").
		Columns("course_code", "name", "institution_id", "department_id", "credits",
			"hours_per_week", "difficulty_weight", "prerequisites", "lecturer_id", "assessment_structure").
		Values(course.CourseCode, course.Name, course.InstitutionID, course.DepartmentID, course.Credits,
			course.HoursPerWeek, course.DifficultyWeight, course.Prerequisites, course.LecturerID, course.AssessmentStructure).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// ListByInstitution retrieves every course of one institution.
func (r *CourseRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.Course, error) {
	sql, args, err := psql.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("course_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// ListByDepartment retrieves the courses of one department.
func (r *CourseRepository) ListByDepartment(ctx context.Context, institutionID, departmentID int64) ([]*models.Course, error) {
	sql, args, err := psql.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"institution_id": institutionID, "department_id": departmentID}).
		OrderBy("course_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses by department query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses by department: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetCourseByID retrieves a course scoped to the institution.
func (r *CourseRepository) GetCourseByID(ctx context.Context, institutionID, id int64) (*models.Course, error) {
	sql, args, err := psql.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return c, nil
}

// UpdateCourse applies a partial update and returns the updated row.
func (r *CourseRepository) UpdateCourse(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.Course, error) {
	if len(fields) == 0 {
		return r.GetCourseByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("courses").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(courseColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing update course query")
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return c, nil
}

// DeleteCourse deletes a course scoped to the institution.
func (r *CourseRepository) DeleteCourse(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("courses").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
