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

// ErrStudentIDAlreadyExists is returned when the enrollment number is taken.
var ErrStudentIDAlreadyExists = errors.New("student ID already in use")

var studentColumns = []string{
	"id", "user_id", "institution_id", "student_id", "program", "year_of_study",
	"academic_standing", "gpa", "credits", "created_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.InstitutionID, &s.StudentID, &s.Program,
		&s.YearOfStudy, &s.AcademicStanding, &s.GPA, &s.Credits, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts a new student row. The student_id column carries a
// unique constraint; a duplicate surfaces as ErrStudentIDAlreadyExists.
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := psql.Insert("students").
		Columns("user_id", "institution_id", "student_id", "program", "year_of_study", "academic_standing", "gpa", "credits").
		Values(student.UserID, student.InstitutionID, student.StudentID, student.Program, student.YearOfStudy, student.AcademicStanding, student.GPA, student.Credits).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrStudentIDAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// ListByInstitution retrieves every student of one institution. The filter
// is the tenant isolation boundary; there is no unscoped variant.
func (r *StudentRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.Student, error) {
	sql, args, err := psql.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID retrieves a student scoped to the institution.
func (r *StudentRepository) GetStudentByID(ctx context.Context, institutionID, id int64) (*models.Student, error) {
	sql, args, err := psql.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return s, nil
}

// UpdateStudent applies a partial update and returns the updated row.
func (r *StudentRepository) UpdateStudent(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.Student, error) {
	if len(fields) == 0 {
		return r.GetStudentByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("students").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return s, nil
}

// DeleteStudent deletes a student scoped to the institution.
func (r *StudentRepository) DeleteStudent(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("students").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
