package repositories

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// psql builds statements with postgres placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// joinColumns renders a column list for RETURNING clauses.
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// duplicateConstraint returns the violated constraint name, if any.
func duplicateConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	InstitutionRepository *InstitutionRepository
	FacultyRepository     *FacultyRepository
	DepartmentRepository  *DepartmentRepository
	StaffRepository       *StaffRepository
	StudentRepository     *StudentRepository
	CourseRepository      *CourseRepository
	ClassroomRepository   *ClassroomRepository
	TimeSlotRepository    *TimeSlotRepository
	TimetableRepository   *TimetableRepository
	AttendanceRepository  *AttendanceRepository
	IntegrationRepository *IntegrationRepository
	ActivityRepository    *ActivityRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		InstitutionRepository: NewInstitutionRepository(db),
		FacultyRepository:     NewFacultyRepository(db),
		DepartmentRepository:  NewDepartmentRepository(db),
		StaffRepository:       NewStaffRepository(db),
		StudentRepository:     NewStudentRepository(db),
		CourseRepository:      NewCourseRepository(db),
		ClassroomRepository:   NewClassroomRepository(db),
		TimeSlotRepository:    NewTimeSlotRepository(db),
		TimetableRepository:   NewTimetableRepository(db),
		AttendanceRepository:  NewAttendanceRepository(db),
		IntegrationRepository: NewIntegrationRepository(db),
		ActivityRepository:    NewActivityRepository(db),
	}
}
