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

var classroomColumns = []string{
	"id", "room_number", "institution_id", "building", "capacity",
	"equipment", "room_type", "created_at",
}

// ClassroomRepository handles classroom database operations
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new ClassroomRepository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

func scanClassroom(row pgx.Row) (*models.Classroom, error) {
	c := &models.Classroom{}
	err := row.Scan(
		&c.ID, &c.RoomNumber, &c.InstitutionID, &c.Building, &c.Capacity,
		&c.Equipment, &c.RoomType, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateClassroom inserts a new classroom row
func (r *ClassroomRepository) CreateClassroom(ctx context.Context, room *models.Classroom) error {
	sql, args, err := psql.Insert("classrooms").
		Columns("room_number", "institution_id", "building", "capacity", "equipment", "room_type").
		Values(room.RoomNumber, room.InstitutionID, room.Building, room.Capacity, room.Equipment, room.RoomType).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create classroom query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create classroom query")
		return fmt.Errorf("error creating classroom: %w", err)
	}
	return nil
}

// ListByInstitution retrieves every classroom of one institution.
func (r *ClassroomRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.Classroom, error) {
	sql, args, err := psql.Select(classroomColumns...).
		From("classrooms").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("room_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list classrooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list classrooms query")
		return nil, fmt.Errorf("error querying classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := []*models.Classroom{}
	for rows.Next() {
		c, err := scanClassroom(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning classroom row: %w", err)
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}

// GetClassroomByID retrieves a classroom scoped to the institution.
func (r *ClassroomRepository) GetClassroomByID(ctx context.Context, institutionID, id int64) (*models.Classroom, error) {
	sql, args, err := psql.Select(classroomColumns...).
		From("classrooms").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get classroom query: %w", err)
	}

	c, err := scanClassroom(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("classroomID", id).Msg("Error scanning classroom row")
		return nil, fmt.Errorf("error getting classroom by ID: %w", err)
	}
	return c, nil
}

// UpdateClassroom applies a partial update and returns the updated row.
func (r *ClassroomRepository) UpdateClassroom(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.Classroom, error) {
	if len(fields) == 0 {
		return r.GetClassroomByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("classrooms").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(classroomColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update classroom query: %w", err)
	}

	c, err := scanClassroom(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("classroomID", id).Msg("Error executing update classroom query")
		return nil, fmt.Errorf("error updating classroom: %w", err)
	}
	return c, nil
}

// DeleteClassroom deletes a classroom scoped to the institution.
func (r *ClassroomRepository) DeleteClassroom(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("classrooms").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete classroom query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classroomID", id).Msg("Error executing delete classroom query")
		return fmt.Errorf("error deleting classroom: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
