package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/pkg/logger"
)

var activityColumns = []string{
	"id", "institution_id", "user_id", "action", "description", "metadata", "created_at",
}

// ActivityRepository handles the append-only activity log. Rows are only
// ever inserted and read, never updated or deleted.
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func scanActivityLog(row pgx.Row) (*models.ActivityLog, error) {
	a := &models.ActivityLog{}
	err := row.Scan(&a.ID, &a.InstitutionID, &a.UserID, &a.Action, &a.Description, &a.Metadata, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// LogActivity appends one activity row.
func (r *ActivityRepository) LogActivity(ctx context.Context, entry *models.ActivityLog) error {
	sql, args, err := buildLogActivityQuery(entry)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("action", entry.Action).Msg("Error executing log activity query")
		return fmt.Errorf("error logging activity: %w", err)
	}
	return nil
}

// LogActivityTx appends one activity row inside an existing transaction.
// Used by flows that must log atomically with the change they record.
func (r *ActivityRepository) LogActivityTx(ctx context.Context, tx pgx.Tx, entry *models.ActivityLog) error {
	sql, args, err := buildLogActivityQuery(entry)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("action", entry.Action).Msg("Error executing log activity query in transaction")
		return fmt.Errorf("error logging activity: %w", err)
	}
	return nil
}

func buildLogActivityQuery(entry *models.ActivityLog) (string, []interface{}, error) {
	sql, args, err := psql.Insert("activity_logs").
		Columns("institution_id", "user_id", "action", "description", "metadata").
		Values(entry.InstitutionID, entry.UserID, entry.Action, entry.Description, entry.Metadata).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build log activity query: %w", err)
	}
	return sql, args, nil
}

// ListRecent retrieves the newest activity rows of one institution,
// most recent first.
func (r *ActivityRepository) ListRecent(ctx context.Context, institutionID int64, limit uint64) ([]*models.ActivityLog, error) {
	sql, args, err := psql.Select(activityColumns...).
		From("activity_logs").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list activities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list activities query")
		return nil, fmt.Errorf("error querying activities: %w", err)
	}
	defer rows.Close()

	entries := []*models.ActivityLog{}
	for rows.Next() {
		a, err := scanActivityLog(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}
