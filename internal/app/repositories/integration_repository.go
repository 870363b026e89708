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

var integrationColumns = []string{
	"id", "institution_id", "name", "type", "endpoint", "api_key",
	"configuration", "is_active", "last_sync", "created_at",
}

// IntegrationRepository handles API integration database operations
type IntegrationRepository struct {
	db *pgxpool.Pool
}

// NewIntegrationRepository creates a new IntegrationRepository
func NewIntegrationRepository(db *pgxpool.Pool) *IntegrationRepository {
	return &IntegrationRepository{db: db}
}

func scanIntegration(row pgx.Row) (*models.ApiIntegration, error) {
	i := &models.ApiIntegration{}
	err := row.Scan(
		&i.ID, &i.InstitutionID, &i.Name, &i.Type, &i.Endpoint, &i.APIKey,
		&i.Configuration, &i.IsActive, &i.LastSync, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// CreateIntegration inserts a new API integration
func (r *IntegrationRepository) CreateIntegration(ctx context.Context, integ *models.ApiIntegration) error {
	sql, args, err := psql.Insert("api_integrations").
		Columns("institution_id", "name", "type", "endpoint", "api_key", "configuration", "is_active", "last_sync").
		Values(integ.InstitutionID, integ.Name, integ.Type, integ.Endpoint, integ.APIKey,
			integ.Configuration, integ.IsActive, integ.LastSync).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create integration query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&integ.ID, &integ.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create integration query")
		return fmt.Errorf("error creating integration: %w", err)
	}
	return nil
}

// ListByInstitution retrieves all API integrations of one institution.
func (r *IntegrationRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]*models.ApiIntegration, error) {
	sql, args, err := psql.Select(integrationColumns...).
		From("api_integrations").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list integrations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list integrations query")
		return nil, fmt.Errorf("error querying integrations: %w", err)
	}
	defer rows.Close()

	integrations := []*models.ApiIntegration{}
	for rows.Next() {
		i, err := scanIntegration(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning integration row: %w", err)
		}
		integrations = append(integrations, i)
	}
	return integrations, rows.Err()
}

// GetIntegrationByID retrieves an API integration scoped to the institution.
func (r *IntegrationRepository) GetIntegrationByID(ctx context.Context, institutionID, id int64) (*models.ApiIntegration, error) {
	sql, args, err := psql.Select(integrationColumns...).
		From("api_integrations").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get integration query: %w", err)
	}

	i, err := scanIntegration(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("integrationID", id).Msg("Error scanning integration row")
		return nil, fmt.Errorf("error getting integration by ID: %w", err)
	}
	return i, nil
}

// UpdateIntegration applies a partial update and returns the updated row.
func (r *IntegrationRepository) UpdateIntegration(ctx context.Context, institutionID, id int64, fields map[string]interface{}) (*models.ApiIntegration, error) {
	if len(fields) == 0 {
		return r.GetIntegrationByID(ctx, institutionID, id)
	}

	sql, args, err := psql.Update("api_integrations").
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Suffix("RETURNING " + joinColumns(integrationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update integration query: %w", err)
	}

	i, err := scanIntegration(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("integrationID", id).Msg("Error executing update integration query")
		return nil, fmt.Errorf("error updating integration: %w", err)
	}
	return i, nil
}

// DeleteIntegration deletes an API integration scoped to the institution.
func (r *IntegrationRepository) DeleteIntegration(ctx context.Context, institutionID, id int64) error {
	sql, args, err := psql.Delete("api_integrations").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete integration query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("integrationID", id).Msg("Error executing delete integration query")
		return fmt.Errorf("error deleting integration: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
