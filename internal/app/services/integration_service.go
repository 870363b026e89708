package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/repositories"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

// IntegrationService defines the interface for API integration operations
type IntegrationService interface {
	CreateIntegration(ctx context.Context, actor *models.User, req *dto.CreateIntegrationRequest) (*models.ApiIntegration, error)
	ListIntegrations(ctx context.Context, actor *models.User) ([]*models.ApiIntegration, error)
	UpdateIntegration(ctx context.Context, actor *models.User, id int64, req *dto.UpdateIntegrationRequest) (*models.ApiIntegration, error)
	DeleteIntegration(ctx context.Context, actor *models.User, id int64) error
}

// integrationServiceImpl implements the IntegrationService interface
type integrationServiceImpl struct {
	integrationRepo *repositories.IntegrationRepository
}

// NewIntegrationService creates a new integration service instance
func NewIntegrationService(integrationRepo *repositories.IntegrationRepository) IntegrationService {
	return &integrationServiceImpl{integrationRepo: integrationRepo}
}

// CreateIntegration registers an external API connection. New integrations
// default to active unless the payload says otherwise.
func (s *integrationServiceImpl) CreateIntegration(ctx context.Context, actor *models.User, req *dto.CreateIntegrationRequest) (*models.ApiIntegration, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if err := requireSameInstitution(institutionID, req.InstitutionID); err != nil {
		return nil, err
	}

	integ := &models.ApiIntegration{
		InstitutionID: institutionID,
		Name:          req.Name,
		Type:          req.Type,
		Endpoint:      req.Endpoint,
		APIKey:        req.APIKey,
		Configuration: req.Configuration,
		IsActive:      true,
	}
	if req.IsActive != nil {
		integ.IsActive = *req.IsActive
	}
	if err := s.integrationRepo.CreateIntegration(ctx, integ); err != nil {
		return nil, fmt.Errorf("error creating integration: %w", err)
	}
	return integ, nil
}

// ListIntegrations retrieves all integrations of the actor's institution
func (s *integrationServiceImpl) ListIntegrations(ctx context.Context, actor *models.User) ([]*models.ApiIntegration, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	integrations, err := s.integrationRepo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving integrations: %w", err)
	}
	return integrations, nil
}

// UpdateIntegration applies a partial update to an integration
func (s *integrationServiceImpl) UpdateIntegration(ctx context.Context, actor *models.User, id int64, req *dto.UpdateIntegrationRequest) (*models.ApiIntegration, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Endpoint != nil {
		fields["endpoint"] = *req.Endpoint
	}
	if req.APIKey != nil {
		fields["api_key"] = *req.APIKey
	}
	if req.Configuration != nil {
		fields["configuration"] = req.Configuration
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.LastSync != nil {
		fields["last_sync"] = *req.LastSync
	}

	integ, err := s.integrationRepo.UpdateIntegration(ctx, institutionID, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("integration not found")
		}
		return nil, fmt.Errorf("error updating integration: %w", err)
	}
	return integ, nil
}

// DeleteIntegration removes an integration of the actor's institution
func (s *integrationServiceImpl) DeleteIntegration(ctx context.Context, actor *models.User, id int64) error {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return err
	}
	if err := s.integrationRepo.DeleteIntegration(ctx, institutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("integration not found")
		}
		return fmt.Errorf("error deleting integration: %w", err)
	}
	return nil
}
