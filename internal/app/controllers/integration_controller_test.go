package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

type fakeIntegrationService struct {
	integrations []*models.ApiIntegration
	nextID       int64
}

func (f *fakeIntegrationService) CreateIntegration(_ context.Context, actor *models.User, req *dto.CreateIntegrationRequest) (*models.ApiIntegration, error) {
	f.nextID++
	integ := &models.ApiIntegration{
		ID:            f.nextID,
		InstitutionID: *actor.InstitutionID,
		Name:          req.Name,
		Type:          req.Type,
		Endpoint:      req.Endpoint,
		APIKey:        req.APIKey,
		IsActive:      true,
	}
	f.integrations = append(f.integrations, integ)
	return integ, nil
}

func (f *fakeIntegrationService) ListIntegrations(_ context.Context, _ *models.User) ([]*models.ApiIntegration, error) {
	return f.integrations, nil
}

func (f *fakeIntegrationService) UpdateIntegration(_ context.Context, _ *models.User, id int64, _ *dto.UpdateIntegrationRequest) (*models.ApiIntegration, error) {
	for _, integ := range f.integrations {
		if integ.ID == id {
			return integ, nil
		}
	}
	return nil, apperrors.NewNotFoundError("integration not found")
}

func (f *fakeIntegrationService) DeleteIntegration(_ context.Context, _ *models.User, id int64) error {
	for i, integ := range f.integrations {
		if integ.ID == id {
			f.integrations = append(f.integrations[:i], f.integrations[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("integration not found")
}

func TestIntegrationController_CreateDeleteList(t *testing.T) {
	svc := &fakeIntegrationService{}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	controller := NewIntegrationController(svc)
	router.POST("/api/integrations", controller.CreateIntegration)
	router.DELETE("/api/integrations/:id", controller.DeleteIntegration)
	router.GET("/api/institutions/:id/integrations", controller.ListIntegrations)

	recorder := postJSON(t, router, "/api/integrations", dto.CreateIntegrationRequest{
		InstitutionID: 7,
		Name:          "Biometric gateway",
		Type:          "attendance",
		Endpoint:      "https://gateway.example.com/api",
		APIKey:        "key-123",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = getWithUser(t, router, "/api/institutions/7/integrations")
	require.Equal(t, http.StatusOK, recorder.Code)
	var listBody struct {
		Data []models.ApiIntegration `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listBody))
	require.Len(t, listBody.Data, 1)
	assert.True(t, listBody.Data[0].IsActive)

	req := httptest.NewRequest(http.MethodDelete, "/api/integrations/1", nil)
	deleteRecorder := httptest.NewRecorder()
	router.ServeHTTP(deleteRecorder, req)
	require.Equal(t, http.StatusOK, deleteRecorder.Code)

	recorder = getWithUser(t, router, "/api/institutions/7/integrations")
	require.Equal(t, http.StatusOK, recorder.Code)
	listBody.Data = nil
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listBody))
	assert.Empty(t, listBody.Data)
}

func TestIntegrationController_DeleteMissing(t *testing.T) {
	svc := &fakeIntegrationService{}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	router.DELETE("/api/integrations/:id", NewIntegrationController(svc).DeleteIntegration)

	req := httptest.NewRequest(http.MethodDelete, "/api/integrations/99", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
