package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/services"
	"github.com/smartcampus/backend/internal/middleware"
)

// IntegrationController handles external API integrations
type IntegrationController struct {
	integrationService services.IntegrationService
}

// NewIntegrationController creates a new IntegrationController
func NewIntegrationController(integrationService services.IntegrationService) *IntegrationController {
	return &IntegrationController{integrationService: integrationService}
}

// CreateIntegration handles POST /api/integrations
func (c *IntegrationController) CreateIntegration(ctx *gin.Context) {
	var req dto.CreateIntegrationRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	integ, err := c.integrationService.CreateIntegration(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(integ))
}

// ListIntegrations handles GET /api/institutions/:id/integrations
func (c *IntegrationController) ListIntegrations(ctx *gin.Context) {
	if _, ok := requireInstitutionParam(ctx); !ok {
		return
	}

	integrations, err := c.integrationService.ListIntegrations(ctx.Request.Context(), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(integrations))
}

// UpdateIntegration handles PUT /api/integrations/:id
func (c *IntegrationController) UpdateIntegration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateIntegrationRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	integ, err := c.integrationService.UpdateIntegration(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(integ))
}

// DeleteIntegration handles DELETE /api/integrations/:id
func (c *IntegrationController) DeleteIntegration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.integrationService.DeleteIntegration(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Integration deleted"))
}
