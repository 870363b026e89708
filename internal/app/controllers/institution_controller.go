package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/services"
	"github.com/smartcampus/backend/internal/middleware"
)

// InstitutionController handles institution lifecycle, stats and the
// activity feed
type InstitutionController struct {
	institutionService services.InstitutionService
}

// NewInstitutionController creates a new InstitutionController
func NewInstitutionController(institutionService services.InstitutionService) *InstitutionController {
	return &InstitutionController{institutionService: institutionService}
}

// CreateInstitution handles POST /api/institutions
func (c *InstitutionController) CreateInstitution(ctx *gin.Context) {
	var req dto.CreateInstitutionRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	inst, err := c.institutionService.CreateInstitution(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(inst))
}

// GetInstitution handles GET /api/institutions/:id
func (c *InstitutionController) GetInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	inst, err := c.institutionService.GetInstitution(ctx.Request.Context(), middleware.CurrentUser(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(inst))
}

// UpdateInstitution handles PUT /api/institutions/:id
func (c *InstitutionController) UpdateInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstitutionRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	inst, err := c.institutionService.UpdateInstitution(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(inst))
}

// ConfigureInstitution handles POST /api/institutions/:id/configure
func (c *InstitutionController) ConfigureInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	inst, err := c.institutionService.ConfigureInstitution(ctx.Request.Context(), middleware.CurrentUser(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(inst))
}

// GetStats handles GET /api/institutions/:id/stats
func (c *InstitutionController) GetStats(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	stats, err := c.institutionService.GetStats(ctx.Request.Context(), middleware.CurrentUser(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// ListActivities handles GET /api/institutions/:id/activities
func (c *InstitutionController) ListActivities(ctx *gin.Context) {
	if _, ok := requireInstitutionParam(ctx); !ok {
		return
	}

	limit := uint64(10)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}
		limit = parsed
	}

	entries, err := c.institutionService.ListActivities(ctx.Request.Context(), middleware.CurrentUser(ctx), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}
