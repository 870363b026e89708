package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/services"
	"github.com/smartcampus/backend/internal/middleware"
)

// DepartmentController handles department CRUD
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// CreateDepartment handles POST /api/departments
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	dept, err := c.departmentService.CreateDepartment(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dept))
}

// ListDepartments handles GET /api/institutions/:id/departments with an
// optional facultyId filter
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	if _, ok := requireInstitutionParam(ctx); !ok {
		return
	}
	facultyID, ok := parseOptionalIDQuery(ctx, "facultyId")
	if !ok {
		return
	}

	departments, err := c.departmentService.ListDepartments(ctx.Request.Context(), middleware.CurrentUser(ctx), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// GetDepartment handles GET /api/departments/:id
func (c *DepartmentController) GetDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	dept, err := c.departmentService.GetDepartment(ctx.Request.Context(), middleware.CurrentUser(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dept))
}

// UpdateDepartment handles PUT /api/departments/:id
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	dept, err := c.departmentService.UpdateDepartment(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dept))
}

// DeleteDepartment handles DELETE /api/departments/:id
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Department deleted"))
}
