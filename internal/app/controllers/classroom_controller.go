package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/services"
	"github.com/smartcampus/backend/internal/middleware"
)

// ClassroomController handles classroom CRUD
type ClassroomController struct {
	classroomService services.ClassroomService
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService services.ClassroomService) *ClassroomController {
	return &ClassroomController{classroomService: classroomService}
}

// CreateClassroom handles POST /api/classrooms
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	room, err := c.classroomService.CreateClassroom(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(room))
}

// ListClassrooms handles GET /api/institutions/:id/classrooms
func (c *ClassroomController) ListClassrooms(ctx *gin.Context) {
	if _, ok := requireInstitutionParam(ctx); !ok {
		return
	}

	rooms, err := c.classroomService.ListClassrooms(ctx.Request.Context(), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rooms))
}

// GetClassroom handles GET /api/classrooms/:id
func (c *ClassroomController) GetClassroom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	room, err := c.classroomService.GetClassroom(ctx.Request.Context(), middleware.CurrentUser(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// UpdateClassroom handles PUT /api/classrooms/:id
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassroomRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	room, err := c.classroomService.UpdateClassroom(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// DeleteClassroom handles DELETE /api/classrooms/:id
func (c *ClassroomController) DeleteClassroom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classroomService.DeleteClassroom(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Classroom deleted"))
}
