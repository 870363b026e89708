package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/services"
	"github.com/smartcampus/backend/internal/middleware"
)

// TimetableController handles time slots and timetable slot assignments
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// CreateTimeSlot handles POST /api/time-slots
func (c *TimetableController) CreateTimeSlot(ctx *gin.Context) {
	var req dto.CreateTimeSlotRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	slot, err := c.timetableService.CreateTimeSlot(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(slot))
}

// ListTimeSlots handles GET /api/institutions/:id/time-slots
func (c *TimetableController) ListTimeSlots(ctx *gin.Context) {
	if _, ok := requireInstitutionParam(ctx); !ok {
		return
	}

	slots, err := c.timetableService.ListTimeSlots(ctx.Request.Context(), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(slots))
}

// UpdateTimeSlot handles PUT /api/time-slots/:id
func (c *TimetableController) UpdateTimeSlot(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTimeSlotRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	slot, err := c.timetableService.UpdateTimeSlot(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(slot))
}

// DeleteTimeSlot handles DELETE /api/time-slots/:id
func (c *TimetableController) DeleteTimeSlot(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.timetableService.DeleteTimeSlot(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Time slot deleted"))
}

// CreateTimetableSlot handles POST /api/timetable
func (c *TimetableController) CreateTimetableSlot(ctx *gin.Context) {
	var req dto.CreateTimetableSlotRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	slot, err := c.timetableService.CreateTimetableSlot(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(slot))
}

// ListTimetableSlots handles GET /api/institutions/:id/timetable
func (c *TimetableController) ListTimetableSlots(ctx *gin.Context) {
	if _, ok := requireInstitutionParam(ctx); !ok {
		return
	}

	slots, err := c.timetableService.ListTimetableSlots(ctx.Request.Context(), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(slots))
}

// UpdateTimetableSlot handles PUT /api/timetable/:id
func (c *TimetableController) UpdateTimetableSlot(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTimetableSlotRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	slot, err := c.timetableService.UpdateTimetableSlot(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(slot))
}

// DeleteTimetableSlot handles DELETE /api/timetable/:id
func (c *TimetableController) DeleteTimetableSlot(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.timetableService.DeleteTimetableSlot(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Timetable slot deleted"))
}
