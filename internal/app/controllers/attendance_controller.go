package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/services"
	"github.com/smartcampus/backend/internal/middleware"
)

// AttendanceController handles attendance records
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// CreateAttendanceRecord handles POST /api/attendance
func (c *AttendanceController) CreateAttendanceRecord(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	rec, err := c.attendanceService.CreateAttendanceRecord(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(rec))
}

// ListAttendanceRecords handles GET /api/institutions/:id/attendance with
// optional studentId and date filters
func (c *AttendanceController) ListAttendanceRecords(ctx *gin.Context) {
	if _, ok := requireInstitutionParam(ctx); !ok {
		return
	}
	studentID, ok := parseOptionalIDQuery(ctx, "studentId")
	if !ok {
		return
	}
	date, ok := parseOptionalDateQuery(ctx, "date")
	if !ok {
		return
	}

	records, err := c.attendanceService.ListAttendanceRecords(ctx.Request.Context(), middleware.CurrentUser(ctx), studentID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// UpdateAttendanceRecord handles PUT /api/attendance/:id
func (c *AttendanceController) UpdateAttendanceRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	rec, err := c.attendanceService.UpdateAttendanceRecord(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rec))
}
