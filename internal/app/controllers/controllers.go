package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/middleware"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes
// the validation response and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// requireInstitutionParam parses the :id institution parameter and checks
// it names the authenticated user's own institution. Requests against a
// foreign tenant get 403 regardless of whether that tenant exists.
func requireInstitutionParam(ctx *gin.Context) (int64, bool) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return 0, false
	}

	user := middleware.CurrentUser(ctx)
	if user == nil || user.InstitutionID == nil || *user.InstitutionID != id {
		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// parseOptionalIDQuery reads an optional int64 query parameter. A missing
// parameter yields nil; a malformed one reports false after writing the
// validation response.
func parseOptionalIDQuery(ctx *gin.Context, name string) (*int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return nil, false
	}
	return &id, true
}

// parseOptionalDateQuery reads an optional YYYY-MM-DD query parameter.
// A missing parameter yields nil; a malformed one reports false after
// writing the validation response.
func parseOptionalDateQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be formatted as YYYY-MM-DD")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return nil, false
	}
	return &date, true
}
