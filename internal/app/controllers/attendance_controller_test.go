package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
)

type fakeAttendanceService struct {
	createFn func(ctx context.Context, actor *models.User, req *dto.CreateAttendanceRequest) (*models.AttendanceRecord, error)
	listFn   func(ctx context.Context, actor *models.User, studentID *int64, date *time.Time) ([]*models.AttendanceRecord, error)
	updateFn func(ctx context.Context, actor *models.User, id int64, req *dto.UpdateAttendanceRequest) (*models.AttendanceRecord, error)
}

func (f *fakeAttendanceService) CreateAttendanceRecord(ctx context.Context, actor *models.User, req *dto.CreateAttendanceRequest) (*models.AttendanceRecord, error) {
	return f.createFn(ctx, actor, req)
}

func (f *fakeAttendanceService) ListAttendanceRecords(ctx context.Context, actor *models.User, studentID *int64, date *time.Time) ([]*models.AttendanceRecord, error) {
	return f.listFn(ctx, actor, studentID, date)
}

func (f *fakeAttendanceService) UpdateAttendanceRecord(ctx context.Context, actor *models.User, id int64, req *dto.UpdateAttendanceRequest) (*models.AttendanceRecord, error) {
	return f.updateFn(ctx, actor, id, req)
}

func attendanceRouter(svc *fakeAttendanceService) *gin.Engine {
	controller := NewAttendanceController(svc)
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	router.POST("/api/attendance", controller.CreateAttendanceRecord)
	router.GET("/api/institutions/:id/attendance", controller.ListAttendanceRecords)
	return router
}

func TestAttendanceController_CreateAcceptsCalendarDate(t *testing.T) {
	var gotDate string
	svc := &fakeAttendanceService{
		createFn: func(_ context.Context, _ *models.User, req *dto.CreateAttendanceRequest) (*models.AttendanceRecord, error) {
			gotDate = req.Date
			return &models.AttendanceRecord{
				ID:            1,
				StudentID:     req.StudentID,
				InstitutionID: req.InstitutionID,
				Date:          time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
				Status:        req.Status,
			}, nil
		},
	}
	router := attendanceRouter(svc)

	recorder := postJSON(t, router, "/api/attendance", gin.H{
		"studentId":     3,
		"institutionId": 7,
		"date":          "2026-03-15",
		"status":        "present",
	})

	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	assert.Equal(t, "2026-03-15", gotDate)
}

func TestAttendanceController_CreateRejectsNonCalendarDates(t *testing.T) {
	svc := &fakeAttendanceService{
		createFn: func(_ context.Context, _ *models.User, _ *dto.CreateAttendanceRequest) (*models.AttendanceRecord, error) {
			t.Fatal("service must not be called for invalid payloads")
			return nil, nil
		},
	}
	router := attendanceRouter(svc)

	for _, date := range []string{"2026-03-15T10:00:00Z", "15/03/2026", "not-a-date"} {
		t.Run(date, func(t *testing.T) {
			recorder := postJSON(t, router, "/api/attendance", gin.H{
				"studentId":     3,
				"institutionId": 7,
				"date":          date,
				"status":        "present",
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
		})
	}
}

func TestAttendanceController_ListDateFilter(t *testing.T) {
	var gotStudentID *int64
	var gotDate *time.Time
	svc := &fakeAttendanceService{
		listFn: func(_ context.Context, _ *models.User, studentID *int64, date *time.Time) ([]*models.AttendanceRecord, error) {
			gotStudentID = studentID
			gotDate = date
			return []*models.AttendanceRecord{}, nil
		},
	}
	router := attendanceRouter(svc)

	t.Run("no filters", func(t *testing.T) {
		recorder := getWithUser(t, router, "/api/institutions/7/attendance")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, gotStudentID)
		assert.Nil(t, gotDate)
	})

	t.Run("date filter", func(t *testing.T) {
		recorder := getWithUser(t, router, "/api/institutions/7/attendance?date=2026-03-15")
		require.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, gotDate)
		assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), *gotDate)
	})

	t.Run("combined with studentId", func(t *testing.T) {
		recorder := getWithUser(t, router, "/api/institutions/7/attendance?studentId=3&date=2026-03-15")
		require.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, gotStudentID)
		assert.Equal(t, int64(3), *gotStudentID)
		require.NotNil(t, gotDate)
	})

	t.Run("malformed date", func(t *testing.T) {
		recorder := getWithUser(t, router, "/api/institutions/7/attendance?date=March-15")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	})
}
