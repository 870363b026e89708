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
	"github.com/smartcampus/backend/internal/middleware"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

type fakeInstitutionService struct {
	createFn     func(ctx context.Context, actor *models.User, req *dto.CreateInstitutionRequest) (*models.Institution, error)
	getFn        func(ctx context.Context, actor *models.User, id int64) (*models.Institution, error)
	updateFn     func(ctx context.Context, actor *models.User, id int64, req *dto.UpdateInstitutionRequest) (*models.Institution, error)
	configureFn  func(ctx context.Context, actor *models.User, id int64) (*models.Institution, error)
	statsFn      func(ctx context.Context, actor *models.User, id int64) (*dto.InstitutionStats, error)
	activitiesFn func(ctx context.Context, actor *models.User, limit uint64) ([]*models.ActivityLog, error)
}

func (f *fakeInstitutionService) CreateInstitution(ctx context.Context, actor *models.User, req *dto.CreateInstitutionRequest) (*models.Institution, error) {
	return f.createFn(ctx, actor, req)
}

func (f *fakeInstitutionService) GetInstitution(ctx context.Context, actor *models.User, id int64) (*models.Institution, error) {
	return f.getFn(ctx, actor, id)
}

func (f *fakeInstitutionService) UpdateInstitution(ctx context.Context, actor *models.User, id int64, req *dto.UpdateInstitutionRequest) (*models.Institution, error) {
	return f.updateFn(ctx, actor, id, req)
}

func (f *fakeInstitutionService) ConfigureInstitution(ctx context.Context, actor *models.User, id int64) (*models.Institution, error) {
	return f.configureFn(ctx, actor, id)
}

func (f *fakeInstitutionService) GetStats(ctx context.Context, actor *models.User, id int64) (*dto.InstitutionStats, error) {
	return f.statsFn(ctx, actor, id)
}

func (f *fakeInstitutionService) ListActivities(ctx context.Context, actor *models.User, limit uint64) ([]*models.ActivityLog, error) {
	return f.activitiesFn(ctx, actor, limit)
}

func authenticatedAs(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, user)
		c.Next()
	}
}

func linkedUser(institutionID int64) *models.User {
	return &models.User{ID: 1, Role: "admin", InstitutionID: &institutionID}
}

func getWithUser(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestInstitutionController_GetStats(t *testing.T) {
	svc := &fakeInstitutionService{
		statsFn: func(_ context.Context, actor *models.User, id int64) (*dto.InstitutionStats, error) {
			if actor.InstitutionID == nil || *actor.InstitutionID != id {
				return nil, apperrors.ErrPermissionDenied
			}
			return &dto.InstitutionStats{
				TotalStudents:  120,
				ActiveCourses:  14,
				FacultyMembers: 9,
				ClassroomUsage: 35,
			}, nil
		},
	}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	router.GET("/api/institutions/:id/stats", NewInstitutionController(svc).GetStats)

	recorder := getWithUser(t, router, "/api/institutions/7/stats")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data dto.InstitutionStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 120, body.Data.TotalStudents)
	assert.Equal(t, 35, body.Data.ClassroomUsage)
}

func TestInstitutionController_GetStats_ForeignTenant(t *testing.T) {
	svc := &fakeInstitutionService{
		statsFn: func(_ context.Context, actor *models.User, id int64) (*dto.InstitutionStats, error) {
			if actor.InstitutionID == nil || *actor.InstitutionID != id {
				return nil, apperrors.ErrPermissionDenied
			}
			return &dto.InstitutionStats{}, nil
		},
	}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	router.GET("/api/institutions/:id/stats", NewInstitutionController(svc).GetStats)

	recorder := getWithUser(t, router, "/api/institutions/8/stats")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestInstitutionController_ListActivities(t *testing.T) {
	var gotLimit uint64
	svc := &fakeInstitutionService{
		activitiesFn: func(_ context.Context, _ *models.User, limit uint64) ([]*models.ActivityLog, error) {
			gotLimit = limit
			return []*models.ActivityLog{{ID: 1, Action: "institution_created"}}, nil
		},
	}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	router.GET("/api/institutions/:id/activities", NewInstitutionController(svc).ListActivities)

	recorder := getWithUser(t, router, "/api/institutions/7/activities")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, uint64(10), gotLimit)

	recorder = getWithUser(t, router, "/api/institutions/7/activities?limit=5")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, uint64(5), gotLimit)

	recorder = getWithUser(t, router, "/api/institutions/7/activities?limit=nope")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestInstitutionController_ListActivities_ForeignTenant(t *testing.T) {
	svc := &fakeInstitutionService{
		activitiesFn: func(_ context.Context, _ *models.User, _ uint64) ([]*models.ActivityLog, error) {
			t.Fatal("service must not be called for a foreign tenant")
			return nil, nil
		},
	}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	router.GET("/api/institutions/:id/activities", NewInstitutionController(svc).ListActivities)

	recorder := getWithUser(t, router, "/api/institutions/9/activities")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestInstitutionController_Configure_Idempotent(t *testing.T) {
	inst := &models.Institution{ID: 7, Name: "Northfield", IsConfigured: false}
	svc := &fakeInstitutionService{
		configureFn: func(_ context.Context, actor *models.User, id int64) (*models.Institution, error) {
			if actor.InstitutionID == nil || *actor.InstitutionID != id {
				return nil, apperrors.ErrPermissionDenied
			}
			inst.IsConfigured = true
			return inst, nil
		},
	}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	router.POST("/api/institutions/:id/configure", NewInstitutionController(svc).ConfigureInstitution)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/institutions/7/configure", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data models.Institution `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.True(t, body.Data.IsConfigured)
	}
}

func TestInstitutionController_GetInstitution_BadID(t *testing.T) {
	svc := &fakeInstitutionService{
		getFn: func(_ context.Context, _ *models.User, _ int64) (*models.Institution, error) {
			t.Fatal("service must not be called for a malformed id")
			return nil, nil
		},
	}
	router := gin.New()
	router.Use(authenticatedAs(linkedUser(7)))
	router.GET("/api/institutions/:id", NewInstitutionController(svc).GetInstitution)

	recorder := getWithUser(t, router, "/api/institutions/banana")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
