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

type fakeStudentService struct {
	students []*models.Student
}

func (f *fakeStudentService) CreateStudent(_ context.Context, actor *models.User, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		ID:            int64(len(f.students) + 1),
		UserID:        req.UserID,
		InstitutionID: *actor.InstitutionID,
		StudentID:     req.StudentID,
	}
	f.students = append(f.students, student)
	return student, nil
}

func (f *fakeStudentService) ListStudents(_ context.Context, _ *models.User) ([]*models.Student, error) {
	return f.students, nil
}

func (f *fakeStudentService) GetStudent(_ context.Context, _ *models.User, _ int64) (*models.Student, error) {
	return nil, apperrors.NewNotFoundError("student not found")
}

func (f *fakeStudentService) UpdateStudent(_ context.Context, _ *models.User, _ int64, _ *dto.UpdateStudentRequest) (*models.Student, error) {
	return nil, apperrors.NewNotFoundError("student not found")
}

func (f *fakeStudentService) DeleteStudent(_ context.Context, _ *models.User, _ int64) error {
	return apperrors.NewNotFoundError("student not found")
}

// The full onboarding path: register, create an institution, configure it,
// enroll a student, read the dashboard stats.
func TestOnboardingFlow(t *testing.T) {
	actor := &models.User{ID: 1, Username: "principal", Email: "principal@example.edu", Role: "admin"}
	var institution *models.Institution
	students := &fakeStudentService{}

	authSvc := &fakeAuthService{
		registerFn: func(_ context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
			actor.Username = req.Username
			actor.Email = req.Email
			return &dto.AuthResponse{User: actor.Public(), Token: "signed-token"}, nil
		},
	}
	instSvc := &fakeInstitutionService{
		createFn: func(_ context.Context, user *models.User, req *dto.CreateInstitutionRequest) (*models.Institution, error) {
			if user.InstitutionID != nil {
				return nil, apperrors.NewConflictError("user already belongs to an institution")
			}
			institution = &models.Institution{ID: 7, Name: req.Name, Type: req.Type, EducationSystem: req.EducationSystem}
			id := institution.ID
			user.InstitutionID = &id
			return institution, nil
		},
		configureFn: func(_ context.Context, user *models.User, id int64) (*models.Institution, error) {
			if user.InstitutionID == nil || *user.InstitutionID != id {
				return nil, apperrors.ErrPermissionDenied
			}
			institution.IsConfigured = true
			return institution, nil
		},
		statsFn: func(_ context.Context, user *models.User, id int64) (*dto.InstitutionStats, error) {
			if user.InstitutionID == nil || *user.InstitutionID != id {
				return nil, apperrors.ErrPermissionDenied
			}
			return &dto.InstitutionStats{TotalStudents: len(students.students)}, nil
		},
	}

	router := gin.New()
	router.Use(authenticatedAs(actor))
	router.POST("/api/auth/register", NewAuthController(authSvc).Register)
	instController := NewInstitutionController(instSvc)
	router.POST("/api/institutions", instController.CreateInstitution)
	router.POST("/api/institutions/:id/configure", instController.ConfigureInstitution)
	router.GET("/api/institutions/:id/stats", instController.GetStats)
	router.POST("/api/students", NewStudentController(students).CreateStudent)

	recorder := postJSON(t, router, "/api/auth/register", dto.RegisterRequest{
		Username: "principal",
		Email:    "principal@example.edu",
		Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postJSON(t, router, "/api/institutions", dto.CreateInstitutionRequest{
		Name:            "Northfield Academy",
		Type:            "high-school",
		EducationSystem: "british",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, actor.InstitutionID)

	req := httptest.NewRequest(http.MethodPost, "/api/institutions/7/configure", nil)
	configRecorder := httptest.NewRecorder()
	router.ServeHTTP(configRecorder, req)
	require.Equal(t, http.StatusOK, configRecorder.Code)
	assert.True(t, institution.IsConfigured)

	recorder = postJSON(t, router, "/api/students", dto.CreateStudentRequest{
		UserID:        2,
		InstitutionID: 7,
		StudentID:     "STU-0001",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = getWithUser(t, router, "/api/institutions/7/stats")
	require.Equal(t, http.StatusOK, recorder.Code)
	var body struct {
		Data dto.InstitutionStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.TotalStudents)
}
