package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
)

func int64Ptr(v int64) *int64 { return &v }

func TestActorInstitution(t *testing.T) {
	t.Run("linked user", func(t *testing.T) {
		id, err := actorInstitution(&models.User{ID: 1, InstitutionID: int64Ptr(7)})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("user without institution", func(t *testing.T) {
		_, err := actorInstitution(&models.User{ID: 1})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("nil actor", func(t *testing.T) {
		_, err := actorInstitution(nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestRequireSameInstitution(t *testing.T) {
	assert.NoError(t, requireSameInstitution(7, 7))
	assert.NoError(t, requireSameInstitution(7, 0))
	assert.ErrorIs(t, requireSameInstitution(7, 8), apperrors.ErrPermissionDenied)
}

func TestCreatedMetadata(t *testing.T) {
	t.Run("id plus descriptive fields", func(t *testing.T) {
		metadata := createdMetadata("facultyId", 12, map[string]interface{}{"name": "Engineering"})
		assert.Equal(t, map[string]interface{}{"facultyId": int64(12), "name": "Engineering"}, metadata)
	})

	t.Run("id only", func(t *testing.T) {
		metadata := createdMetadata("staffId", 3, nil)
		assert.Equal(t, map[string]interface{}{"staffId": int64(3)}, metadata)
	})
}

func TestNewStudent_DefaultsAcademicStanding(t *testing.T) {
	student := newStudent(7, &dto.CreateStudentRequest{
		UserID:        2,
		InstitutionID: 7,
		StudentID:     "STU-0001",
	})

	assert.Equal(t, "good", student.AcademicStanding)
	assert.Equal(t, int64(7), student.InstitutionID)
	assert.Equal(t, 0, student.Credits)
}

func TestNewClassroom_RoomTypeDefault(t *testing.T) {
	req := &dto.CreateClassroomRequest{
		RoomNumber:    "A-101",
		InstitutionID: 7,
		Capacity:      30,
	}
	assert.Equal(t, "lecture", newClassroom(7, req).RoomType)

	lab := "lab"
	req.RoomType = &lab
	assert.Equal(t, "lab", newClassroom(7, req).RoomType)

	empty := ""
	req.RoomType = &empty
	assert.Equal(t, "lecture", newClassroom(7, req).RoomType)
}

func TestParseAttendanceDate(t *testing.T) {
	date, err := parseAttendanceDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), date)

	_, err = parseAttendanceDate("2026-03-15T10:00:00Z")
	assert.Error(t, err)

	_, err = parseAttendanceDate("15/03/2026")
	assert.Error(t, err)
}

func TestComputeClassroomUsage(t *testing.T) {
	tests := []struct {
		name       string
		slots      int
		classrooms int
		want       int
	}{
		{name: "no classrooms", slots: 10, classrooms: 0, want: 0},
		{name: "no slots", slots: 0, classrooms: 5, want: 0},
		{name: "half booked", slots: 20, classrooms: 1, want: 50},
		{name: "fully booked", slots: 40, classrooms: 1, want: 100},
		{name: "overbooked clamps to 100", slots: 90, classrooms: 1, want: 100},
		{name: "rounded", slots: 10, classrooms: 3, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeClassroomUsage(tt.slots, tt.classrooms))
		})
	}
}
