package services

import (
	"context"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/repositories"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
	"github.com/smartcampus/backend/internal/pkg/logger"
)

// Activity log actions written by the services in this package.
const (
	ActionInstitutionCreated    = "institution_created"
	ActionInstitutionConfigured = "institution_configured"
	ActionFacultyCreated        = "faculty_created"
	ActionDepartmentCreated     = "department_created"
	ActionStaffCreated          = "staff_created"
	ActionStudentCreated        = "student_created"
	ActionCourseCreated         = "course_created"
	ActionClassroomCreated      = "classroom_created"
	ActionTimetableUpdated      = "timetable_updated"
)

// actorInstitution resolves the tenant of the acting user. Every scoped
// operation starts here; a user without an institution cannot touch
// institution data.
func actorInstitution(actor *models.User) (int64, error) {
	if actor == nil || actor.InstitutionID == nil {
		return 0, apperrors.NewValidationError("user does not belong to an institution")
	}
	return *actor.InstitutionID, nil
}

// requireSameInstitution rejects payloads that name a different tenant than
// the one the actor belongs to.
func requireSameInstitution(actorInstitutionID, requestedInstitutionID int64) error {
	if requestedInstitutionID != 0 && requestedInstitutionID != actorInstitutionID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// createdMetadata builds the audit metadata for entity-created actions:
// the new row id under idKey plus any descriptive fields.
func createdMetadata(idKey string, id int64, fields map[string]interface{}) map[string]interface{} {
	metadata := map[string]interface{}{idKey: id}
	for k, v := range fields {
		metadata[k] = v
	}
	return metadata
}

// recordActivity writes an audit row after a mutation has succeeded.
// A failed audit write never fails the mutation; it is logged and dropped.
func recordActivity(ctx context.Context, repo *repositories.ActivityRepository, institutionID, userID int64, action, description string, metadata map[string]interface{}) {
	err := repo.LogActivity(ctx, &models.ActivityLog{
		InstitutionID: institutionID,
		UserID:        userID,
		Action:        action,
		Description:   description,
		Metadata:      metadata,
	})
	if err != nil {
		logger.Warn().Err(err).Str("action", action).Msg("Failed to write activity log")
	}
}
