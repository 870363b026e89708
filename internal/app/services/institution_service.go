package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcampus/backend/internal/app/models"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/app/repositories"
	"github.com/smartcampus/backend/internal/db"
	"github.com/smartcampus/backend/internal/pkg/apperrors"
	"github.com/smartcampus/backend/internal/pkg/logger"
)

// weeklySlotCapacity is the assumed number of bookable slots per classroom
// per week, used by the utilization heuristic.
const weeklySlotCapacity = 40

// InstitutionService defines the interface for institution operations
type InstitutionService interface {
	CreateInstitution(ctx context.Context, actor *models.User, req *dto.CreateInstitutionRequest) (*models.Institution, error)
	GetInstitution(ctx context.Context, actor *models.User, id int64) (*models.Institution, error)
	UpdateInstitution(ctx context.Context, actor *models.User, id int64, req *dto.UpdateInstitutionRequest) (*models.Institution, error)
	ConfigureInstitution(ctx context.Context, actor *models.User, id int64) (*models.Institution, error)
	GetStats(ctx context.Context, actor *models.User, id int64) (*dto.InstitutionStats, error)
	ListActivities(ctx context.Context, actor *models.User, limit uint64) ([]*models.ActivityLog, error)
}

// institutionServiceImpl implements the InstitutionService interface
type institutionServiceImpl struct {
	pool            *pgxpool.Pool
	institutionRepo *repositories.InstitutionRepository
	userRepo        *repositories.UserRepository
	activityRepo    *repositories.ActivityRepository
}

// NewInstitutionService creates a new institution service instance
func NewInstitutionService(
	pool *pgxpool.Pool,
	institutionRepo *repositories.InstitutionRepository,
	userRepo *repositories.UserRepository,
	activityRepo *repositories.ActivityRepository,
) InstitutionService {
	return &institutionServiceImpl{
		pool:            pool,
		institutionRepo: institutionRepo,
		userRepo:        userRepo,
		activityRepo:    activityRepo,
	}
}

// CreateInstitution creates the tenant, links the creating user to it and
// writes the first activity row, all in one transaction. A user already
// linked to an institution cannot create a second one.
func (s *institutionServiceImpl) CreateInstitution(ctx context.Context, actor *models.User, req *dto.CreateInstitutionRequest) (*models.Institution, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}
	if actor.InstitutionID != nil {
		return nil, apperrors.NewConflictError("user already belongs to an institution")
	}

	inst := &models.Institution{
		Name:             req.Name,
		Type:             req.Type,
		EducationSystem:  req.EducationSystem,
		Location:         req.Location,
		Size:             req.Size,
		AcademicCalendar: req.AcademicCalendar,
		Structure:        req.Structure,
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.institutionRepo.CreateInstitution(ctx, tx, inst); err != nil {
			return err
		}
		if err := s.userRepo.LinkInstitutionTx(ctx, tx, actor.ID, inst.ID); err != nil {
			return err
		}
		return s.activityRepo.LogActivityTx(ctx, tx, &models.ActivityLog{
			InstitutionID: inst.ID,
			UserID:        actor.ID,
			Action:        ActionInstitutionCreated,
			Description:   fmt.Sprintf("Institution %q created", inst.Name),
			Metadata:      map[string]interface{}{"type": inst.Type, "educationSystem": inst.EducationSystem},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("error creating institution: %w", err)
	}

	logger.Info().Int64("institutionID", inst.ID).Int64("userID", actor.ID).Msg("Institution created")
	return inst, nil
}

// GetInstitution retrieves an institution the actor belongs to.
func (s *institutionServiceImpl) GetInstitution(ctx context.Context, actor *models.User, id int64) (*models.Institution, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if institutionID != id {
		return nil, apperrors.ErrPermissionDenied
	}

	inst, err := s.institutionRepo.GetInstitutionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("error retrieving institution: %w", err)
	}
	return inst, nil
}

// UpdateInstitution applies a partial update to the actor's institution.
func (s *institutionServiceImpl) UpdateInstitution(ctx context.Context, actor *models.User, id int64, req *dto.UpdateInstitutionRequest) (*models.Institution, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if institutionID != id {
		return nil, apperrors.ErrPermissionDenied
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.EducationSystem != nil {
		fields["education_system"] = *req.EducationSystem
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Size != nil {
		fields["size"] = *req.Size
	}
	if req.AcademicCalendar != nil {
		fields["academic_calendar"] = req.AcademicCalendar
	}
	if req.Structure != nil {
		fields["structure"] = req.Structure
	}

	inst, err := s.institutionRepo.UpdateInstitution(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("error updating institution: %w", err)
	}
	return inst, nil
}

// ConfigureInstitution marks the onboarding wizard as finished. Repeating
// the call changes nothing, so clients may safely retry it.
func (s *institutionServiceImpl) ConfigureInstitution(ctx context.Context, actor *models.User, id int64) (*models.Institution, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if institutionID != id {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := s.institutionRepo.MarkConfigured(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("error configuring institution: %w", err)
	}

	recordActivity(ctx, s.activityRepo, id, actor.ID, ActionInstitutionConfigured, "Institution setup completed", nil)

	inst, err := s.institutionRepo.GetInstitutionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving institution: %w", err)
	}
	return inst, nil
}

// GetStats aggregates entity counts for the dashboard.
func (s *institutionServiceImpl) GetStats(ctx context.Context, actor *models.User, id int64) (*dto.InstitutionStats, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if institutionID != id {
		return nil, apperrors.ErrPermissionDenied
	}

	counts, err := s.institutionRepo.CountEntities(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting entities: %w", err)
	}

	return &dto.InstitutionStats{
		TotalStudents:  counts.Students,
		ActiveCourses:  counts.Courses,
		FacultyMembers: counts.Staff,
		ClassroomUsage: computeClassroomUsage(counts.TimetableSlots, counts.Classrooms),
	}, nil
}

// computeClassroomUsage estimates utilization as the share of weekly slot
// capacity that is booked. With no classrooms there is no capacity and the
// result is 0.
func computeClassroomUsage(slots, classrooms int) int {
	if classrooms <= 0 {
		return 0
	}
	usage := int(math.Round(float64(slots) / float64(classrooms*weeklySlotCapacity) * 100))
	if usage < 0 {
		return 0
	}
	if usage > 100 {
		return 100
	}
	return usage
}

// ListActivities returns the newest audit rows of the actor's institution.
func (s *institutionServiceImpl) ListActivities(ctx context.Context, actor *models.User, limit uint64) ([]*models.ActivityLog, error) {
	institutionID, err := actorInstitution(actor)
	if err != nil {
		return nil, err
	}
	if limit == 0 || limit > 100 {
		limit = 20
	}
	entries, err := s.activityRepo.ListRecent(ctx, institutionID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %w", err)
	}
	return entries, nil
}
