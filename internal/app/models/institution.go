package models

import (
	"time"
)

// Institution represents a tenant. Every other domain entity is scoped to
// exactly one institution.
type Institution struct {
	ID               int64                  `json:"id" db:"id"`
	Name             string                 `json:"name" db:"name"`
	Type             string                 `json:"type" db:"type"`                       // high-school, university, technical, international
	EducationSystem  string                 `json:"educationSystem" db:"education_system"` // british, american, ib, custom
	Location         *string                `json:"location,omitempty" db:"location"`
	Size             *string                `json:"size,omitempty" db:"size"`
	AcademicCalendar map[string]interface{} `json:"academicCalendar,omitempty" db:"academic_calendar"`
	Structure        map[string]interface{} `json:"structure,omitempty" db:"structure"` // faculties, departments, grade levels
	IsConfigured     bool                   `json:"isConfigured" db:"is_configured"`
	CreatedAt        time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time              `json:"updatedAt" db:"updated_at"`
}
