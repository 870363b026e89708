package models

import "time"

// AcademicStaff defines a staff member based on the 'academic_staff' table.
// A staff row is linked 1:1 to a user account.
type AcademicStaff struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	InstitutionID   int64     `json:"institutionId" db:"institution_id"`
	DepartmentID    *int64    `json:"departmentId,omitempty" db:"department_id"`
	Rank            *string   `json:"rank,omitempty" db:"rank"`
	Specializations []string  `json:"specializations,omitempty" db:"specializations"`
	ResearchAreas   []string  `json:"researchAreas,omitempty" db:"research_areas"`
	TeachingLoad    int       `json:"teachingLoad" db:"teaching_load"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
