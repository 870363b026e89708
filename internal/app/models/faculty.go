package models

import "time"

// Faculty represents a faculty within an institution
type Faculty struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	InstitutionID    int64     `json:"institutionId" db:"institution_id"`
	DeanID           *int64    `json:"deanId,omitempty" db:"dean_id"` // references academic_staff
	BudgetAllocation *float64  `json:"budgetAllocation,omitempty" db:"budget_allocation"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// Department represents a department within an institution, optionally
// attached to a faculty.
type Department struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	InstitutionID int64     `json:"institutionId" db:"institution_id"`
	FacultyID     *int64    `json:"facultyId,omitempty" db:"faculty_id"`
	HeadID        *int64    `json:"headId,omitempty" db:"head_id"` // references academic_staff
	StaffCount    int       `json:"staffCount" db:"staff_count"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
