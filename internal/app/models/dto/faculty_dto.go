package dto

// CreateFacultyRequest is the payload for POST /api/faculties
type CreateFacultyRequest struct {
	Name             string   `json:"name" binding:"required" validate:"required,max=255"`
	InstitutionID    int64    `json:"institutionId" binding:"required" validate:"required,gt=0"`
	DeanID           *int64   `json:"deanId" validate:"omitempty,gt=0"`
	BudgetAllocation *float64 `json:"budgetAllocation" validate:"omitempty,gte=0"`
}

// UpdateFacultyRequest is the partial payload for PUT /api/faculties/:id
type UpdateFacultyRequest struct {
	Name             *string  `json:"name" validate:"omitempty,max=255"`
	DeanID           *int64   `json:"deanId" validate:"omitempty,gt=0"`
	BudgetAllocation *float64 `json:"budgetAllocation" validate:"omitempty,gte=0"`
}

// CreateDepartmentRequest is the payload for POST /api/departments
type CreateDepartmentRequest struct {
	Name          string `json:"name" binding:"required" validate:"required,max=255"`
	InstitutionID int64  `json:"institutionId" binding:"required" validate:"required,gt=0"`
	FacultyID     *int64 `json:"facultyId" validate:"omitempty,gt=0"`
	HeadID        *int64 `json:"headId" validate:"omitempty,gt=0"`
	StaffCount    *int   `json:"staffCount" validate:"omitempty,gte=0"`
}

// UpdateDepartmentRequest is the partial payload for PUT /api/departments/:id
type UpdateDepartmentRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	FacultyID  *int64  `json:"facultyId" validate:"omitempty,gt=0"`
	HeadID     *int64  `json:"headId" validate:"omitempty,gt=0"`
	StaffCount *int    `json:"staffCount" validate:"omitempty,gte=0"`
}
