package dto

// CreateStaffRequest is the payload for POST /api/staff
type CreateStaffRequest struct {
	UserID          int64    `json:"userId" binding:"required" validate:"required,gt=0"`
	InstitutionID   int64    `json:"institutionId" binding:"required" validate:"required,gt=0"`
	DepartmentID    *int64   `json:"departmentId" validate:"omitempty,gt=0"`
	Rank            *string  `json:"rank" validate:"omitempty,max=100"`
	Specializations []string `json:"specializations"`
	ResearchAreas   []string `json:"researchAreas"`
	TeachingLoad    *int     `json:"teachingLoad" validate:"omitempty,gte=0"`
}

// UpdateStaffRequest is the partial payload for PUT /api/staff/:id
type UpdateStaffRequest struct {
	DepartmentID    *int64   `json:"departmentId" validate:"omitempty,gt=0"`
	Rank            *string  `json:"rank" validate:"omitempty,max=100"`
	Specializations []string `json:"specializations"`
	ResearchAreas   []string `json:"researchAreas"`
	TeachingLoad    *int     `json:"teachingLoad" validate:"omitempty,gte=0"`
}

// CreateStudentRequest is the payload for POST /api/students
type CreateStudentRequest struct {
	UserID        int64    `json:"userId" binding:"required" validate:"required,gt=0"`
	InstitutionID int64    `json:"institutionId" binding:"required" validate:"required,gt=0"`
	StudentID     string   `json:"studentId" binding:"required" validate:"required,max=50"`
	Program       *string  `json:"program" validate:"omitempty,max=255"`
	YearOfStudy   *int     `json:"yearOfStudy" validate:"omitempty,gt=0"`
	GPA           *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Credits       *int     `json:"credits" validate:"omitempty,gte=0"`
}

// UpdateStudentRequest is the partial payload for PUT /api/students/:id
type UpdateStudentRequest struct {
	Program          *string  `json:"program" validate:"omitempty,max=255"`
	YearOfStudy      *int     `json:"yearOfStudy" validate:"omitempty,gt=0"`
	AcademicStanding *string  `json:"academicStanding" validate:"omitempty,max=50"`
	GPA              *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Credits          *int     `json:"credits" validate:"omitempty,gte=0"`
}
