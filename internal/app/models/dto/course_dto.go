package dto

// CreateCourseRequest is the payload for POST /api/courses
type CreateCourseRequest struct {
	CourseCode          string                 `json:"courseCode" binding:"required" validate:"required,max=20"`
	Name                string                 `json:"name" binding:"required" validate:"required,max=255"`
	InstitutionID       int64                  `json:"institutionId" binding:"required" validate:"required,gt=0"`
	DepartmentID        *int64                 `json:"departmentId" validate:"omitempty,gt=0"`
	Credits             *int                   `json:"credits" validate:"omitempty,gt=0"`
	HoursPerWeek        *int                   `json:"hoursPerWeek" validate:"omitempty,gt=0"`
	DifficultyWeight    *int                   `json:"difficultyWeight" validate:"omitempty,gte=1,lte=10"`
	Prerequisites       []string               `json:"prerequisites"`
	LecturerID          *int64                 `json:"lecturerId" validate:"omitempty,gt=0"`
	AssessmentStructure map[string]interface{} `json:"assessmentStructure"`
}

// UpdateCourseRequest is the partial payload for PUT /api/courses/:id
type UpdateCourseRequest struct {
	CourseCode          *string                `json:"courseCode" validate:"omitempty,max=20"`
	Name                *string                `json:"name" validate:"omitempty,max=255"`
	DepartmentID        *int64                 `json:"departmentId" validate:"omitempty,gt=0"`
	Credits             *int                   `json:"credits" validate:"omitempty,gt=0"`
	HoursPerWeek        *int                   `json:"hoursPerWeek" validate:"omitempty,gt=0"`
	DifficultyWeight    *int                   `json:"difficultyWeight" validate:"omitempty,gte=1,lte=10"`
	Prerequisites       []string               `json:"prerequisites"`
	LecturerID          *int64                 `json:"lecturerId" validate:"omitempty,gt=0"`
	AssessmentStructure map[string]interface{} `json:"assessmentStructure"`
}

// CreateClassroomRequest is the payload for POST /api/classrooms
type CreateClassroomRequest struct {
	RoomNumber    string   `json:"roomNumber" binding:"required" validate:"required,max=50"`
	InstitutionID int64    `json:"institutionId" binding:"required" validate:"required,gt=0"`
	Building      *string  `json:"building" validate:"omitempty,max=255"`
	Capacity      int      `json:"capacity" binding:"required" validate:"required,gt=0"`
	Equipment     []string `json:"equipment"`
	RoomType      *string  `json:"roomType" validate:"omitempty,max=50"`
}

// UpdateClassroomRequest is the partial payload for PUT /api/classrooms/:id
type UpdateClassroomRequest struct {
	RoomNumber *string  `json:"roomNumber" validate:"omitempty,max=50"`
	Building   *string  `json:"building" validate:"omitempty,max=255"`
	Capacity   *int     `json:"capacity" validate:"omitempty,gt=0"`
	Equipment  []string `json:"equipment"`
	RoomType   *string  `json:"roomType" validate:"omitempty,max=50"`
}
