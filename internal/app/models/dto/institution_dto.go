package dto

// CreateInstitutionRequest is the payload for POST /api/institutions
type CreateInstitutionRequest struct {
	Name             string                 `json:"name" binding:"required" validate:"required,max=255"`
	Type             string                 `json:"type" binding:"required" validate:"required,oneof=high-school university technical international"`
	EducationSystem  string                 `json:"educationSystem" binding:"required" validate:"required,oneof=british american ib custom"`
	Location         *string                `json:"location"`
	Size             *string                `json:"size"`
	AcademicCalendar map[string]interface{} `json:"academicCalendar"`
	Structure        map[string]interface{} `json:"structure"`
}

// UpdateInstitutionRequest is the partial payload for PUT /api/institutions/:id
type UpdateInstitutionRequest struct {
	Name             *string                `json:"name" validate:"omitempty,max=255"`
	Type             *string                `json:"type" validate:"omitempty,oneof=high-school university technical international"`
	EducationSystem  *string                `json:"educationSystem" validate:"omitempty,oneof=british american ib custom"`
	Location         *string                `json:"location"`
	Size             *string                `json:"size"`
	AcademicCalendar map[string]interface{} `json:"academicCalendar"`
	Structure        map[string]interface{} `json:"structure"`
}

// InstitutionStats is the aggregate returned by GET /api/institutions/:id/stats.
// ClassroomUsage is a rough utilization heuristic, not a real scheduling
// measure: round(slots / (classrooms * 40) * 100), clamped to [0,100].
type InstitutionStats struct {
	TotalStudents  int `json:"totalStudents"`
	ActiveCourses  int `json:"activeCourses"`
	FacultyMembers int `json:"facultyMembers"`
	ClassroomUsage int `json:"classroomUsage"`
}
