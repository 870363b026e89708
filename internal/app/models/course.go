package models

import "time"

// Course defines the course model based on the 'courses' table
type Course struct {
	ID                  int64                  `json:"id" db:"id"`
	CourseCode          string                 `json:"courseCode" db:"course_code"`
	Name                string                 `json:"name" db:"name"`
	InstitutionID       int64                  `json:"institutionId" db:"institution_id"`
	DepartmentID        *int64                 `json:"departmentId,omitempty" db:"department_id"`
	Credits             int                    `json:"credits" db:"credits"`
	HoursPerWeek        int                    `json:"hoursPerWeek" db:"hours_per_week"`
	DifficultyWeight    int                    `json:"difficultyWeight" db:"difficulty_weight"`
	Prerequisites       []string               `json:"prerequisites,omitempty" db:"prerequisites"`
	LecturerID          *int64                 `json:"lecturerId,omitempty" db:"lecturer_id"`
	AssessmentStructure map[string]interface{} `json:"assessmentStructure,omitempty" db:"assessment_structure"`
	CreatedAt           time.Time              `json:"createdAt" db:"created_at"`
}
