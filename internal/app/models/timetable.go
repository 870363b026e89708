package models

import "time"

// TimeSlot defines a recurring weekly time window (day + start/end time)
type TimeSlot struct {
	ID            int64     `json:"id" db:"id"`
	InstitutionID int64     `json:"institutionId" db:"institution_id"`
	Day           string    `json:"day" db:"day"`
	StartTime     string    `json:"startTime" db:"start_time"` // "09:00"
	EndTime       string    `json:"endTime" db:"end_time"`
	Duration      int       `json:"duration" db:"duration"` // minutes
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// TimetableSlot assigns a course to a classroom and time slot with a
// responsible lecturer. Nothing prevents two slots from sharing the same
// classroom/time-slot or lecturer/time-slot pair; double-booking is
// representable and accepted.
type TimetableSlot struct {
	ID              int64     `json:"id" db:"id"`
	InstitutionID   int64     `json:"institutionId" db:"institution_id"`
	CourseID        int64     `json:"courseId" db:"course_id"`
	ClassroomID     int64     `json:"classroomId" db:"classroom_id"`
	TimeSlotID      int64     `json:"timeSlotId" db:"time_slot_id"`
	LecturerID      int64     `json:"lecturerId" db:"lecturer_id"`
	StudentGroups   []string  `json:"studentGroups,omitempty" db:"student_groups"`
	EfficiencyScore *float64  `json:"efficiencyScore,omitempty" db:"efficiency_score"`
	WeatherFactor   *float64  `json:"weatherFactor,omitempty" db:"weather_factor"`
	AcademicYear    string    `json:"academicYear" db:"academic_year"`
	Semester        string    `json:"semester" db:"semester"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
