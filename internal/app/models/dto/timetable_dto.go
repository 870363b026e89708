package dto

// CreateTimeSlotRequest is the payload for POST /api/time-slots
type CreateTimeSlotRequest struct {
	InstitutionID int64  `json:"institutionId" binding:"required" validate:"required,gt=0"`
	Day           string `json:"day" binding:"required" validate:"required,max=20"`
	StartTime     string `json:"startTime" binding:"required" validate:"required,max=10"`
	EndTime       string `json:"endTime" binding:"required" validate:"required,max=10"`
	Duration      int    `json:"duration" binding:"required" validate:"required,gt=0"`
}

// UpdateTimeSlotRequest is the partial payload for PUT /api/time-slots/:id
type UpdateTimeSlotRequest struct {
	Day       *string `json:"day" validate:"omitempty,max=20"`
	StartTime *string `json:"startTime" validate:"omitempty,max=10"`
	EndTime   *string `json:"endTime" validate:"omitempty,max=10"`
	Duration  *int    `json:"duration" validate:"omitempty,gt=0"`
}

// CreateTimetableSlotRequest is the payload for POST /api/timetable.
// There is deliberately no conflict check against existing slots for the
// same classroom or lecturer; double-booked entries are stored as-is.
type CreateTimetableSlotRequest struct {
	InstitutionID int64    `json:"institutionId" binding:"required" validate:"required,gt=0"`
	CourseID      int64    `json:"courseId" binding:"required" validate:"required,gt=0"`
	ClassroomID   int64    `json:"classroomId" binding:"required" validate:"required,gt=0"`
	TimeSlotID    int64    `json:"timeSlotId" binding:"required" validate:"required,gt=0"`
	LecturerID    int64    `json:"lecturerId" binding:"required" validate:"required,gt=0"`
	StudentGroups []string `json:"studentGroups"`
	AcademicYear  string   `json:"academicYear" binding:"required" validate:"required,max=20"`
	Semester      string   `json:"semester" binding:"required" validate:"required,max=20"`
}

// UpdateTimetableSlotRequest is the partial payload for PUT /api/timetable/:id
type UpdateTimetableSlotRequest struct {
	CourseID      *int64   `json:"courseId" validate:"omitempty,gt=0"`
	ClassroomID   *int64   `json:"classroomId" validate:"omitempty,gt=0"`
	TimeSlotID    *int64   `json:"timeSlotId" validate:"omitempty,gt=0"`
	LecturerID    *int64   `json:"lecturerId" validate:"omitempty,gt=0"`
	StudentGroups []string `json:"studentGroups"`
	AcademicYear  *string  `json:"academicYear" validate:"omitempty,max=20"`
	Semester      *string  `json:"semester" validate:"omitempty,max=20"`
}
