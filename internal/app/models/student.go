package models

import "time"

// Student defines the student model based on the 'students' table.
// StudentID is the human-facing enrollment number and is unique across the
// whole system, not just within an institution.
type Student struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"userId" db:"user_id"`
	InstitutionID    int64     `json:"institutionId" db:"institution_id"`
	StudentID        string    `json:"studentId" db:"student_id"`
	Program          *string   `json:"program,omitempty" db:"program"`
	YearOfStudy      *int      `json:"yearOfStudy,omitempty" db:"year_of_study"`
	AcademicStanding string    `json:"academicStanding" db:"academic_standing"`
	GPA              *float64  `json:"gpa,omitempty" db:"gpa"`
	Credits          int       `json:"credits" db:"credits"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}
