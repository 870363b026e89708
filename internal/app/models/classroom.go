package models

import "time"

// Classroom defines a physical room based on the 'classrooms' table
type Classroom struct {
	ID            int64     `json:"id" db:"id"`
	RoomNumber    string    `json:"roomNumber" db:"room_number"`
	InstitutionID int64     `json:"institutionId" db:"institution_id"`
	Building      *string   `json:"building,omitempty" db:"building"`
	Capacity      int       `json:"capacity" db:"capacity"`
	Equipment     []string  `json:"equipment,omitempty" db:"equipment"`
	RoomType      string    `json:"roomType" db:"room_type"` // lecture, lab, seminar...
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
