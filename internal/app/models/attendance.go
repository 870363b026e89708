package models

import "time"

// AttendanceRecord defines one check-in event for a student. Status stays
// mutable after creation (a late arrival can be excused afterwards).
type AttendanceRecord struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	InstitutionID int64     `json:"institutionId" db:"institution_id"`
	Date          time.Time `json:"date" db:"date"`
	Status        string    `json:"status" db:"status"` // present, absent, late, excused
	CheckInTime   *string   `json:"checkInTime,omitempty" db:"check_in_time"`
	CheckOutTime  *string   `json:"checkOutTime,omitempty" db:"check_out_time"`
	BiometricID   *string   `json:"biometricId,omitempty" db:"biometric_id"`
	DeviceID      *string   `json:"deviceId,omitempty" db:"device_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
