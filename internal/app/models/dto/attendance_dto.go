package dto

import "time"

// CreateAttendanceRequest is the payload for POST /api/attendance.
// Date travels as a bare calendar day ("2026-03-15"), not RFC3339.
type CreateAttendanceRequest struct {
	StudentID     int64   `json:"studentId" binding:"required" validate:"required,gt=0"`
	InstitutionID int64   `json:"institutionId" binding:"required" validate:"required,gt=0"`
	Date          string  `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	Status        string  `json:"status" binding:"required" validate:"required,oneof=present absent late excused"`
	CheckInTime   *string `json:"checkInTime" validate:"omitempty,max=10"`
	CheckOutTime  *string `json:"checkOutTime" validate:"omitempty,max=10"`
	BiometricID   *string `json:"biometricId" validate:"omitempty,max=255"`
	DeviceID      *string `json:"deviceId" validate:"omitempty,max=255"`
}

// UpdateAttendanceRequest is the partial payload for PUT /api/attendance/:id.
// Status stays mutable after the check-in event happened.
type UpdateAttendanceRequest struct {
	Status       *string `json:"status" validate:"omitempty,oneof=present absent late excused"`
	CheckInTime  *string `json:"checkInTime" validate:"omitempty,max=10"`
	CheckOutTime *string `json:"checkOutTime" validate:"omitempty,max=10"`
}

// CreateIntegrationRequest is the payload for POST /api/integrations
type CreateIntegrationRequest struct {
	InstitutionID int64                  `json:"institutionId" binding:"required" validate:"required,gt=0"`
	Name          string                 `json:"name" binding:"required" validate:"required,max=255"`
	Type          string                 `json:"type" binding:"required" validate:"required,max=100"`
	Endpoint      string                 `json:"endpoint" binding:"required" validate:"required,url"`
	APIKey        string                 `json:"apiKey" binding:"required" validate:"required"`
	Configuration map[string]interface{} `json:"configuration"`
	IsActive      *bool                  `json:"isActive"`
}

// UpdateIntegrationRequest is the partial payload for PUT /api/integrations/:id
type UpdateIntegrationRequest struct {
	Name          *string                `json:"name" validate:"omitempty,max=255"`
	Type          *string                `json:"type" validate:"omitempty,max=100"`
	Endpoint      *string                `json:"endpoint" validate:"omitempty,url"`
	APIKey        *string                `json:"apiKey"`
	Configuration map[string]interface{} `json:"configuration"`
	IsActive      *bool                  `json:"isActive"`
	LastSync      *time.Time             `json:"lastSync"`
}
