package models

import "time"

// ApiIntegration defines an external API connection owned by an institution
type ApiIntegration struct {
	ID            int64                  `json:"id" db:"id"`
	InstitutionID int64                  `json:"institutionId" db:"institution_id"`
	Name          string                 `json:"name" db:"name"`
	Type          string                 `json:"type" db:"type"`
	Endpoint      string                 `json:"endpoint" db:"endpoint"`
	APIKey        string                 `json:"apiKey" db:"api_key"`
	Configuration map[string]interface{} `json:"configuration,omitempty" db:"configuration"`
	IsActive      bool                   `json:"isActive" db:"is_active"`
	LastSync      *time.Time             `json:"lastSync,omitempty" db:"last_sync"`
	CreatedAt     time.Time              `json:"createdAt" db:"created_at"`
}
