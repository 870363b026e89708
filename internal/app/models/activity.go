package models

import "time"

// ActivityLog is one row of the append-only audit trail. Rows are written as
// a side effect of mutating operations and are never updated or deleted.
type ActivityLog struct {
	ID            int64                  `json:"id" db:"id"`
	InstitutionID int64                  `json:"institutionId" db:"institution_id"`
	UserID        int64                  `json:"userId" db:"user_id"`
	Action        string                 `json:"action" db:"action"`
	Description   string                 `json:"description" db:"description"`
	Metadata      map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	CreatedAt     time.Time              `json:"createdAt" db:"created_at"`
}
