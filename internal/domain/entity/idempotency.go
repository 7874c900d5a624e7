package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores processed bill submissions to prevent duplicates.
// The API has no user accounts, so keys are scoped to the submitting
// client's IP instead.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"size:255;not null;uniqueIndex:idx_idem_key_client"` // The idempotency key from client
	ClientIP     string    `gorm:"size:45;not null;uniqueIndex:idx_idem_key_client"`
	Endpoint     string    `gorm:"size:255;not null"` // e.g. "POST /api/v1/bill"
	ResponseCode int       `gorm:"not null"`          // HTTP status code of original response
	ResponseBody string    `gorm:"type:text"`         // JSON response body (cached)
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
