package models

import "time"

// ProcessedEvent records a Stripe webhook event that has already been applied.
// The unique index on EventID makes the paid-marking idempotent under
// at-least-once webhook delivery.
type ProcessedEvent struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   string `gorm:"uniqueIndex;not null;type:VARCHAR(255)"`
	Type      string
	OrderID   string `gorm:"type:VARCHAR(64)"`
	CreatedAt time.Time
}
