package models

import "time"

// PendingRegistration lets the verify-email screen show who just registered.
type PendingRegistration struct {
	Handle    string    `gorm:"primaryKey;size:36" json:"-"`
	Email     string    `gorm:"not null" json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
