package models

import "time"

// Setting is a single key-value row in the local database. It backs both
// the per-user attendance session keys and the stored login credentials.
type Setting struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
