package models

import "time"

// KeyValue is a single entry of the local key-value persistence.
type KeyValue struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}
