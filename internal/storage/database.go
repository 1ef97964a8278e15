package storage

import (
	"context"
	"fmt"

	"github.com/finwise/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Database is a KeyValue backed by the key_values table.
type Database struct {
	db *gorm.DB
}

// NewDatabase returns a KeyValue for the database.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) Get(ctx context.Context, key string) (string, bool, error) {
	var entries []models.KeyValue
	err := d.db.WithContext(ctx).Where(&models.KeyValue{Key: key}).Limit(1).Find(&entries).Error
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}

	if len(entries) == 0 {
		return "", false, nil
	}

	return entries[0].Value, true, nil
}

func (d *Database) Set(ctx context.Context, key, value string) error {
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.KeyValue{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}

	return nil
}
