package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists values in the device_storage table (sqlite or mysql).
type GormStore struct {
	DB *gorm.DB
}

// NewGorm migrates the storage table and returns the store.
func NewGorm(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.StoredValue{}); err != nil {
		return nil, fmt.Errorf("migrate device storage: %w", err)
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	var row models.StoredValue
	err := s.DB.WithContext(ctx).Where("storage_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return row.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	row := models.StoredValue{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.DB.WithContext(ctx).Where("storage_key = ?", key).Delete(&models.StoredValue{}).Error; err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
