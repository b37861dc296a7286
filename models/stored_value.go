package models

import "time"

// StoredValue is one durable key of a device, persisted by the gorm store.
type StoredValue struct {
	Key       string    `gorm:"column:storage_key;primaryKey;type:varchar(191)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (StoredValue) TableName() string {
	return "device_storage"
}
