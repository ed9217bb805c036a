package db_models

import "time"

type LicenseKey struct {
	BaseModel
	Key        string `gorm:"uniqueIndex;not null"`
	IsActive   bool   `gorm:"default:true"`
	ExpiryDate *time.Time
	Features   []string `gorm:"serializer:json;not null"`
}

func (k *LicenseKey) Valid(now time.Time) bool {
	if !k.IsActive {
		return false
	}
	if k.ExpiryDate != nil && k.ExpiryDate.Before(now) {
		return false
	}
	return true
}
