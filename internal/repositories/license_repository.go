package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
)

type LicenseRepository interface {
	GetAll(ctx context.Context) ([]dbm.LicenseKey, error)
	GetByKey(ctx context.Context, key string) (*dbm.LicenseKey, error)
	Create(ctx context.Context, license *dbm.LicenseKey) error
}

type licenseRepository struct {
	db *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) LicenseRepository {
	return &licenseRepository{db: db}
}

func (r *licenseRepository) GetAll(ctx context.Context) ([]dbm.LicenseKey, error) {
	var keys []dbm.LicenseKey
	err := r.db.WithContext(ctx).Find(&keys).Error
	return keys, err
}

func (r *licenseRepository) GetByKey(ctx context.Context, key string) (*dbm.LicenseKey, error) {
	var license dbm.LicenseKey
	err := r.db.WithContext(ctx).First(&license, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &license, nil
}

func (r *licenseRepository) Create(ctx context.Context, license *dbm.LicenseKey) error {
	return r.db.WithContext(ctx).Create(license).Error
}
