package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
)

type ServiceRepository interface {
	GetAll(ctx context.Context) ([]dbm.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Service, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]dbm.Service, error)
	Create(ctx context.Context, service *dbm.Service) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.Service, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]dbm.Service, error) {
	var services []dbm.Service
	err := r.db.WithContext(ctx).Order("name").Find(&services).Error
	return services, err
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Service, error) {
	var service dbm.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]dbm.Service, error) {
	var services []dbm.Service
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error
	return services, err
}

func (r *serviceRepository) Create(ctx context.Context, service *dbm.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.Service, error) {
	res := r.db.WithContext(ctx).Model(&dbm.Service{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&dbm.Service{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
