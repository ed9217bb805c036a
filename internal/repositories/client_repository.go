package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
)

type ClientRepository interface {
	GetAll(ctx context.Context) ([]dbm.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Client, error)
	GetByPhone(ctx context.Context, phone string) (*dbm.Client, error)
	Create(ctx context.Context, client *dbm.Client) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.Client, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) GetAll(ctx context.Context) ([]dbm.Client, error) {
	var clients []dbm.Client
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&clients).Error
	return clients, err
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Client, error) {
	var client dbm.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetByPhone(ctx context.Context, phone string) (*dbm.Client, error) {
	var client dbm.Client
	err := r.db.WithContext(ctx).First(&client, "phone = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *dbm.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.Client, error) {
	res := r.db.WithContext(ctx).Model(&dbm.Client{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&dbm.Client{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
