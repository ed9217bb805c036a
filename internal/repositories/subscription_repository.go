package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
)

type SubscriptionRepository interface {
	GetAll(ctx context.Context) ([]dbm.Subscription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Subscription, error)
	Create(ctx context.Context, subscription *dbm.Subscription) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.Subscription, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetAll(ctx context.Context) ([]dbm.Subscription, error) {
	var subscriptions []dbm.Subscription
	err := r.db.WithContext(ctx).Order("name").Find(&subscriptions).Error
	return subscriptions, err
}

func (r *subscriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Subscription, error) {
	var subscription dbm.Subscription
	err := r.db.WithContext(ctx).First(&subscription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *dbm.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.Subscription, error) {
	res := r.db.WithContext(ctx).Model(&dbm.Subscription{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&dbm.Subscription{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
