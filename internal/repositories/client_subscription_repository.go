package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
	"salonsage/pkg/utils"
)

type ClientSubscriptionRepository interface {
	GetAll(ctx context.Context) ([]dbm.ClientSubscription, error)
	GetByClientID(ctx context.Context, clientID uuid.UUID) ([]dbm.ClientSubscription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.ClientSubscription, error)
	Create(ctx context.Context, cs *dbm.ClientSubscription) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.ClientSubscription, error)
	// Scale applies a signed adjustment to both remaining_uses and
	// scaled_usage_limit in one guarded statement. A negative delta
	// that would drive remaining_uses below zero fails with
	// ErrRemoveExceedsRemain and leaves the row untouched.
	Scale(ctx context.Context, id uuid.UUID, delta int) (*dbm.ClientSubscription, error)
}

type clientSubscriptionRepository struct {
	db *gorm.DB
}

func NewClientSubscriptionRepository(db *gorm.DB) ClientSubscriptionRepository {
	return &clientSubscriptionRepository{db: db}
}

func (r *clientSubscriptionRepository) GetAll(ctx context.Context) ([]dbm.ClientSubscription, error) {
	var subs []dbm.ClientSubscription
	err := r.db.WithContext(ctx).Preload("Subscription").Order("purchase_date DESC").Find(&subs).Error
	return subs, err
}

func (r *clientSubscriptionRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]dbm.ClientSubscription, error) {
	var subs []dbm.ClientSubscription
	err := r.db.WithContext(ctx).
		Preload("Subscription").
		Where("client_id = ?", clientID).
		Order("purchase_date DESC").
		Find(&subs).Error
	return subs, err
}

func (r *clientSubscriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.ClientSubscription, error) {
	var cs dbm.ClientSubscription
	err := r.db.WithContext(ctx).Preload("Subscription").First(&cs, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cs, nil
}

func (r *clientSubscriptionRepository) Create(ctx context.Context, cs *dbm.ClientSubscription) error {
	return r.db.WithContext(ctx).Create(cs).Error
}

func (r *clientSubscriptionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.ClientSubscription, error) {
	res := r.db.WithContext(ctx).Model(&dbm.ClientSubscription{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *clientSubscriptionRepository) Scale(ctx context.Context, id uuid.UUID, delta int) (*dbm.ClientSubscription, error) {
	var out *dbm.ClientSubscription

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&dbm.ClientSubscription{}).
			Where("id = ? AND remaining_uses + ? >= 0", id, delta).
			Updates(map[string]interface{}{
				"remaining_uses":     gorm.Expr("remaining_uses + ?", delta),
				"scaled_usage_limit": gorm.Expr("COALESCE(scaled_usage_limit, 0) + ?", delta),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var cs dbm.ClientSubscription
			if err := tx.First(&cs, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrClientSubscriptionNotFound
				}
				return err
			}
			return utils.ErrRemoveExceedsRemain
		}

		var cs dbm.ClientSubscription
		if err := tx.Preload("Subscription").First(&cs, "id = ?", id).Error; err != nil {
			return err
		}
		out = &cs
		return nil
	})

	return out, err
}
