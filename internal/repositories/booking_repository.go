package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
	"salonsage/pkg/utils"
)

type BookingRepository interface {
	GetAll(ctx context.Context) ([]dbm.Booking, error)
	GetByClientID(ctx context.Context, clientID uuid.UUID) ([]dbm.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Booking, error)
	// Create inserts the booking with its line items. When
	// consumeSubscriptionID is set, one use is deducted from that
	// client subscription in the same transaction: either both writes
	// land or neither does.
	Create(ctx context.Context, booking *dbm.Booking, consumeSubscriptionID *uuid.UUID) error
	AddItems(ctx context.Context, bookingID uuid.UUID, items []dbm.BookingItem) (*dbm.Booking, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]dbm.Booking, error) {
	var bookings []dbm.Booking
	err := r.db.WithContext(ctx).Preload("Items").Order("appointment_date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]dbm.Booking, error) {
	var bookings []dbm.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("client_id = ?", clientID).
		Order("appointment_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Booking, error) {
	var booking dbm.Booking
	err := r.db.WithContext(ctx).Preload("Items").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *dbm.Booking, consumeSubscriptionID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if consumeSubscriptionID != nil {
			res := tx.Model(&dbm.ClientSubscription{}).
				Where("id = ? AND is_active = ? AND remaining_uses > 0", *consumeSubscriptionID, true).
				Update("remaining_uses", gorm.Expr("remaining_uses - 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Disambiguate: missing, inactive, or exhausted.
				var cs dbm.ClientSubscription
				if err := tx.First(&cs, "id = ?", *consumeSubscriptionID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return utils.ErrClientSubscriptionNotFound
					}
					return err
				}
				if !cs.IsActive {
					return utils.ErrSubscriptionInactive
				}
				return utils.ErrNoRemainingUses
			}
		}

		return tx.Create(booking).Error
	})
}

func (r *bookingRepository) AddItems(ctx context.Context, bookingID uuid.UUID, items []dbm.BookingItem) (*dbm.Booking, error) {
	var out *dbm.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking dbm.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrBookingNotFound
			}
			return err
		}

		for i := range items {
			items[i].BookingID = bookingID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		if err := tx.Preload("Items").First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		out = &booking
		return nil
	})

	return out, err
}

func (r *bookingRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*dbm.Booking, error) {
	res := r.db.WithContext(ctx).Model(&dbm.Booking{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&dbm.BookingItem{}, "booking_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&dbm.Booking{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrBookingNotFound
		}
		return nil
	})
	if errors.Is(err, utils.ErrBookingNotFound) {
		return false, nil
	}
	return err == nil, err
}
