package db_models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type BookingItemKind string

const (
	ItemPrimary BookingItemKind = "primary"
	ItemExtra   BookingItemKind = "extra"
)

type Booking struct {
	BaseModel
	ClientID             uuid.UUID  `gorm:"type:uuid;index;not null"`
	ServiceID            uuid.UUID  `gorm:"type:uuid;index;not null"`
	ClientSubscriptionID *uuid.UUID `gorm:"type:uuid;index"`
	AppointmentDate      time.Time  `gorm:"not null"`
	Status               BookingStatus `gorm:"not null;default:scheduled"`
	Notes                *string

	Items []BookingItem `gorm:"foreignKey:BookingID"`
}

// BookingItem is one priced line on a booking. The total is always
// derived as the sum of lines, never stored, so a missed update path
// cannot leave it stale.
type BookingItem struct {
	BaseModel
	BookingID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ServiceID uuid.UUID       `gorm:"type:uuid;not null"`
	Kind      BookingItemKind `gorm:"not null"`
	Price     float64         `gorm:"type:decimal(10,2);not null"`
}

func (b *Booking) TotalPrice() float64 {
	var total float64
	for _, it := range b.Items {
		total += it.Price
	}
	return total
}

// AdditionalServiceIDs returns the service ids of the extra lines, in
// insertion order.
func (b *Booking) AdditionalServiceIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Items))
	for _, it := range b.Items {
		if it.Kind == ItemExtra {
			ids = append(ids, it.ServiceID)
		}
	}
	return ids
}

func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}
