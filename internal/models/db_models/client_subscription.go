package db_models

import (
	"time"

	"github.com/google/uuid"
)

// ClientSubscription is a client's purchased instance of a package.
// RemainingUses must never go below zero; every mutation path guards
// it. ScaledUsageLimit is the cumulative signed adjustment an operator
// has applied on top of the package's nominal UsageLimit, so current
// capacity is UsageLimit + coalesce(ScaledUsageLimit, 0).
type ClientSubscription struct {
	BaseModel
	ClientID         uuid.UUID `gorm:"type:uuid;index;not null"`
	SubscriptionID   uuid.UUID `gorm:"type:uuid;index;not null"`
	RemainingUses    int       `gorm:"not null"`
	ScaledUsageLimit *int
	PurchaseDate     time.Time `gorm:"not null"`
	ExpiryDate       *time.Time
	IsActive         bool `gorm:"default:true"`

	Client       Client       `gorm:"foreignKey:ClientID"`
	Subscription Subscription `gorm:"foreignKey:SubscriptionID"`
}
