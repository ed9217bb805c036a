package request_models

import "time"

type CreateSubscriptionRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      *string  `json:"description"`
	Price            float64  `json:"price" binding:"required,gte=0"`
	ServicesIncluded []string `json:"servicesIncluded" binding:"required,min=1"`
	UsageLimit       int      `json:"usageLimit" binding:"required,gte=1"`
	IsActive         *bool    `json:"isActive"`
}

type UpdateSubscriptionRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Price            *float64 `json:"price" binding:"omitempty,gte=0"`
	ServicesIncluded []string `json:"servicesIncluded"`
	UsageLimit       *int     `json:"usageLimit" binding:"omitempty,gte=1"`
	IsActive         *bool    `json:"isActive"`
}

type CreateClientSubscriptionRequest struct {
	ClientID       string     `json:"clientId" binding:"required,uuid4"`
	SubscriptionID string     `json:"subscriptionId" binding:"required,uuid4"`
	// RemainingUses defaults to the package's usage limit when omitted.
	RemainingUses *int       `json:"remainingUses" binding:"omitempty,gte=0"`
	ExpiryDate    *time.Time `json:"expiryDate"`
}

type UpdateClientSubscriptionRequest struct {
	ExpiryDate *time.Time `json:"expiryDate"`
	IsActive   *bool      `json:"isActive"`
}

type ScaleSubscriptionRequest struct {
	Direction string `json:"direction" binding:"required,oneof=add remove"`
	Amount    int    `json:"amount" binding:"required,gte=1"`
}
