package response_models

import "time"

type SubscriptionResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      *string  `json:"description,omitempty"`
	Price            float64  `json:"price"`
	ServicesIncluded []string `json:"servicesIncluded"`
	UsageLimit       int      `json:"usageLimit"`
	IsActive         bool     `json:"isActive"`
}

type ClientSubscriptionResponse struct {
	ID               string     `json:"id"`
	ClientID         string     `json:"clientId"`
	SubscriptionID   string     `json:"subscriptionId"`
	RemainingUses    int        `json:"remainingUses"`
	ScaledUsageLimit *int       `json:"scaledUsageLimit"`
	// CurrentCapacity is usageLimit plus the scaled adjustment.
	CurrentCapacity int        `json:"currentCapacity"`
	PurchaseDate    time.Time  `json:"purchaseDate"`
	ExpiryDate      *time.Time `json:"expiryDate,omitempty"`
	IsActive        bool       `json:"isActive"`
}
