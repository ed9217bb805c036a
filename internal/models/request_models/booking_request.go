package request_models

import "time"

type CreateBookingRequest struct {
	ClientID             string    `json:"clientId" binding:"required,uuid4"`
	ServiceID            string    `json:"serviceId" binding:"required,uuid4"`
	ClientSubscriptionID *string   `json:"clientSubscriptionId" binding:"omitempty,uuid4"`
	AppointmentDate      time.Time `json:"appointmentDate" binding:"required"`
	// PriceOverride replaces the primary service's nominal price on the
	// primary line item. The nominal price is a default, not a floor.
	PriceOverride *float64 `json:"priceOverride" binding:"omitempty,gte=0"`
	Notes         *string  `json:"notes"`
}

type AddExtraServicesRequest struct {
	ServiceIDs []string `json:"serviceIds" binding:"required,min=1,dive,uuid4"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled"`
}

type UpdateBookingRequest struct {
	AppointmentDate *time.Time `json:"appointmentDate"`
	Notes           *string    `json:"notes"`
}
