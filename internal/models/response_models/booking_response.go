package response_models

import (
	"time"

	dbm "salonsage/internal/models/db_models"
)

type BookingItemResponse struct {
	ServiceID string  `json:"serviceId"`
	Kind      string  `json:"kind"`
	Price     float64 `json:"price"`
}

type BookingResponse struct {
	ID                   string                `json:"id"`
	ClientID             string                `json:"clientId"`
	ServiceID            string                `json:"serviceId"`
	AdditionalServices   []string              `json:"additionalServices"`
	ClientSubscriptionID *string               `json:"clientSubscriptionId,omitempty"`
	AppointmentDate      time.Time             `json:"appointmentDate"`
	TotalPrice           float64               `json:"totalPrice"`
	Status               string                `json:"status"`
	Notes                *string               `json:"notes,omitempty"`
	Items                []BookingItemResponse `json:"items"`
	CreatedAt            int64                 `json:"createdAt"`
}

func NewBookingResponse(b *dbm.Booking) BookingResponse {
	items := make([]BookingItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BookingItemResponse{
			ServiceID: it.ServiceID.String(),
			Kind:      string(it.Kind),
			Price:     it.Price,
		})
	}

	extras := make([]string, 0)
	for _, id := range b.AdditionalServiceIDs() {
		extras = append(extras, id.String())
	}

	var subID *string
	if b.ClientSubscriptionID != nil {
		s := b.ClientSubscriptionID.String()
		subID = &s
	}

	return BookingResponse{
		ID:                   b.ID.String(),
		ClientID:             b.ClientID.String(),
		ServiceID:            b.ServiceID.String(),
		AdditionalServices:   extras,
		ClientSubscriptionID: subID,
		AppointmentDate:      b.AppointmentDate,
		TotalPrice:           b.TotalPrice(),
		Status:               string(b.Status),
		Notes:                b.Notes,
		Items:                items,
		CreatedAt:            b.CreatedAt,
	}
}
