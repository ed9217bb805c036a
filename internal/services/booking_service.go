package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	dbm "salonsage/internal/models/db_models"
	req "salonsage/internal/models/request_models"
	resp "salonsage/internal/models/response_models"
	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

type BookingServiceInterface interface {
	ListBookings(ctx context.Context, clientID *uuid.UUID) ([]resp.BookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*resp.BookingResponse, error)
	// CreateBooking creates the booking with its primary line item and,
	// when a client subscription is referenced, consumes one use from
	// it atomically with the insert.
	CreateBooking(ctx context.Context, in req.CreateBookingRequest) (*resp.BookingResponse, error)
	// AddExtraServices appends extra line items for the given service
	// ids, ignoring the primary service and services already on the
	// booking. An empty set after filtering is rejected.
	AddExtraServices(ctx context.Context, id uuid.UUID, serviceIDs []uuid.UUID) (*resp.BookingResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status dbm.BookingStatus) (*resp.BookingResponse, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, in req.UpdateBookingRequest) (*resp.BookingResponse, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
	clientRepo  repositories.ClientRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
	clientRepo repositories.ClientRepository,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		clientRepo:  clientRepo,
	}
}

func (s *BookingService) ListBookings(ctx context.Context, clientID *uuid.UUID) ([]resp.BookingResponse, error) {
	var (
		bookings []dbm.Booking
		err      error
	)
	if clientID != nil {
		bookings, err = s.bookingRepo.GetByClientID(ctx, *clientID)
	} else {
		bookings, err = s.bookingRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]resp.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, resp.NewBookingResponse(&bookings[i]))
	}
	return out, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*resp.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	r := resp.NewBookingResponse(booking)
	return &r, nil
}

func (s *BookingService) CreateBooking(ctx context.Context, in req.CreateBookingRequest) (*resp.BookingResponse, error) {
	clientID, err := uuid.Parse(in.ClientID)
	if err != nil {
		return nil, utils.ErrClientNotFound
	}
	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, utils.ErrServiceNotFound
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if client == nil {
		return nil, utils.ErrClientNotFound
	}

	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if service == nil {
		return nil, utils.ErrServiceNotFound
	}

	// The catalog price is a default for the primary line, not a floor.
	price := service.Price
	if in.PriceOverride != nil {
		price = *in.PriceOverride
	}

	var consumeID *uuid.UUID
	if in.ClientSubscriptionID != nil {
		id, err := uuid.Parse(*in.ClientSubscriptionID)
		if err != nil {
			return nil, utils.ErrClientSubscriptionNotFound
		}
		consumeID = &id
	}

	booking := dbm.Booking{
		ClientID:             clientID,
		ServiceID:            serviceID,
		ClientSubscriptionID: consumeID,
		AppointmentDate:      in.AppointmentDate,
		Status:               dbm.BookingScheduled,
		Notes:                in.Notes,
		Items: []dbm.BookingItem{
			{ServiceID: serviceID, Kind: dbm.ItemPrimary, Price: price},
		},
	}

	if err := s.bookingRepo.Create(ctx, &booking, consumeID); err != nil {
		if errors.Is(err, utils.ErrClientSubscriptionNotFound) ||
			errors.Is(err, utils.ErrSubscriptionInactive) ||
			errors.Is(err, utils.ErrNoRemainingUses) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	r := resp.NewBookingResponse(&booking)
	return &r, nil
}

func (s *BookingService) AddExtraServices(ctx context.Context, id uuid.UUID, serviceIDs []uuid.UUID) (*resp.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	present := map[uuid.UUID]bool{booking.ServiceID: true}
	for _, it := range booking.Items {
		present[it.ServiceID] = true
	}

	toAdd := make([]uuid.UUID, 0, len(serviceIDs))
	for _, sid := range serviceIDs {
		if !present[sid] {
			present[sid] = true
			toAdd = append(toAdd, sid)
		}
	}
	if len(toAdd) == 0 {
		return nil, utils.ErrNoNewServices
	}

	services, err := s.serviceRepo.GetByIDs(ctx, toAdd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(services) != len(toAdd) {
		return nil, utils.ErrServiceNotFound
	}

	priceByID := make(map[uuid.UUID]float64, len(services))
	for _, svc := range services {
		priceByID[svc.ID] = svc.Price
	}

	items := make([]dbm.BookingItem, 0, len(toAdd))
	for _, sid := range toAdd {
		items = append(items, dbm.BookingItem{
			ServiceID: sid,
			Kind:      dbm.ItemExtra,
			Price:     priceByID[sid],
		})
	}

	updated, err := s.bookingRepo.AddItems(ctx, id, items)
	if err != nil {
		if errors.Is(err, utils.ErrBookingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	r := resp.NewBookingResponse(updated)
	return &r, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status dbm.BookingStatus) (*resp.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	// scheduled -> completed and scheduled -> cancelled are the only
	// allowed transitions.
	if booking.Status.Terminal() {
		return nil, utils.ErrInvalidStatusChange
	}

	updated, err := s.bookingRepo.Update(ctx, id, map[string]interface{}{"status": status})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if updated == nil {
		return nil, utils.ErrBookingNotFound
	}

	r := resp.NewBookingResponse(updated)
	return &r, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, id uuid.UUID, in req.UpdateBookingRequest) (*resp.BookingResponse, error) {
	fields := map[string]interface{}{}
	if in.AppointmentDate != nil {
		fields["appointment_date"] = *in.AppointmentDate
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}

	if len(fields) == 0 {
		return s.GetBooking(ctx, id)
	}

	updated, err := s.bookingRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if updated == nil {
		return nil, utils.ErrBookingNotFound
	}

	r := resp.NewBookingResponse(updated)
	return &r, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrBookingNotFound
	}
	return nil
}
