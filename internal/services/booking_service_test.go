package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
	req "salonsage/internal/models/request_models"
	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

func newBookingService(db *gorm.DB) BookingServiceInterface {
	return NewBookingService(
		repositories.NewBookingRepository(db),
		repositories.NewServiceRepository(db),
		repositories.NewClientRepository(db),
	)
}

func TestCreateBookingUsesCatalogPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)

	out, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:        client.ID.String(),
		ServiceID:       service.ID.String(),
		AppointmentDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", out.Status)
	assert.Equal(t, 85.0, out.TotalPrice)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "primary", out.Items[0].Kind)
}

func TestCreateBookingPriceOverride(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)

	override := 100.0
	out, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:        client.ID.String(),
		ServiceID:       service.ID.String(),
		AppointmentDate: time.Now().Add(time.Hour),
		PriceOverride:   &override,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.TotalPrice)
}

func TestTotalIsSumOfLineItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	primary := seedService(t, db, "Manicure", 45)
	gel := seedService(t, db, "Gel", 15)
	design := seedService(t, db, "Nail Art", 20)

	out, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:        client.ID.String(),
		ServiceID:       primary.ID.String(),
		AppointmentDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	out, err = svc.AddExtraServices(context.Background(), uuid.MustParse(out.ID), []uuid.UUID{gel.ID, design.ID})
	require.NoError(t, err)

	assert.Equal(t, 80.0, out.TotalPrice)
	assert.ElementsMatch(t, []string{gel.ID.String(), design.ID.String()}, out.AdditionalServices)
	assert.Len(t, out.Items, 3)
}

func TestAddExtraServicesIgnoresDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	primary := seedService(t, db, "Manicure", 45)
	gel := seedService(t, db, "Gel", 15)

	out, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:        client.ID.String(),
		ServiceID:       primary.ID.String(),
		AppointmentDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(out.ID)

	// The primary service and a repeated id collapse into one new line.
	out, err = svc.AddExtraServices(context.Background(), bookingID, []uuid.UUID{primary.ID, gel.ID, gel.ID})
	require.NoError(t, err)
	assert.Equal(t, 60.0, out.TotalPrice)
	assert.Len(t, out.Items, 2)

	// Re-adding only already present services leaves nothing to add.
	_, err = svc.AddExtraServices(context.Background(), bookingID, []uuid.UUID{primary.ID, gel.ID})
	assert.ErrorIs(t, err, utils.ErrNoNewServices)
}

func TestAddExtraServicesUnknownService(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	primary := seedService(t, db, "Manicure", 45)

	out, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:        client.ID.String(),
		ServiceID:       primary.ID.String(),
		AppointmentDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.AddExtraServices(context.Background(), uuid.MustParse(out.ID), []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, utils.ErrServiceNotFound)
}

func TestCreateBookingConsumesOneUse(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 5)

	subID := cs.ID.String()
	out, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:             client.ID.String(),
		ServiceID:            service.ID.String(),
		ClientSubscriptionID: &subID,
		AppointmentDate:      time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, out.ClientSubscriptionID)
	assert.Equal(t, subID, *out.ClientSubscriptionID)

	var reloaded dbm.ClientSubscription
	require.NoError(t, db.First(&reloaded, "id = ?", cs.ID).Error)
	assert.Equal(t, 4, reloaded.RemainingUses)
}

func TestCreateBookingRejectedWhenNoRemainingUses(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 0)

	subID := cs.ID.String()
	_, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:             client.ID.String(),
		ServiceID:            service.ID.String(),
		ClientSubscriptionID: &subID,
		AppointmentDate:      time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, utils.ErrNoRemainingUses)

	// The failed consume must not leave a booking behind.
	var bookingCount int64
	require.NoError(t, db.Model(&dbm.Booking{}).Count(&bookingCount).Error)
	assert.Zero(t, bookingCount)

	var reloaded dbm.ClientSubscription
	require.NoError(t, db.First(&reloaded, "id = ?", cs.ID).Error)
	assert.Equal(t, 0, reloaded.RemainingUses)
}

func TestCreateBookingRejectedWhenSubscriptionInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 5)
	require.NoError(t, db.Model(&dbm.ClientSubscription{}).Where("id = ?", cs.ID).Update("is_active", false).Error)

	subID := cs.ID.String()
	_, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:             client.ID.String(),
		ServiceID:            service.ID.String(),
		ClientSubscriptionID: &subID,
		AppointmentDate:      time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, utils.ErrSubscriptionInactive)
}

func TestLastUseConsumedExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 1)

	subID := cs.ID.String()
	makeBooking := func() error {
		_, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
			ClientID:             client.ID.String(),
			ServiceID:            service.ID.String(),
			ClientSubscriptionID: &subID,
			AppointmentDate:      time.Now().Add(time.Hour),
		})
		return err
	}

	require.NoError(t, makeBooking())
	assert.ErrorIs(t, makeBooking(), utils.ErrNoRemainingUses)

	var reloaded dbm.ClientSubscription
	require.NoError(t, db.First(&reloaded, "id = ?", cs.ID).Error)
	assert.Equal(t, 0, reloaded.RemainingUses)
}

func TestConcurrentBookingsRaceForLastUse(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 1)

	subID := cs.ID.String()
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
				ClientID:             client.ID.String(),
				ServiceID:            service.ID.String(),
				ClientSubscriptionID: &subID,
				AppointmentDate:      time.Now().Add(time.Hour),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, utils.ErrNoRemainingUses):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	var bookingCount int64
	require.NoError(t, db.Model(&dbm.Booking{}).Count(&bookingCount).Error)
	assert.EqualValues(t, 1, bookingCount)

	var reloaded dbm.ClientSubscription
	require.NoError(t, db.First(&reloaded, "id = ?", cs.ID).Error)
	assert.Equal(t, 0, reloaded.RemainingUses)
}

func TestUpdateStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)

	out, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:        client.ID.String(),
		ServiceID:       service.ID.String(),
		AppointmentDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	id := uuid.MustParse(out.ID)

	out, err = svc.UpdateStatus(context.Background(), id, dbm.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, "completed", out.Status)

	// Terminal states cannot change again.
	_, err = svc.UpdateStatus(context.Background(), id, dbm.BookingCancelled)
	assert.ErrorIs(t, err, utils.ErrInvalidStatusChange)
}

func TestDeleteBookingRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	client := seedClient(t, db, "333 1234567")
	primary := seedService(t, db, "Manicure", 45)
	gel := seedService(t, db, "Gel", 15)

	out, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:        client.ID.String(),
		ServiceID:       primary.ID.String(),
		AppointmentDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	id := uuid.MustParse(out.ID)

	_, err = svc.AddExtraServices(context.Background(), id, []uuid.UUID{gel.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(context.Background(), id))

	var itemCount int64
	require.NoError(t, db.Model(&dbm.BookingItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	_, err = svc.GetBooking(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}

func TestListBookingsFilteredByClient(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	alice := seedClient(t, db, "333 0000001")
	bruna := seedClient(t, db, "333 0000002")
	service := seedService(t, db, "Taglio e Piega", 85)

	for _, c := range []*dbm.Client{alice, alice, bruna} {
		_, err := svc.CreateBooking(context.Background(), req.CreateBookingRequest{
			ClientID:        c.ID.String(),
			ServiceID:       service.ID.String(),
			AppointmentDate: time.Now().Add(time.Hour),
		})
		require.NoError(t, err)
	}

	all, err := svc.ListBookings(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.ListBookings(context.Background(), &alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
