package services

import (
	"context"
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

const testMaxAddUses = 50

func newSubscriptionService(db *gorm.DB) SubscriptionServiceInterface {
	return NewSubscriptionService(
		repositories.NewSubscriptionRepository(db),
		repositories.NewClientSubscriptionRepository(db),
		repositories.NewClientRepository(db),
		testMaxAddUses,
	)
}

func TestPurchaseSubscriptionDefaultsRemainingToLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	client := seedClient(t, db, "333 1234567")
	pkg := seedPackage(t, db, 5)

	out, err := svc.PurchaseSubscription(context.Background(), req.CreateClientSubscriptionRequest{
		ClientID:       client.ID.String(),
		SubscriptionID: pkg.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, out.RemainingUses)
	assert.Equal(t, 5, out.CurrentCapacity)
	assert.Nil(t, out.ScaledUsageLimit)
	assert.True(t, out.IsActive)
}

func TestPurchaseSubscriptionUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	pkg := seedPackage(t, db, 5)

	_, err := svc.PurchaseSubscription(context.Background(), req.CreateClientSubscriptionRequest{
		ClientID:       uuid.New().String(),
		SubscriptionID: pkg.ID.String(),
	})
	assert.ErrorIs(t, err, utils.ErrClientNotFound)
}

func TestScaleAddAndRemove(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	client := seedClient(t, db, "333 1234567")
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 5)

	out, err := svc.Scale(context.Background(), cs.ID, ScaleAdd, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, out.RemainingUses)
	require.NotNil(t, out.ScaledUsageLimit)
	assert.Equal(t, 3, *out.ScaledUsageLimit)
	assert.Equal(t, 8, out.CurrentCapacity)

	out, err = svc.Scale(context.Background(), cs.ID, ScaleRemove, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, out.RemainingUses)
	assert.Equal(t, 1, *out.ScaledUsageLimit)
	assert.Equal(t, 6, out.CurrentCapacity)
}

func TestScaleRemoveMoreThanRemainingRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	client := seedClient(t, db, "333 1234567")
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 3)

	_, err := svc.Scale(context.Background(), cs.ID, ScaleRemove, 4)
	assert.ErrorIs(t, err, utils.ErrRemoveExceedsRemain)

	// The rejected scale must leave both counters untouched.
	var reloaded dbm.ClientSubscription
	require.NoError(t, db.First(&reloaded, "id = ?", cs.ID).Error)
	assert.Equal(t, 3, reloaded.RemainingUses)
	assert.Nil(t, reloaded.ScaledUsageLimit)
}

func TestScaleRemoveToExactlyZeroAllowed(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	client := seedClient(t, db, "333 1234567")
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 3)

	out, err := svc.Scale(context.Background(), cs.ID, ScaleRemove, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, out.RemainingUses)
	require.NotNil(t, out.ScaledUsageLimit)
	assert.Equal(t, -3, *out.ScaledUsageLimit)
	assert.Equal(t, 2, out.CurrentCapacity)
}

func TestScaleAmountBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	client := seedClient(t, db, "333 1234567")
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 5)

	_, err := svc.Scale(context.Background(), cs.ID, ScaleAdd, 0)
	assert.ErrorIs(t, err, utils.ErrScaleAmountTooSmall)

	_, err = svc.Scale(context.Background(), cs.ID, ScaleAdd, testMaxAddUses+1)
	assert.ErrorIs(t, err, utils.ErrScaleAmountTooLarge)

	_, err = svc.Scale(context.Background(), cs.ID, ScaleRemove, -1)
	assert.ErrorIs(t, err, utils.ErrScaleAmountTooSmall)
}

func TestScaleUnknownDirection(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	client := seedClient(t, db, "333 1234567")
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 5)

	_, err := svc.Scale(context.Background(), cs.ID, "sideways", 1)
	assert.ErrorIs(t, err, utils.ErrUnknownScaleDirection)

	var reloaded dbm.ClientSubscription
	require.NoError(t, db.First(&reloaded, "id = ?", cs.ID).Error)
	assert.Equal(t, 5, reloaded.RemainingUses)
}

func TestScaleUnknownSubscription(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)

	_, err := svc.Scale(context.Background(), uuid.New(), ScaleAdd, 1)
	assert.ErrorIs(t, err, utils.ErrClientSubscriptionNotFound)
}

// Full ledger walk: a 5-use package scaled up by 3, drained by five
// booking consumptions, then asked to give back more than remains.
func TestLedgerLifecycle(t *testing.T) {
	db := setupTestDB(t)
	subSvc := newSubscriptionService(db)
	bookingSvc := NewBookingService(
		repositories.NewBookingRepository(db),
		repositories.NewServiceRepository(db),
		repositories.NewClientRepository(db),
	)
	client := seedClient(t, db, "333 1234567")
	service := seedService(t, db, "Taglio e Piega", 85)
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 5)

	out, err := subSvc.Scale(context.Background(), cs.ID, ScaleAdd, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, out.RemainingUses)

	subID := cs.ID.String()
	for i := 0; i < 5; i++ {
		_, err := bookingSvc.CreateBooking(context.Background(), req.CreateBookingRequest{
			ClientID:             client.ID.String(),
			ServiceID:            service.ID.String(),
			ClientSubscriptionID: &subID,
			AppointmentDate:      time.Now().Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	got, err := subSvc.GetClientSubscription(context.Background(), cs.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.RemainingUses)
	assert.Equal(t, 8, got.CurrentCapacity)

	_, err = subSvc.Scale(context.Background(), cs.ID, ScaleRemove, 4)
	assert.ErrorIs(t, err, utils.ErrRemoveExceedsRemain)

	got, err = subSvc.GetClientSubscription(context.Background(), cs.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.RemainingUses)
}

func TestUpdateClientSubscriptionDeactivates(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	client := seedClient(t, db, "333 1234567")
	pkg := seedPackage(t, db, 5)
	cs := seedClientSubscription(t, db, client, pkg, 5)

	inactive := false
	out, err := svc.UpdateClientSubscription(context.Background(), cs.ID, req.UpdateClientSubscriptionRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Equal(t, 5, out.RemainingUses)
}

func TestPackageCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)

	created, err := svc.CreatePackage(context.Background(), req.CreateSubscriptionRequest{
		Name:             "Pacchetto Premium",
		Price:            350,
		ServicesIncluded: []string{"Colore", "Trattamento Cheratina"},
		UsageLimit:       5,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	id := uuid.MustParse(created.ID)
	newLimit := 10
	updated, err := svc.UpdatePackage(context.Background(), id, req.UpdateSubscriptionRequest{UsageLimit: &newLimit})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.UsageLimit)

	require.NoError(t, svc.DeletePackage(context.Background(), id))
	_, err = svc.GetPackage(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrSubscriptionNotFound)
}
