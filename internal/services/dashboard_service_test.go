package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	req "salonsage/internal/models/request_models"
	"salonsage/internal/repositories"
)

func newDashboardService(db *gorm.DB) DashboardServiceInterface {
	return NewDashboardService(
		repositories.NewDashboardRepository(db),
		repositories.NewServiceRepository(db),
	)
}

func TestBuildDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	dashSvc := newDashboardService(db)
	bookingSvc := newBookingService(db)

	maria := seedClient(t, db, "333 0000001")
	giulia := seedClient(t, db, "333 0000002")
	cut := seedService(t, db, "Taglio e Piega", 85)
	color := seedService(t, db, "Colore", 65)
	pkg := seedPackage(t, db, 5)
	seedClientSubscription(t, db, maria, pkg, 5)

	// Two cuts and one color, all booked midday today so the day
	// boundary cannot move them.
	now := time.Now()
	midday := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	for _, in := range []req.CreateBookingRequest{
		{ClientID: maria.ID.String(), ServiceID: cut.ID.String(), AppointmentDate: midday},
		{ClientID: giulia.ID.String(), ServiceID: cut.ID.String(), AppointmentDate: midday.Add(time.Hour)},
		{ClientID: giulia.ID.String(), ServiceID: color.ID.String(), AppointmentDate: midday.Add(2 * time.Hour)},
	} {
		_, err := bookingSvc.CreateBooking(context.Background(), in)
		require.NoError(t, err)
	}

	report, err := dashSvc.BuildDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Stats.ActiveClients)
	assert.Equal(t, 1, report.Stats.ActiveSubscriptions)
	assert.Equal(t, 50, report.Stats.SubscriptionRate)
	assert.Equal(t, 235.0, report.Stats.MonthlyRevenue)
	assert.Equal(t, 3, report.Stats.TodayAppointments)
	assert.Len(t, report.TodayBookings, 3)

	require.Len(t, report.ServiceAnalytics, 2)
	assert.Equal(t, "Taglio e Piega", report.ServiceAnalytics[0].Name)
	assert.Equal(t, 2, report.ServiceAnalytics[0].Bookings)
	assert.Equal(t, 100, report.ServiceAnalytics[0].Percentage)
	assert.Equal(t, "Colore", report.ServiceAnalytics[1].Name)
	assert.Equal(t, 50, report.ServiceAnalytics[1].Percentage)
}

func TestBuildDashboardEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	dashSvc := newDashboardService(db)

	report, err := dashSvc.BuildDashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Stats.ActiveClients)
	assert.Zero(t, report.Stats.MonthlyRevenue)
	assert.Zero(t, report.Stats.SubscriptionRate)
	assert.Empty(t, report.TodayBookings)
}
