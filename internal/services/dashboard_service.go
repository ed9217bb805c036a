package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	resp "salonsage/internal/models/response_models"
	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

const todayBookingsLimit = 5

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context) (*resp.DashboardReport, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
	serviceRepo   repositories.ServiceRepository
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepository,
	serviceRepo repositories.ServiceRepository,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		serviceRepo:   serviceRepo,
	}
}

func (s *DashboardService) BuildDashboard(ctx context.Context) (*resp.DashboardReport, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	clientCount, err := s.dashboardRepo.CountClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	activeSubs, err := s.dashboardRepo.CountActiveClientSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	revenue, err := s.dashboardRepo.RevenueSince(ctx, monthStart.Unix())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	todayBookings, err := s.dashboardRepo.BookingsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	counts, err := s.dashboardRepo.ServiceBookingCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	countByService := make(map[string]int64, len(counts))
	var maxBookings int64
	for _, row := range counts {
		countByService[row.ServiceID] = row.Count
		if row.Count > maxBookings {
			maxBookings = row.Count
		}
	}

	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	analytics := make([]resp.ServiceAnalytics, 0, len(services))
	for _, svc := range services {
		count := countByService[svc.ID.String()]
		percentage := 0
		if maxBookings > 0 {
			percentage = int(math.Round(float64(count) / float64(maxBookings) * 100))
		}
		analytics = append(analytics, resp.ServiceAnalytics{
			ID:         svc.ID.String(),
			Name:       svc.Name,
			Bookings:   int(count),
			Percentage: percentage,
		})
	}
	sort.SliceStable(analytics, func(i, j int) bool {
		return analytics[i].Bookings > analytics[j].Bookings
	})

	subscriptionRate := 0
	if clientCount > 0 {
		subscriptionRate = int(math.Round(float64(activeSubs) / float64(clientCount) * 100))
	}

	limit := len(todayBookings)
	if limit > todayBookingsLimit {
		limit = todayBookingsLimit
	}
	todayOut := make([]resp.BookingResponse, 0, limit)
	for i := 0; i < limit; i++ {
		todayOut = append(todayOut, resp.NewBookingResponse(&todayBookings[i]))
	}

	return &resp.DashboardReport{
		Stats: resp.DashboardStats{
			ActiveClients:       int(clientCount),
			MonthlyRevenue:      revenue,
			TodayAppointments:   len(todayBookings),
			ActiveSubscriptions: int(activeSubs),
			SubscriptionRate:    subscriptionRate,
		},
		ServiceAnalytics: analytics,
		TodayBookings:    todayOut,
	}, nil
}
