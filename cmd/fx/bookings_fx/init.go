package bookings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"salonsage/internal/repositories"
	"salonsage/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
	clientRepo repositories.ClientRepository,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, serviceRepo, clientRepo)
}
