package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"salonsage/internal/repositories"
	"salonsage/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideReportService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	serviceRepo repositories.ServiceRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, serviceRepo)
}

func provideReportService(dashboardRepo repositories.DashboardRepository) services.ReportServiceInterface {
	return services.NewReportService(dashboardRepo)
}
