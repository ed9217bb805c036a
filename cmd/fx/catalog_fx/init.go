package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"salonsage/internal/repositories"
	"salonsage/internal/services"
)

var Module = fx.Provide(
	provideServiceRepo, provideCatalogService)

func provideServiceRepo(db *gorm.DB) repositories.ServiceRepository {
	return repositories.NewServiceRepository(db)
}

func provideCatalogService(serviceRepo repositories.ServiceRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(serviceRepo)
}
