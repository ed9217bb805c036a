package clients_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"salonsage/internal/repositories"
	"salonsage/internal/services"
)

var Module = fx.Provide(
	provideClientRepo, provideClientService)

func provideClientRepo(db *gorm.DB) repositories.ClientRepository {
	return repositories.NewClientRepository(db)
}

func provideClientService(clientRepo repositories.ClientRepository) services.ClientServiceInterface {
	return services.NewClientService(clientRepo)
}
