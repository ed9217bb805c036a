package subscriptions_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"salonsage/internal/config"
	"salonsage/internal/repositories"
	"salonsage/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideClientSubscriptionRepo, provideSubscriptionService)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideClientSubscriptionRepo(db *gorm.DB) repositories.ClientSubscriptionRepository {
	return repositories.NewClientSubscriptionRepository(db)
}

func provideSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	clientSubRepo repositories.ClientSubscriptionRepository,
	clientRepo repositories.ClientRepository,
	cfg *config.Config,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, clientSubRepo, clientRepo, cfg.Ledger.MaxAddUses)
}
