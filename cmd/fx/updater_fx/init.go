package updater_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salonsage/internal/config"
	"salonsage/internal/repositories"
	"salonsage/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideMetadataRepo, provideUpdaterService),
	fx.Invoke(startPolling),
)

func provideMetadataRepo(db *gorm.DB) repositories.MetadataRepository {
	return repositories.NewMetadataRepository(db)
}

func provideUpdaterService(
	metadataRepo repositories.MetadataRepository,
	cfg *config.Config,
	logger *zap.Logger,
) services.UpdaterServiceInterface {
	return services.NewUpdaterService(metadataRepo, services.UpdaterConfig{
		ReleasesURL:    cfg.Updater.ReleasesURL,
		CurrentVersion: cfg.Updater.CurrentVersion,
		CheckInterval:  cfg.Updater.CheckInterval,
		InitialDelay:   cfg.Updater.InitialDelay,
	}, logger)
}

func startPolling(lc fx.Lifecycle, updater services.UpdaterServiceInterface) {
	pollCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go updater.RunPeriodic(pollCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}
