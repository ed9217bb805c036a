package license_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"salonsage/internal/config"
	"salonsage/internal/repositories"
	"salonsage/internal/services"
)

var Module = fx.Provide(
	provideLicenseRepo, provideLicenseService)

func provideLicenseRepo(db *gorm.DB) repositories.LicenseRepository {
	return repositories.NewLicenseRepository(db)
}

func provideLicenseService(
	licenseRepo repositories.LicenseRepository,
	cfg *config.Config,
) services.LicenseServiceInterface {
	return services.NewLicenseService(licenseRepo, cfg.License.TokenSecret, cfg.License.TokenTTL)
}
