package infra

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
)

func strPtr(s string) *string { return &s }

// SeedDefaults populates the catalog, the package list and the license
// table on first run. Each table is only seeded when it is empty, so
// operator data is never touched.
func SeedDefaults(db *gorm.DB, logger *zap.Logger) error {
	var serviceCount int64
	if err := db.Model(&dbm.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		services := []dbm.Service{
			{Name: "Taglio e Piega", Description: strPtr("Taglio professionale con piega"), Price: 85.00, Duration: 60, IsActive: true},
			{Name: "Colore Capelli", Description: strPtr("Servizio completo di colorazione capelli"), Price: 150.00, Duration: 120, IsActive: true},
			{Name: "Condizionamento Profondo", Description: strPtr("Trattamento intensivo per capelli"), Price: 75.00, Duration: 45, IsActive: true},
			{Name: "Trattamento Capelli", Description: strPtr("Trattamento specializzato per la cura dei capelli"), Price: 95.00, Duration: 90, IsActive: true},
			{Name: "Shampoo e Piega", Description: strPtr("Servizio base di lavaggio e asciugatura"), Price: 45.00, Duration: 30, IsActive: true},
		}
		if err := db.Create(&services).Error; err != nil {
			return err
		}
		logger.Info("seeded default services", zap.Int("count", len(services)))
	}

	var subscriptionCount int64
	if err := db.Model(&dbm.Subscription{}).Count(&subscriptionCount).Error; err != nil {
		return err
	}
	if subscriptionCount == 0 {
		subscriptions := []dbm.Subscription{
			{
				Name:             "Pacchetto Base",
				Description:      strPtr("3 servizi base al mese"),
				Price:            200.00,
				ServicesIncluded: []string{"Taglio e Piega", "Shampoo e Piega"},
				UsageLimit:       3,
				IsActive:         true,
			},
			{
				Name:             "Pacchetto Premium",
				Description:      strPtr("5 servizi premium al mese"),
				Price:            350.00,
				ServicesIncluded: []string{"Taglio e Piega", "Colore Capelli", "Condizionamento Profondo"},
				UsageLimit:       5,
				IsActive:         true,
			},
		}
		if err := db.Create(&subscriptions).Error; err != nil {
			return err
		}
		logger.Info("seeded default subscription packages", zap.Int("count", len(subscriptions)))
	}

	var licenseCount int64
	if err := db.Model(&dbm.LicenseKey{}).Count(&licenseCount).Error; err != nil {
		return err
	}
	if licenseCount == 0 {
		license := dbm.LicenseKey{
			Key:      "SALON_SAGE_FULL_2024",
			IsActive: true,
			Features: []string{"full_access", "analytics", "unlimited_clients"},
		}
		if err := db.Create(&license).Error; err != nil {
			return err
		}
		logger.Info("seeded default license key")
	}

	return nil
}
