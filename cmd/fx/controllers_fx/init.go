package controllers_fx

import (
	"go.uber.org/fx"

	"salonsage/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewClientsController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewSubscriptionsController),
	fx.Provide(controllers.NewBookingsController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewLicenseController),
	fx.Provide(controllers.NewUpdaterController))
