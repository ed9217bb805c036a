package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salonsage/cmd/fx/bookings_fx"
	"salonsage/cmd/fx/catalog_fx"
	"salonsage/cmd/fx/clients_fx"
	"salonsage/cmd/fx/controllers_fx"
	"salonsage/cmd/fx/dashboard_fx"
	"salonsage/cmd/fx/db_fx"
	"salonsage/cmd/fx/license_fx"
	"salonsage/cmd/fx/subscriptions_fx"
	"salonsage/cmd/fx/updater_fx"
	"salonsage/internal/api/controllers"
	"salonsage/internal/config"
	"salonsage/internal/infra"
	"salonsage/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(provideLogger),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		db_fx.Module,
		clients_fx.Module,
		catalog_fx.Module,
		subscriptions_fx.Module,
		bookings_fx.Module,
		dashboard_fx.Module,
		license_fx.Module,
		updater_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(seedDefaults),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func seedDefaults(db *gorm.DB, logger *zap.Logger) error {
	return infra.SeedDefaults(db, logger)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	clientsController *controllers.ClientsController,
	catalogController *controllers.CatalogController,
	subscriptionsController *controllers.SubscriptionsController,
	bookingsController *controllers.BookingsController,
	dashboardController *controllers.DashboardController,
	licenseController *controllers.LicenseController,
	updaterController *controllers.UpdaterController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.Default())

	RegisterRoutes(r, cfg,
		clientsController, catalogController, subscriptionsController,
		bookingsController, dashboardController, licenseController,
		updaterController)

	return r
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config,
	clientsController *controllers.ClientsController,
	catalogController *controllers.CatalogController,
	subscriptionsController *controllers.SubscriptionsController,
	bookingsController *controllers.BookingsController,
	dashboardController *controllers.DashboardController,
	licenseController *controllers.LicenseController,
	updaterController *controllers.UpdaterController) {

	clientsGroup := r.Group("/clients")
	clientsGroup.GET("", clientsController.ListClients)
	clientsGroup.GET("/:id", clientsController.GetClient)
	clientsGroup.POST("", clientsController.CreateClient)
	clientsGroup.PUT("/:id", clientsController.UpdateClient)
	clientsGroup.DELETE("/:id", clientsController.DeleteClient)

	servicesGroup := r.Group("/services")
	servicesGroup.GET("", catalogController.ListServices)
	servicesGroup.GET("/:id", catalogController.GetService)
	servicesGroup.POST("", catalogController.CreateService)
	servicesGroup.PUT("/:id", catalogController.UpdateService)
	servicesGroup.DELETE("/:id", catalogController.DeleteService)

	packagesGroup := r.Group("/subscriptions")
	packagesGroup.GET("", subscriptionsController.ListPackages)
	packagesGroup.GET("/:id", subscriptionsController.GetPackage)
	packagesGroup.POST("", subscriptionsController.CreatePackage)
	packagesGroup.PUT("/:id", subscriptionsController.UpdatePackage)
	packagesGroup.DELETE("/:id", subscriptionsController.DeletePackage)

	clientSubsGroup := r.Group("/client-subscriptions")
	clientSubsGroup.GET("", subscriptionsController.ListClientSubscriptions)
	clientSubsGroup.GET("/:id", subscriptionsController.GetClientSubscription)
	clientSubsGroup.POST("", subscriptionsController.PurchaseSubscription)
	clientSubsGroup.PUT("/:id", subscriptionsController.UpdateClientSubscription)
	clientSubsGroup.POST("/:id/scale", subscriptionsController.ScaleSubscription)

	bookingsGroup := r.Group("/bookings")
	bookingsGroup.GET("", bookingsController.ListBookings)
	bookingsGroup.GET("/:id", bookingsController.GetBooking)
	bookingsGroup.POST("", bookingsController.CreateBooking)
	bookingsGroup.POST("/:id/services", bookingsController.AddExtraServices)
	bookingsGroup.PUT("/:id/status", bookingsController.UpdateStatus)
	bookingsGroup.PUT("/:id", bookingsController.UpdateBooking)
	bookingsGroup.DELETE("/:id", bookingsController.DeleteBooking)

	licenseGroup := r.Group("/license")
	licenseGroup.POST("/validate", licenseController.Validate)
	licenseGroup.GET("/keys", licenseController.ListKeys)
	licenseGroup.POST("/keys", licenseController.CreateKey)

	// Analytics routes are gated behind a feature token issued by
	// license validation.
	dashboardGroup := r.Group("/dashboard")
	dashboardGroup.Use(middleware.RequireFeature(cfg.License.TokenSecret, "analytics"))
	dashboardGroup.GET("", dashboardController.GetDashboard)
	dashboardGroup.GET("/report", dashboardController.ExportBookingsReport)

	updatesGroup := r.Group("/updates")
	updatesGroup.GET("/status", updaterController.Status)
	updatesGroup.POST("/check", updaterController.Check)
}
