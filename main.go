// File: homeserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"homeserve/config"
	"homeserve/cron"
	"homeserve/database"
	bookingRepo "homeserve/database/repository/booking"
	offeringRepo "homeserve/database/repository/offering"
	userRepoPkg "homeserve/database/repository/user"
	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/routes"
	"homeserve/services/booking"
	"homeserve/services/catalog"
	"homeserve/services/payment"
	"homeserve/services/user"
	"homeserve/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db := database.InitDB()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	if config.AppConfig.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.Seed(ctx, db); err != nil {
			logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
		}
		cancel()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	offerings := offeringRepo.NewMongoOfferingRepo(db)
	ledger := bookingRepo.NewMongoBookingRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)

	// services.
	gateway := payment.NewStripeGateway(logger)

	userService := &user.DefaultUserService{
		Repo:      users,
		AuthCache: utils.GetAuthCacheClient(),
		Logger:    logger,
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo: offerings,
	}

	workflow := &booking.DefaultWorkflow{
		Offerings:  offerings,
		Ledger:     ledger,
		Gateway:    gateway,
		Logger:     logger,
		Currency:   config.AppConfig.Currency,
		PendingTTL: config.AppConfig.PendingBookingTTLMin,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthCache: utils.GetAuthCacheClient(),
		Auth:      handlers.NewAuthHandler(userService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Booking:   handlers.NewBookingHandler(workflow, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Reconciliation sweep for bookings stuck in pending.
	cron.InitReconcileWorker(workflow, logger)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Wait for an interrupt, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
	}
	logger.Info("Server exited")
}
