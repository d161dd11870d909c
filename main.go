package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homestay/config"
	"homestay/cron"
	"homestay/database"
	"homestay/database/repository"
	"homestay/handlers"
	"homestay/middleware"
	"homestay/routes"
	"homestay/services/audit"
	"homestay/services/booking"
	"homestay/services/listing"
	"homestay/services/rating"
	"homestay/services/staff"
	"homestay/services/user"
	"homestay/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := repository.NewMongoUserRepo()
	listingRepo := repository.NewMongoListingRepo()
	bookingRepo := repository.NewMongoBookingRepo()
	reviewRepo := repository.NewMongoReviewRepo()
	staffRepo := repository.NewMongoStaffRepo()
	auditRepo := repository.NewMongoAuditRepo()
	profileRepo := repository.NewMongoProfileRepo()
	favoriteRepo := repository.NewMongoFavoriteRepo()

	// services.
	auditRecorder := &audit.DefaultRecorder{Repo: auditRepo}
	aggregator := &rating.DefaultAggregator{
		Reviews:  reviewRepo,
		Listings: listingRepo,
	}
	lifecycle := &booking.DefaultLifecycleService{
		Bookings: bookingRepo,
		Reviews:  reviewRepo,
		Listings: listingRepo,
		Staff:    staffRepo,
		Audit:    auditRecorder,
		Ratings:  aggregator,
	}
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Profiles:  profileRepo,
		Favorites: favoriteRepo,
		Lifecycle: lifecycle,
	}
	listingService := &listing.DefaultListingService{Repo: listingRepo}
	staffService := &staff.DefaultStaffService{Repo: staffRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService:    userService,
		ListingService: listingService,
		StaffService:   staffService,
		Lifecycle:      lifecycle,
		AuditRecorder:  auditRecorder,
		Bookings:       bookingRepo,
		Profiles:       profileRepo,
		Favorites:      favoriteRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reconciliation of listing rating caches.
	cron.InitRatingSweepWorker(aggregator)

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
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
