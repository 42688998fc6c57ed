package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sharksports/internal/cache"
	"sharksports/internal/config"
	"sharksports/internal/database"
	"sharksports/internal/events"
	"sharksports/internal/middleware"
	"sharksports/internal/modules/auth"
	"sharksports/internal/modules/booking"
	"sharksports/internal/modules/dashboard"
	"sharksports/internal/modules/notification"
	"sharksports/internal/modules/payment"
	"sharksports/internal/modules/profile"
	"sharksports/internal/modules/report"
	"sharksports/internal/modules/vendor"
	"sharksports/internal/modules/venue"
	jwtsvc "sharksports/internal/pkg/jwt"
	"sharksports/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	paymentCfgRepo := repository.NewPaymentConfigRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	redisClient := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	publisher := events.NewPublisher(cfg.AMQPURL)

	hub := notification.NewHub()
	defer hub.Close()

	notifService := notification.NewService(notifRepo, hub)
	notifHandler := notification.NewHandler(notifService)
	wsHandler := notification.NewWSHandler(hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	venueService := venue.NewService(venueRepo, activityRepo)
	venueHandler := venue.NewHandler(venueService)

	bookingService := booking.NewService(bookingRepo, venueRepo, activityRepo, notifService, publisher)
	bookingHandler := booking.NewHandler(bookingService)

	vendorService := vendor.NewService(userRepo, activityRepo)
	vendorHandler := vendor.NewHandler(vendorService)

	reportService := report.NewService(bookingRepo, statsRepo, activityRepo)
	reportHandler := report.NewHandler(reportService)

	dashboardService := dashboard.NewService(statsRepo, activityRepo, redisClient)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	paymentService := payment.NewService(bookingRepo, paymentCfgRepo, activityRepo, cfg)
	paymentHandler := payment.NewHandler(paymentService)

	profileService := profile.NewService(userRepo)
	profileHandler := profile.NewHandler(profileService)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		paymentHandler.RegisterCallbackRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			venueHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				vendorHandler.RegisterRoutes(admin)
				paymentHandler.RegisterAdminRoutes(admin)
				notifHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	r.GET("/ws/notifications", wsHandler.HandleWebSocket)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
