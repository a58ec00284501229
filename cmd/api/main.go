package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studiobook/internal/config"
	"studiobook/internal/database"
	"studiobook/internal/logging"
	"studiobook/internal/metrics"
	"studiobook/internal/middleware"
	"studiobook/internal/modules/analytics"
	"studiobook/internal/modules/auth"
	"studiobook/internal/modules/booking"
	"studiobook/internal/modules/dashboard"
	"studiobook/internal/modules/equipment"
	"studiobook/internal/modules/payment"
	"studiobook/internal/modules/settings"
	"studiobook/internal/modules/users"
	jwtsvc "studiobook/internal/pkg/jwt"
	"studiobook/internal/realtime"
	"studiobook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	metrics.Register()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	for _, m := range []interface{ AutoMigrate() error }{
		userRepo, bookingRepo, equipmentRepo, paymentRepo, settingsRepo,
	} {
		if err := m.AutoMigrate(); err != nil {
			logger.Fatal().Err(err).Msg("migration failed")
		}
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := realtime.NewHub()
	defer hub.Close()
	feed := realtime.NewBookingFeed(hub)

	settingsService := settings.NewService(settingsRepo, logger)
	authService := auth.NewService(userRepo, j, settingsService, logger)
	bookingService := booking.NewService(bookingRepo, equipmentRepo, userRepo, settingsService, feed, logger)
	equipmentService := equipment.NewService(equipmentRepo, logger)
	paymentService := payment.NewService(paymentRepo, bookingRepo, settingsService, cfg.PaymentDelay, logger)
	usersService := users.NewService(userRepo, bookingRepo, logger)
	analyticsService := analytics.NewService(bookingRepo, equipmentRepo, userRepo, logger)
	dashboardService := dashboard.NewService(bookingRepo, paymentRepo, equipmentService, analyticsService, userRepo, logger)

	authHandler := auth.NewHandler(authService)
	bookingHandler := booking.NewHandler(bookingService)
	equipmentHandler := equipment.NewHandler(equipmentService)
	paymentHandler := payment.NewHandler(paymentService)
	usersHandler := users.NewHandler(usersService)
	settingsHandler := settings.NewHandler(settingsService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	wsHandler := realtime.NewHandler(hub, j, bookingService, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		equipmentHandler.RegisterRoutes(v1)
		wsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			equipmentHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			usersHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	logger.Info().Str("addr", cfg.HTTPAddr).Msg("http server starting")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal().Err(err).Msg("http server failed")
	}
}
