package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	cancelBookingHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/create_booking"
	createVenueHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/create_venue"
	deleteVenueHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/delete_venue"
	getAvailabilityHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/get_availability"
	getManagerBookingsHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/get_manager_bookings"
	getManagerVenuesHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/get_manager_venues"
	getProfileHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/get_profile"
	getProfileBookingsHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/get_profile_bookings"
	getRegionsHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/get_regions"
	getVenueHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/get_venue"
	listVenuesHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/list_venues"
	loginHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/logout"
	quoteBookingHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/quote_booking"
	registerHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/register"
	searchVenuesHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/search_venues"
	updateAvatarHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/update_avatar"
	updateVenueHandler "github.com/m04kA/holidaze-gateway/internal/api/handlers/update_venue"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/config"
	venueCache "github.com/m04kA/holidaze-gateway/internal/infra/cache/venue"
	"github.com/m04kA/holidaze-gateway/internal/infra/queue"
	sessionRepo "github.com/m04kA/holidaze-gateway/internal/infra/storage/session"
	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
	authService "github.com/m04kA/holidaze-gateway/internal/service/auth"
	bookingsService "github.com/m04kA/holidaze-gateway/internal/service/bookings"
	venuesService "github.com/m04kA/holidaze-gateway/internal/service/venues"
	createBookingUC "github.com/m04kA/holidaze-gateway/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/holidaze-gateway/internal/usecase/get_availability"
	quoteBookingUC "github.com/m04kA/holidaze-gateway/internal/usecase/quote_booking"
	"github.com/m04kA/holidaze-gateway/pkg/dbmetrics"
	"github.com/m04kA/holidaze-gateway/pkg/logger"
	"github.com/m04kA/holidaze-gateway/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting holidaze-gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (хранилище сессий)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий сессий (с метриками или без)
	var sessionRepository *sessionRepo.Repository
	if cfg.Metrics.Enabled {
		sessionRepository = sessionRepo.NewRepository(dbmetrics.Wrap(db, metricsCollector))
		log.Info("Database metrics collection started")
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
	}

	// Кэш площадок (при недоступности Redis работаем без кэша)
	var cache *venueCache.Cache
	if cfg.Cache.Enabled {
		redisClient, err := venueCache.NewRedisClient(context.Background(), cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			log.Warn("Redis unavailable, venue cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			cache = venueCache.NewCache(redisClient, time.Duration(cfg.Cache.VenueTTLSeconds)*time.Second, cfg.Cache.Prefix)
			log.Info("Venue cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.VenueTTLSeconds)
		}
	}

	// Публикация событий бронирований
	var publisher bookingsService.EventPublisher = queue.NopPublisher{}
	if cfg.Queue.Enabled {
		amqpPublisher, err := queue.NewPublisher(cfg.Queue.URL, cfg.Queue.Exchange, log)
		if err != nil {
			log.Warn("RabbitMQ unavailable, booking events disabled: %v", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
			log.Info("Booking events published to exchange %s", cfg.Queue.Exchange)
		}
	}

	// Клиент Holidaze API
	holidazeClient := holidaze.NewClient(
		cfg.HolidazeAPI.URL,
		cfg.HolidazeAPI.APIKey,
		time.Duration(cfg.HolidazeAPI.Timeout)*time.Second,
		holidaze.NewLimiter(cfg.HolidazeAPI.RequestsPerMinute, cfg.HolidazeAPI.Burst),
		metricsCollector,
		log,
	)
	log.Info("Holidaze client initialized (url=%s, timeout=%ds, rpm=%d)",
		cfg.HolidazeAPI.URL, cfg.HolidazeAPI.Timeout, cfg.HolidazeAPI.RequestsPerMinute)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		holidazeClient,
		sessionRepository,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
		log,
	)
	venuesSvc := venuesService.NewService(holidazeClient, cache, log)
	bookingsSvc := bookingsService.NewService(holidazeClient, cache, publisher, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(holidazeClient, cache, publisher, metricsCollector, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(venuesSvc, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(venuesSvc, metricsCollector, log)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(authSvc, log)
	updateAvatar := updateAvatarHandler.NewHandler(authSvc, log)

	listVenues := listVenuesHandler.NewHandler(venuesSvc, log)
	searchVenues := searchVenuesHandler.NewHandler(venuesSvc, log)
	getRegions := getRegionsHandler.NewHandler(venuesSvc, log)
	getVenue := getVenueHandler.NewHandler(venuesSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getProfileBookings := getProfileBookingsHandler.NewHandler(bookingsSvc, log)

	getManagerVenues := getManagerVenuesHandler.NewHandler(venuesSvc, log)
	createVenue := createVenueHandler.NewHandler(venuesSvc, log)
	updateVenue := updateVenueHandler.NewHandler(venuesSvc, log)
	deleteVenue := deleteVenueHandler.NewHandler(venuesSvc, log)
	getManagerBookings := getManagerBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// --- Аутентификация ---
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// --- Площадки ---
	// /venues/search и /venues/regions регистрируются раньше /venues/{venueId}
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/search", searchVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/regions", getRegions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// Календарь занятости и расчет стоимости
	api.HandleFunc("/venues/{venueId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <sessionId> или X-Session-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Профиль ---
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile/avatar", updateAvatar.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/profile/bookings", getProfileBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Управление площадками (для менеджеров) ---
	protected.HandleFunc("/manager/venues", getManagerVenues.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/manager/venues", createVenue.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/manager/venues/{venueId}", updateVenue.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/manager/venues/{venueId}", deleteVenue.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/manager/bookings", getManagerBookings.Handle).Methods(http.MethodGet)

	// Периодическая очистка истекших сессий
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go authSvc.RunCleanup(cleanupCtx, time.Duration(cfg.Session.CleanupIntervalMinutes)*time.Minute)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopCleanup()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
