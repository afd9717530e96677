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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/cancel_booking"
	checkCompatibilityHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/check_service_compatibility"
	createBookingHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_client_bookings"
	getMultiProviderSlotsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_multi_provider_slots"
	listProviderServicesHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_provider_services"
	listProvidersHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_providers"
	listServicesHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_services"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/provider"
	scheduleRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-BarberBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-BarberBookingService/internal/service/catalog"
	checkCompatibilityUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/check_service_compatibility"
	createBookingUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_available_slots"
	getMultiProviderSlotsUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_multi_provider_slots"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/metrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/txmanager"
)

const rateLimitVisitorTTL = 3 * time.Minute

func main() {
	// Загружаем конфигурацию (путь переопределяется через CONFIG_PATH)
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

	log.Info("Starting SMC-BarberBookingService...")

	// Метрики (nil-коллектор, если выключены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	providerRepository := providerRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	// Движок доступности
	location := cfg.Location()
	clock := &availability.RealTimeProvider{Location: location}

	windows := availability.NewWindowResolver(scheduleRepository, cfg.Booking.DefaultSlotIncrementMinutes, log)
	durations := availability.NewDurationCalculator(providerRepository, cfg.Booking.StrictServiceLookup)
	conflictSources := []availability.ConflictSource{
		availability.NewBookingConflicts(bookingRepository),
		availability.NewUnavailabilityConflicts(scheduleRepository),
	}
	generator := availability.NewSlotGenerator(windows, durations, conflictSources, clock)
	validator := availability.NewBookingValidator(windows, conflictSources, clock)
	matcher := availability.NewCompatibilityMatcher(providerRepository)

	log.Info("Availability engine initialized (timezone=%s, default_increment=%d, strict_service_lookup=%t)",
		location, cfg.Booking.DefaultSlotIncrementMinutes, cfg.Booking.StrictServiceLookup)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, clock, log)
	catalogSvc := catalogService.NewService(providerRepository, scheduleRepository, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(providerRepository, generator, metricsCollector, log)
	getMultiProviderSlotsUseCase := getMultiProviderSlotsUC.NewUseCase(matcher, generator, metricsCollector, log)
	checkCompatibilityUseCase := checkCompatibilityUC.NewUseCase(matcher, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		providerRepository,
		durations,
		validator,
		txMgr,
		metricsCollector,
		clock,
		log,
	)

	// Handlers
	listProviders := listProvidersHandler.NewHandler(catalogSvc, log)
	listProviderServices := listProviderServicesHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getMultiProviderSlots := getMultiProviderSlotsHandler.NewHandler(getMultiProviderSlotsUseCase, log)
	checkCompatibility := checkCompatibilityHandler.NewHandler(checkCompatibilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitVisitorTTL)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/providers", listProviders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/services", listProviderServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Слоты одного мастера и всех совместимых мастеров
	api.HandleFunc("/providers/{providerId}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getMultiProviderSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/services/compatibility", checkCompatibility.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор статистики пула
	close(stopMetricsCh)

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
