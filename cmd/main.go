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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/cancel_appointment"
	confirmAppointmentHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/create_appointment"
	createTimeBlockHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/create_time_block"
	deleteTimeBlockHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/delete_time_block"
	getAppointmentHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_available_slots"
	getBusinessSettingsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_business_settings"
	getUserAppointmentsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_user_appointments"
	healthHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_services"
	listTimeBlocksHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_time_blocks"
	proposeAppointmentTimeHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/propose_appointment_time"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/reschedule_appointment"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/update_appointment_status"
	updateBusinessSettingsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/update_business_settings"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/config"
	settingsCache "github.com/m04kA/SMC-BarberBookingService/internal/infra/cache/settings"
	appointmentRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	settingsRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/settings"
	timeBlockRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/timeblock"
	appointmentsService "github.com/m04kA/SMC-BarberBookingService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/busy"
	catalogService "github.com/m04kA/SMC-BarberBookingService/internal/service/catalog"
	settingsService "github.com/m04kA/SMC-BarberBookingService/internal/service/settings"
	slotsService "github.com/m04kA/SMC-BarberBookingService/internal/service/slots"
	timeBlocksService "github.com/m04kA/SMC-BarberBookingService/internal/service/timeblocks"
	createAppointmentUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_available_slots"
	proposeAppointmentTimeUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/propose_appointment_time"
	rescheduleAppointmentUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/metrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := defaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting BarberBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone %s: %v", cfg.Business.Timezone, err)
	}

	adminIDs, err := cfg.Auth.AdminIDs()
	if err != nil {
		log.Fatal("Failed to parse admin ids: %v", err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbCollector      dbmetrics.Collector
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Все запросы идут через обёртку: без коллектора она просто проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB).WithMaxRetries(cfg.Database.TxMaxRetries)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	timeBlockRepository := timeBlockRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	// Настройки читаются на каждый запрос слотов, поэтому кэшируются в Redis (если включен)
	var settingsStore settingsService.SettingsStore = settingsRepository
	healthChecks := []healthHandler.Check{{Name: "postgres", Ping: wrappedDB.PingContext}}

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, settings will be read from database until it recovers: %v",
				cfg.Redis.Addr, err)
		}

		settingsStore = settingsCache.NewCache(
			settingsRepository,
			redisClient,
			time.Duration(cfg.Redis.SettingsTTL)*time.Second,
			log,
		)
		healthChecks = append(healthChecks, healthHandler.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		log.Info("Settings cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.SettingsTTL)
	}

	// Инициализируем сервисы
	busyAggregator := busy.NewAggregator(appointmentRepository, timeBlockRepository, log)
	slotsSvc := slotsService.NewService(
		settingsStore,
		busyAggregator,
		metricsCollector,
		location,
		cfg.Business.SettingsID,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		settingsStore,
		txMgr,
		location,
		cfg.Business.SettingsID,
		log,
	)
	settingsSvc := settingsService.NewService(settingsStore, cfg.Business.SettingsID, location, log)
	timeBlocksSvc := timeBlocksService.NewService(timeBlockRepository, location, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Создаем настройки по умолчанию, если их ещё нет
	if cfg.Business.BootstrapSettings {
		bootstrapCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := settingsSvc.EnsureDefaults(bootstrapCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to bootstrap business settings: %v", err)
		}
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalogRepository, slotsSvc, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		slotsSvc,
		txMgr,
		metricsCollector,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		slotsSvc,
		txMgr,
		metricsCollector,
		log,
	)

	proposeAppointmentTimeUseCase := proposeAppointmentTimeUC.NewUseCase(
		appointmentRepository,
		slotsSvc,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getBusinessSettings := getBusinessSettingsHandler.NewHandler(settingsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(appointmentsSvc, log)
	proposeAppointmentTime := proposeAppointmentTimeHandler.NewHandler(proposeAppointmentTimeUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	updateBusinessSettings := updateBusinessSettingsHandler.NewHandler(settingsSvc, log)
	createTimeBlock := createTimeBlockHandler.NewHandler(timeBlocksSvc, log)
	listTimeBlocks := listTimeBlocksHandler.NewHandler(timeBlocksSvc, log)
	deleteTimeBlock := deleteTimeBlockHandler.NewHandler(timeBlocksSvc, log)
	health := healthHandler.NewHandler(log, healthChecks...)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth(adminIDs))

	// Свободные слоты на дату
	public.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodPost)
	public.HandleFunc("/available-slots", getAvailableSlots.HandleQuery).Methods(http.MethodGet)

	// Каталог услуг
	public.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Настройки барбершопа (администратор видит полную версию)
	public.HandleFunc("/settings", getBusinessSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(adminIDs))

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/confirm", confirmAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-ID из списка администраторов)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(adminIDs), middleware.AdminOnly)

	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}/propose-time", proposeAppointmentTime.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/settings", updateBusinessSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/time-blocks", listTimeBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/time-blocks", createTimeBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/time-blocks/{timeBlockId:[0-9]+}", deleteTimeBlock.Handle).Methods(http.MethodDelete)

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
		log.Info("Starting server on %s (timezone=%s)", addr, location)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
