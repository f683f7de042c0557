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

	findReservedSlotsHandler "github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers/find_reserved_slots"
	findUnreservedSlotsHandler "github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers/find_unreserved_slots"
	getDockCapacitiesHandler "github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers/get_dock_capacities"
	resolveDoorGroupHandler "github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers/resolve_door_group"
	validateAppointmentHandler "github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers/validate_appointment"
	"github.com/m04kA/SMC-DockSchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-DockSchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/appointment"
	equipmentRepo "github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/equipment"
	reservationRepo "github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/schedule"
	siteRepo "github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/site"
	vendorRepo "github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/vendor"
	findReservedSlotsUC "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/find_reserved_slots"
	findUnreservedSlotsUC "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/find_unreserved_slots"
	getDockCapacitiesUC "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/get_dock_capacities"
	resolveDoorGroupUC "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/resolve_door_group"
	validateAppointmentUC "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/validate_appointment"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/logger"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/metrics"
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

	log.Info("Starting SMC-DockSchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var executor siteRepo.DBExecutor = db
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		log.Info("Database metrics collection started")
	}

	siteRepository := siteRepo.NewRepository(executor)
	vendorRepository := vendorRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)
	scheduleRepository := scheduleRepo.NewRepository(executor)
	equipmentRepository := equipmentRepo.NewRepository(executor)

	// Инициализируем use cases; резолвер группы дверей разделяется
	// обоими подборами слотов
	resolveDoorGroupUseCase := resolveDoorGroupUC.NewUseCase(
		siteRepository,
		vendorRepository,
		log,
	)

	findUnreservedSlotsUseCase := findUnreservedSlotsUC.NewUseCase(
		resolveDoorGroupUseCase,
		siteRepository,
		appointmentRepository,
		reservationRepository,
		scheduleRepository,
		equipmentRepository,
		vendorRepository,
		log,
	)

	findReservedSlotsUseCase := findReservedSlotsUC.NewUseCase(
		resolveDoorGroupUseCase,
		siteRepository,
		appointmentRepository,
		reservationRepository,
		scheduleRepository,
		equipmentRepository,
		vendorRepository,
		log,
	)

	getDockCapacitiesUseCase := getDockCapacitiesUC.NewUseCase(
		siteRepository,
		appointmentRepository,
		reservationRepository,
		log,
	)

	validateAppointmentUseCase := validateAppointmentUC.NewUseCase(
		siteRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	resolveDoorGroup := resolveDoorGroupHandler.NewHandler(resolveDoorGroupUseCase, log)
	findUnreservedSlots := findUnreservedSlotsHandler.NewHandler(findUnreservedSlotsUseCase, log)
	findReservedSlots := findReservedSlotsHandler.NewHandler(findReservedSlotsUseCase, log)
	getDockCapacities := getDockCapacitiesHandler.NewHandler(getDockCapacitiesUseCase, log)
	validateAppointment := validateAppointmentHandler.NewHandler(validateAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Определение группы дверей и доков для набора заказов
	api.HandleFunc("/sites/{siteId}/door-group",
		resolveDoorGroup.Handle).Methods(http.MethodPost)

	// Свободный подбор слотов
	api.HandleFunc("/sites/{siteId}/unreserved-slots",
		findUnreservedSlots.Handle).Methods(http.MethodPost)

	// Подбор по шаблонам резерваций
	api.HandleFunc("/sites/{siteId}/reserved-slots",
		findReservedSlots.Handle).Methods(http.MethodPost)

	// Дневные срезы ёмкости доков
	api.HandleFunc("/sites/{siteId}/dock-capacities",
		getDockCapacities.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Финальная проверка слота перед фиксацией брони
	protected.HandleFunc("/sites/{siteId}/appointments/validate",
		validateAppointment.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
