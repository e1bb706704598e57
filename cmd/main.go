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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyClosureHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/apply_closure"
	cancelReservationHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/cancel_reservation"
	checkClosureConflictsHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/check_closure_conflicts"
	createReservationHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/create_reservation"
	deleteClosureHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/delete_closure"
	getAvailableSlotsHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/get_available_slots"
	getClosuresHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/get_closures"
	getReservationHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/get_reservation"
	getSettingsHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/get_settings"
	getTableConfigsHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/get_table_configs"
	listReservationsHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/list_reservations"
	updateReservationStatusHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/update_reservation_status"
	updateSettingsHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/update_settings"
	updateTableConfigHandler "github.com/nst1k/RST-ReservationService/internal/api/handlers/update_table_config"
	"github.com/nst1k/RST-ReservationService/internal/api/middleware"
	"github.com/nst1k/RST-ReservationService/internal/config"
	closureRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/closure"
	reservationRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/reservation"
	settingsRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/settings"
	tableconfigRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/tableconfig"
	notifyServiceClient "github.com/nst1k/RST-ReservationService/internal/integrations/notifyservice"
	closuresService "github.com/nst1k/RST-ReservationService/internal/service/closures"
	configService "github.com/nst1k/RST-ReservationService/internal/service/config"
	reservationsService "github.com/nst1k/RST-ReservationService/internal/service/reservations"
	applyClosureUC "github.com/nst1k/RST-ReservationService/internal/usecase/apply_closure"
	checkClosureConflictsUC "github.com/nst1k/RST-ReservationService/internal/usecase/check_closure_conflicts"
	createReservationUC "github.com/nst1k/RST-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/nst1k/RST-ReservationService/internal/usecase/get_available_slots"
	"github.com/nst1k/RST-ReservationService/pkg/dbmetrics"
	"github.com/nst1k/RST-ReservationService/pkg/logger"
	"github.com/nst1k/RST-ReservationService/pkg/metrics"
	"github.com/nst1k/RST-ReservationService/pkg/simpletxmanager"
	"github.com/nst1k/RST-ReservationService/pkg/txmanager"
)

func main() {
	// Подхватываем переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting RST-ReservationService...")
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

	// Инициализируем клиента сервиса уведомлений
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify service client initialized (url=%s, timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		closureRepository     *closureRepo.Repository
		tableConfigRepository *tableconfigRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
		tableConfigRepository = tableconfigRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
		tableConfigRepository = tableconfigRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, notifyClient, log)
	closureSvc := closuresService.NewService(closureRepository, log)
	configSvc := configService.NewService(settingsRepository, tableConfigRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		closureRepository,
		tableConfigRepository,
		settingsRepository,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		closureRepository,
		tableConfigRepository,
		settingsRepository,
		txMgr,
		log,
	)

	checkClosureConflictsUseCase := checkClosureConflictsUC.NewUseCase(reservationRepository, log)

	applyClosureUseCase := applyClosureUC.NewUseCase(
		reservationRepository,
		closureRepository,
		notifyClient,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getClosures := getClosuresHandler.NewHandler(closureSvc, log)
	checkClosureConflicts := checkClosureConflictsHandler.NewHandler(checkClosureConflictsUseCase, log)
	applyClosure := applyClosureHandler.NewHandler(applyClosureUseCase, log)
	deleteClosure := deleteClosureHandler.NewHandler(closureSvc, log)
	getSettings := getSettingsHandler.NewHandler(configSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(configSvc, log)
	getTableConfigs := getTableConfigsHandler.NewHandler(configSvc, log)
	updateTableConfig := updateTableConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты рабочего дня с признаком доступности
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание брони гостем
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// --- Брони ---
	// Список броней с фильтрами
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Бронь по ID
	admin.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони
	admin.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Смена статуса брони (completed / no_show / восстановление)
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Закрытия ---
	// Список закрытий
	admin.HandleFunc("/closures", getClosures.Handle).Methods(http.MethodGet)

	// Предварительная проверка конфликтов закрытия
	admin.HandleFunc("/closures/conflicts", checkClosureConflicts.Handle).Methods(http.MethodPost)

	// Применение закрытия (с каскадной отменой при force=true)
	admin.HandleFunc("/closures", applyClosure.Handle).Methods(http.MethodPost)

	// Удаление закрытия
	admin.HandleFunc("/closures/{closureId}", deleteClosure.Handle).Methods(http.MethodDelete)

	// --- Настройки ---
	// Общие настройки бронирования
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Конфигурации столов по размерам групп
	admin.HandleFunc("/table-configurations", getTableConfigs.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/table-configurations", updateTableConfig.Handle).Methods(http.MethodPut)

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
