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

	cancelAppointmentHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/create_appointment"
	createWorkSlotHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/create_work_slot"
	deleteMasterHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/delete_master"
	deleteWorkSlotHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/delete_work_slot"
	deleteWorkplaceHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/delete_workplace"
	getAppointmentHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/get_appointment"
	getAvailableDaysHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/list_appointments"
	listWorkSlotsHandler "github.com/avolkoff/Salon-BookingService/internal/api/handlers/list_work_slots"
	"github.com/avolkoff/Salon-BookingService/internal/api/middleware"
	"github.com/avolkoff/Salon-BookingService/internal/config"
	"github.com/avolkoff/Salon-BookingService/internal/infra/migrator"
	appointmentRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/client"
	masterRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/master"
	procedureRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/procedure"
	workplaceRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workplace"
	workslotRepo "github.com/avolkoff/Salon-BookingService/internal/infra/storage/workslot"
	"github.com/avolkoff/Salon-BookingService/internal/jobs"
	appointmentsService "github.com/avolkoff/Salon-BookingService/internal/service/appointments"
	durationService "github.com/avolkoff/Salon-BookingService/internal/service/duration"
	mastersService "github.com/avolkoff/Salon-BookingService/internal/service/masters"
	workplacesService "github.com/avolkoff/Salon-BookingService/internal/service/workplaces"
	workslotsService "github.com/avolkoff/Salon-BookingService/internal/service/workslots"
	createAppointmentUC "github.com/avolkoff/Salon-BookingService/internal/usecase/create_appointment"
	getAvailableDaysUC "github.com/avolkoff/Salon-BookingService/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/avolkoff/Salon-BookingService/internal/usecase/get_available_slots"
	"github.com/avolkoff/Salon-BookingService/pkg/dbmetrics"
	"github.com/avolkoff/Salon-BookingService/pkg/logger"
	"github.com/avolkoff/Salon-BookingService/pkg/metrics"
	"github.com/avolkoff/Salon-BookingService/pkg/simpletxmanager"
	"github.com/avolkoff/Salon-BookingService/pkg/txmanager"
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

	log.Info("Starting Salon-BookingService...")
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

	// Применяем миграции схемы (если включено)
	if cfg.Database.Migrate {
		mg, err := migrator.New(db)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := mg.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := mg.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read schema version: %v", err)
		}
		log.Info("Database migrations applied, schema version %d", version)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		workSlotRepository    *workslotRepo.Repository
		procedureRepository   *procedureRepo.Repository
		clientRepository      *clientRepo.Repository
		masterRepository      *masterRepo.Repository
		workplaceRepository   *workplaceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		workSlotRepository = workslotRepo.NewRepository(wrappedDB)
		procedureRepository = procedureRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		masterRepository = masterRepo.NewRepository(wrappedDB)
		workplaceRepository = workplaceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		workSlotRepository = workslotRepo.NewRepository(db)
		procedureRepository = procedureRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		masterRepository = masterRepo.NewRepository(db)
		workplaceRepository = workplaceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	durationSvc := durationService.NewService(procedureRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	workSlotSvc := workslotsService.NewService(
		workSlotRepository,
		appointmentRepository,
		masterRepository,
		workplaceRepository,
		log,
	)
	masterSvc := mastersService.NewService(
		masterRepository,
		appointmentRepository,
		workSlotRepository,
		txMgr,
		log,
	)
	workplaceSvc := workplacesService.NewService(
		workplaceRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		workSlotRepository,
		appointmentRepository,
		clientRepository,
		durationSvc,
		log,
	)
	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(workSlotRepository, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		masterRepository,
		workplaceRepository,
		durationSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	createWorkSlot := createWorkSlotHandler.NewHandler(workSlotSvc, log)
	listWorkSlots := listWorkSlotsHandler.NewHandler(workSlotSvc, log)
	deleteWorkSlot := deleteWorkSlotHandler.NewHandler(workSlotSvc, log)
	deleteMaster := deleteMasterHandler.NewHandler(masterSvc, log)
	deleteWorkplace := deleteWorkplaceHandler.NewHandler(workplaceSvc, log)

	// Фоновая джоба завершения прошедших записей
	completer := jobs.NewCompleter(appointmentSvc, cfg.Jobs.CompleterSchedule, log)
	if cfg.Jobs.CompleterEnabled {
		if err := completer.Start(); err != nil {
			log.Fatal("Failed to start completer job: %v", err)
		}
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	// Доступные слоты мастера на дату
	api.HandleFunc("/masters/{masterId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Дни с рабочими окнами мастера
	api.HandleFunc("/masters/{masterId}/available-days",
		getAvailableDays.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей с фильтрами
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Рабочие окна ---
	// Создание рабочего окна
	api.HandleFunc("/work-slots", createWorkSlot.Handle).Methods(http.MethodPost)

	// Список рабочих окон
	api.HandleFunc("/work-slots", listWorkSlots.Handle).Methods(http.MethodGet)

	// Удаление рабочего окна
	api.HandleFunc("/work-slots/{workSlotId}", deleteWorkSlot.Handle).Methods(http.MethodDelete)

	// --- Справочники ---
	// Удаление мастера
	api.HandleFunc("/masters/{masterId}", deleteMaster.Handle).Methods(http.MethodDelete)

	// Удаление (или деактивация) рабочего места
	api.HandleFunc("/workplaces/{workplaceId}", deleteWorkplace.Handle).Methods(http.MethodDelete)

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

	// Останавливаем фоновую джобу
	if cfg.Jobs.CompleterEnabled {
		completer.Stop()
	}

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
