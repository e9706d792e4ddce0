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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-TrainingReservation/internal/api/handlers"
	createSessionHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/delete_session"
	getCalendarDayHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/get_calendar_day"
	getHolidaysHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/get_holidays"
	getSessionHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/get_session"
	resetSessionHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/reset_session"
	setFieldHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/set_field"
	submitBookingHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/submit_booking"
	validateFieldHandler "github.com/m04kA/SMC-TrainingReservation/internal/api/handlers/validate_field"
	"github.com/m04kA/SMC-TrainingReservation/internal/api/middleware"
	"github.com/m04kA/SMC-TrainingReservation/internal/config"
	submissionRepo "github.com/m04kA/SMC-TrainingReservation/internal/infra/storage/submission"
	holidaysClient "github.com/m04kA/SMC-TrainingReservation/internal/integrations/holidays"
	submissionClient "github.com/m04kA/SMC-TrainingReservation/internal/integrations/submission"
	formsService "github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
	holidaysService "github.com/m04kA/SMC-TrainingReservation/internal/service/holidays"
	getCalendarDayUC "github.com/m04kA/SMC-TrainingReservation/internal/usecase/get_calendar_day"
	submitBookingUC "github.com/m04kA/SMC-TrainingReservation/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-TrainingReservation/internal/validation"
	"github.com/m04kA/SMC-TrainingReservation/pkg/logger"
	"github.com/m04kA/SMC-TrainingReservation/pkg/metrics"
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

	log.Info("Starting SMC-TrainingReservation...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал отправок (если включен)
	var journal submitBookingUC.Journal
	if cfg.Journal.Enabled {
		db, err := sql.Open("postgres", cfg.Journal.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Journal.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Journal.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Journal.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		repo := submissionRepo.NewRepository(db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to prepare submission journal: %v", err)
		}
		journal = repo
		log.Info("Submission journal enabled (host=%s, port=%d, db=%s)",
			cfg.Journal.Host, cfg.Journal.Port, cfg.Journal.DBName)
	}

	// Инициализируем интеграционных клиентов
	holidays := holidaysClient.NewClient(
		cfg.Holidays.URL,
		cfg.Holidays.APIKey,
		time.Duration(cfg.Holidays.Timeout)*time.Second,
		log,
	)
	submitter := submissionClient.NewClient(
		cfg.Submission.URL,
		time.Duration(cfg.Submission.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Holidays=%s timeout=%ds, Submission=%s timeout=%ds)",
		cfg.Holidays.URL, cfg.Holidays.Timeout, cfg.Submission.URL, cfg.Submission.Timeout)

	// Загружаем праздники один раз на старте
	location, err := cfg.Holidays.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}
	holidayProvider := holidaysService.NewProvider(
		holidays,
		cfg.Holidays.Country,
		cfg.Holidays.Year,
		location,
		metricsCollector,
		log,
	)
	holidayProvider.Start(context.Background())
	defer holidayProvider.Close()

	// Инициализируем сервисы
	validator := validation.New()
	formsSvc := formsService.NewService(
		validator,
		holidayProvider,
		cfg.Booking.TimeSlots,
		cfg.Booking.MaxSessions,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		formsSvc,
		submitter,
		journal,
		metricsCollector,
		log,
	)
	getCalendarDayUseCase := getCalendarDayUC.NewUseCase(
		holidayProvider,
		cfg.Booking.TimeSlots,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(formsSvc, log)
	getSession := getSessionHandler.NewHandler(formsSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(formsSvc, log)
	resetSession := resetSessionHandler.NewHandler(formsSvc, log)
	setField := setFieldHandler.NewHandler(formsSvc, cfg.Booking.MaxUploadBytes, log)
	validateField := validateFieldHandler.NewHandler(formsSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getHolidays := getHolidaysHandler.NewHandler(holidayProvider, log)
	getCalendarDay := getCalendarDayHandler.NewHandler(getCalendarDayUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Формы ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/sessions/{sessionId}/fields/{field}", setField.Handle).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/sessions/{sessionId}/fields/{field}/validate", validateField.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{sessionId}/reset", resetSession.Handle).Methods(http.MethodPost, http.MethodOptions)

	// --- Календарь ---
	api.HandleFunc("/holidays", getHolidays.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/calendar/{date}", getCalendarDay.Handle).Methods(http.MethodGet, http.MethodOptions)

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
