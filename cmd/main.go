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

	assignSlotHandler "github.com/dsevbo/MBP-BookingService/internal/api/handlers/assign_slot"
	createSlotHandler "github.com/dsevbo/MBP-BookingService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/dsevbo/MBP-BookingService/internal/api/handlers/delete_slot"
	getSlotHandler "github.com/dsevbo/MBP-BookingService/internal/api/handlers/get_slot"
	listAvailableSlotsHandler "github.com/dsevbo/MBP-BookingService/internal/api/handlers/list_available_slots"
	listSlotsHandler "github.com/dsevbo/MBP-BookingService/internal/api/handlers/list_slots"
	updateSlotHandler "github.com/dsevbo/MBP-BookingService/internal/api/handlers/update_slot"
	"github.com/dsevbo/MBP-BookingService/internal/api/middleware"
	"github.com/dsevbo/MBP-BookingService/internal/app"
	"github.com/dsevbo/MBP-BookingService/internal/config"
	slotRepo "github.com/dsevbo/MBP-BookingService/internal/infra/storage/slot"
	"github.com/dsevbo/MBP-BookingService/internal/notify"
	slotsService "github.com/dsevbo/MBP-BookingService/internal/service/slots"
	assignSlotUC "github.com/dsevbo/MBP-BookingService/internal/usecase/assign_slot"
	getAvailableSlotsUC "github.com/dsevbo/MBP-BookingService/internal/usecase/get_available_slots"
	"github.com/dsevbo/MBP-BookingService/pkg/logger"
	"github.com/dsevbo/MBP-BookingService/pkg/metrics"
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

	log.Info("Starting MBP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции схемы
	migrator, err := app.NewMigrator(db)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозиторий
	slotRepository := slotRepo.NewRepository(db)

	// Инициализируем почтовый транспорт
	var mailer notify.Mailer
	if sg := notify.NewSendGridMailer(
		cfg.Notifications.SendGridAPIKey,
		cfg.Notifications.FromEmail,
		cfg.Notifications.FromName,
		log,
	); sg != nil {
		mailer = sg
		log.Info("SendGrid mailer initialized (from=%s)", cfg.Notifications.FromEmail)
	} else {
		mailer = notify.NewStubMailer(log)
		log.Warn("SendGrid API key not configured, using stub mailer")
	}

	// Диспетчер уведомлений о бронированиях
	dispatcher := notify.NewDispatcher(
		slotRepository,
		mailer,
		cfg.Notifications.AdminEmail,
		cfg.Notifications.FromName,
		log,
	)
	if cfg.Notifications.AdminEmail != "" {
		log.Info("Admin booking notifications enabled (to=%s)", cfg.Notifications.AdminEmail)
	}

	// Инициализируем сервисы и use cases
	slotsSvc := slotsService.NewService(slotRepository, log)
	assignSlotUseCase := assignSlotUC.NewUseCase(slotRepository, dispatcher, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	getSlot := getSlotHandler.NewHandler(slotsSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	listAvailableSlots := listAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	assignSlot := assignSlotHandler.NewHandler(assignSlotUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Токены действий: каждая админская мутирующая ручка защищена собственным
	// токеном, привязанным к имени действия; публичное бронирование использует
	// отдельный, менее привилегированный секрет
	adminToken := func(action string) mux.MiddlewareFunc {
		return middleware.RequireActionToken(cfg.Security.AdminTokenSecret, action, log)
	}
	publicToken := middleware.RequireActionToken(cfg.Security.PublicTokenSecret, "book_slot", log)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Список доступных слотов (без токена)
	api.HandleFunc("/slots/available", listAvailableSlots.Handle).Methods(http.MethodGet)

	// Публичное бронирование слота
	api.Handle("/bookings",
		publicToken(http.HandlerFunc(assignSlot.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (токен на каждое действие)
	// ============================================================

	api.Handle("/slots",
		adminToken("add_booking")(http.HandlerFunc(createSlot.Handle))).Methods(http.MethodPost)

	api.Handle("/slots",
		adminToken("get_all_bookings")(http.HandlerFunc(listSlots.Handle))).Methods(http.MethodGet)

	api.Handle("/slots/{slotId}",
		adminToken("get_booking")(http.HandlerFunc(getSlot.Handle))).Methods(http.MethodGet)

	api.Handle("/slots/{slotId}",
		adminToken("update_booking")(http.HandlerFunc(updateSlot.Handle))).Methods(http.MethodPut)

	api.Handle("/slots/{slotId}",
		adminToken("delete_booking")(http.HandlerFunc(deleteSlot.Handle))).Methods(http.MethodDelete)

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
