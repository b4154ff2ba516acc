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

	cancelAppointmentHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/create_appointment"
	downloadICSHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/download_ics"
	getAvailableSlotsHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/get_available_slots"
	getCalendarLinksHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/get_calendar_links"
	getStatsHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/get_stats"
	listAppointmentsHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/list_appointments"
	listMessagesHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/list_messages"
	markMessageReadHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/mark_message_read"
	submitContactHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/submit_contact"
	updateAppointmentStatusHandler "github.com/sanbud-pl/booking-service/internal/api/handlers/update_appointment_status"
	"github.com/sanbud-pl/booking-service/internal/api/middleware"
	"github.com/sanbud-pl/booking-service/internal/calendarexport"
	"github.com/sanbud-pl/booking-service/internal/config"
	appointmentRepo "github.com/sanbud-pl/booking-service/internal/infra/storage/appointment"
	customerRepo "github.com/sanbud-pl/booking-service/internal/infra/storage/customer"
	messageRepo "github.com/sanbud-pl/booking-service/internal/infra/storage/message"
	appointmentsService "github.com/sanbud-pl/booking-service/internal/service/appointments"
	messagesService "github.com/sanbud-pl/booking-service/internal/service/messages"
	createAppointmentUC "github.com/sanbud-pl/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/sanbud-pl/booking-service/internal/usecase/get_available_slots"
	submitContactUC "github.com/sanbud-pl/booking-service/internal/usecase/submit_contact"
	"github.com/sanbud-pl/booking-service/pkg/dbmetrics"
	"github.com/sanbud-pl/booking-service/pkg/logger"
	"github.com/sanbud-pl/booking-service/pkg/metrics"
	"github.com/sanbud-pl/booking-service/pkg/simpletxmanager"
	"github.com/sanbud-pl/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting sanbud-booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and transaction manager, with or without DB metrics
	var (
		appointmentRepository *appointmentRepo.Repository
		customerRepository    *customerRepo.Repository
		messageRepository     *messageRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		messageRepository = messageRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		messageRepository = messageRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Booking policy shared by the slot and booking use cases
	schedule := cfg.Schedule()
	location := cfg.Location()
	company := calendarexport.CompanyInfo{
		Name:     cfg.Company.Name,
		Phone:    cfg.Company.Phone,
		Email:    cfg.Company.Email,
		Location: cfg.Company.Location,
	}
	appointmentDuration := time.Duration(cfg.Booking.AppointmentDurationMinutes) * time.Minute

	// Services
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	messageSvc := messagesService.NewService(messageRepository, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		schedule,
		getAvailableSlotsUC.Policy{
			SlotDurationMinutes:        cfg.Booking.SlotDurationMinutes,
			AppointmentDurationMinutes: cfg.Booking.AppointmentDurationMinutes,
			MinNoticeMinutes:           cfg.Booking.MinNoticeMinutes,
			AdvanceBookingDays:         cfg.Booking.AdvanceBookingDays,
		},
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		txMgr,
		schedule,
		createAppointmentUC.Policy{
			SlotDurationMinutes:        cfg.Booking.SlotDurationMinutes,
			AppointmentDurationMinutes: cfg.Booking.AppointmentDurationMinutes,
			MinNoticeMinutes:           cfg.Booking.MinNoticeMinutes,
			AdvanceBookingDays:         cfg.Booking.AdvanceBookingDays,
		},
		log,
	)

	submitContactUseCase := submitContactUC.NewUseCase(messageRepository, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, cfg.Company.FallbackPhone, log)
	submitContact := submitContactHandler.NewHandler(submitContactUseCase, log)
	getCalendarLinks := getCalendarLinksHandler.NewHandler(appointmentSvc, company, appointmentDuration, location, log)
	downloadICS := downloadICSHandler.NewHandler(appointmentSvc, company, appointmentDuration, location, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	listMessages := listMessagesHandler.NewHandler(messageSvc, log)
	markMessageRead := markMessageReadHandler.NewHandler(messageSvc, log)
	getStats := getStatsHandler.NewHandler(appointmentSvc, messageSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/book-appointment", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{ref}/calendar", getCalendarLinks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{ref}/calendar.ics", downloadICS.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (require X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken, log))

	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/messages", listMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/messages/{messageId}/read", markMessageRead.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

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
