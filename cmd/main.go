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

	cancelBookingHandler "github.com/haulport/DockSlotService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/haulport/DockSlotService/internal/api/handlers/create_booking"
	createClosureHandler "github.com/haulport/DockSlotService/internal/api/handlers/create_closure"
	deleteClosureHandler "github.com/haulport/DockSlotService/internal/api/handlers/delete_closure"
	deleteHoursOverrideHandler "github.com/haulport/DockSlotService/internal/api/handlers/delete_hours_override"
	getAvailableSlotsHandler "github.com/haulport/DockSlotService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/haulport/DockSlotService/internal/api/handlers/get_booking"
	getCarrierBookingsHandler "github.com/haulport/DockSlotService/internal/api/handlers/get_carrier_bookings"
	getFacilityBookingsHandler "github.com/haulport/DockSlotService/internal/api/handlers/get_facility_bookings"
	getFacilityScheduleHandler "github.com/haulport/DockSlotService/internal/api/handlers/get_facility_schedule"
	updateBookingStatusHandler "github.com/haulport/DockSlotService/internal/api/handlers/update_booking_status"
	upsertHoursOverrideHandler "github.com/haulport/DockSlotService/internal/api/handlers/upsert_hours_override"
	"github.com/haulport/DockSlotService/internal/api/middleware"
	"github.com/haulport/DockSlotService/internal/config"
	bookingRepo "github.com/haulport/DockSlotService/internal/infra/storage/booking"
	scheduleRepo "github.com/haulport/DockSlotService/internal/infra/storage/schedule"
	carrierServiceClient "github.com/haulport/DockSlotService/internal/integrations/carrierservice"
	warehouseServiceClient "github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
	bookingsService "github.com/haulport/DockSlotService/internal/service/bookings"
	scheduleService "github.com/haulport/DockSlotService/internal/service/schedule"
	createBookingUC "github.com/haulport/DockSlotService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/haulport/DockSlotService/internal/usecase/get_available_slots"
	"github.com/haulport/DockSlotService/pkg/dbmetrics"
	"github.com/haulport/DockSlotService/pkg/logger"
	"github.com/haulport/DockSlotService/pkg/metrics"
	"github.com/haulport/DockSlotService/pkg/simpletxmanager"
	"github.com/haulport/DockSlotService/pkg/txmanager"
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

	log.Info("Starting DockSlotService...")
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

	warehouseClient := warehouseServiceClient.NewClient(
		cfg.WarehouseService.URL,
		time.Duration(cfg.WarehouseService.Timeout)*time.Second,
		log,
	)
	carrierClient := carrierServiceClient.NewClient(
		cfg.CarrierService.URL,
		time.Duration(cfg.CarrierService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (WarehouseService=%s timeout=%ds, CarrierService=%s timeout=%ds)",
		cfg.WarehouseService.URL, cfg.WarehouseService.Timeout, cfg.CarrierService.URL, cfg.CarrierService.Timeout)

	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.New(
		bookingRepository,
		warehouseClient,
		log,
	)
	scheduleSvc := scheduleService.New(
		scheduleRepository,
		warehouseClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		warehouseClient,
		carrierClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		warehouseClient,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCarrierBookings := getCarrierBookingsHandler.NewHandler(bookingSvc, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getFacilitySchedule := getFacilityScheduleHandler.NewHandler(scheduleSvc, log)
	upsertHoursOverride := upsertHoursOverrideHandler.NewHandler(scheduleSvc, log)
	deleteHoursOverride := deleteHoursOverrideHandler.NewHandler(scheduleSvc, log)
	createClosure := createClosureHandler.NewHandler(scheduleSvc, log)
	deleteClosure := deleteClosureHandler.NewHandler(scheduleSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// All routes require the gateway's X-User-ID header: slot visibility
	// is per-carrier and the schedule surface is manager-only.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Availability
	protected.HandleFunc("/organizations/{orgId}/facilities/{facilityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Bookings
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getCarrierBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Facility management (managers)
	protected.HandleFunc("/facilities/{facilityId}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facilityId}/schedule", getFacilitySchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facilityId}/schedule/hours", upsertHoursOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/facilities/{facilityId}/schedule/hours/{overrideId}", deleteHoursOverride.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/facilities/{facilityId}/schedule/closures", createClosure.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/facilities/{facilityId}/schedule/closures/{closureId}", deleteClosure.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
