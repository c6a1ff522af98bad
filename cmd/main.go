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

	cancelReservationHandler "github.com/MaximeC37/BikerBox-sub000/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/MaximeC37/BikerBox-sub000/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/MaximeC37/BikerBox-sub000/internal/api/handlers/get_availability"
	getLockerHandler "github.com/MaximeC37/BikerBox-sub000/internal/api/handlers/get_locker"
	getLockersHandler "github.com/MaximeC37/BikerBox-sub000/internal/api/handlers/get_lockers"
	getQuoteHandler "github.com/MaximeC37/BikerBox-sub000/internal/api/handlers/get_quote"
	getReservationHandler "github.com/MaximeC37/BikerBox-sub000/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/MaximeC37/BikerBox-sub000/internal/api/handlers/get_user_reservations"
	"github.com/MaximeC37/BikerBox-sub000/internal/api/middleware"
	"github.com/MaximeC37/BikerBox-sub000/internal/config"
	"github.com/MaximeC37/BikerBox-sub000/internal/infra/identity"
	lockerRepo "github.com/MaximeC37/BikerBox-sub000/internal/infra/storage/locker"
	"github.com/MaximeC37/BikerBox-sub000/internal/infra/storage/memory"
	reservationRepo "github.com/MaximeC37/BikerBox-sub000/internal/infra/storage/reservation"
	lockerCatalogClient "github.com/MaximeC37/BikerBox-sub000/internal/integrations/lockercatalog"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/ledger"
	lockersService "github.com/MaximeC37/BikerBox-sub000/internal/service/lockers"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/pricing"
	getAvailabilityUC "github.com/MaximeC37/BikerBox-sub000/internal/usecase/get_availability"
	"github.com/MaximeC37/BikerBox-sub000/pkg/logger"
	"github.com/MaximeC37/BikerBox-sub000/pkg/metrics"
	"github.com/MaximeC37/BikerBox-sub000/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("BIKERBOX_CONFIG"); p != "" {
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

	log.Info("Starting BikerBox reservation service...")
	log.Info("Configuration loaded from %s (storage=%s, catalog=%s)", configPath, cfg.Storage.Driver, cfg.Catalog.Source)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var ledgerMetrics ledger.Metrics = ledger.NopMetrics{}
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		ledgerMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных, если она нужна хранилищу или каталогу
	var db *sql.DB
	if cfg.Storage.Driver == config.StoragePostgres || cfg.Catalog.Source == config.CatalogSourcePostgres {
		db, err = sql.Open("postgres", cfg.Database.DSN())
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

		if cfg.Metrics.Enabled {
			if err := metricsCollector.RegisterDB(db, cfg.Database.DBName); err != nil {
				log.Warn("Failed to register database metrics: %v", err)
			}
		}
	}

	// Хранилище бронирований и менеджер транзакций
	var (
		store ledger.ReservationStore
		txMgr ledger.TransactionManager
	)
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		store = reservationRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)
	default:
		store = memory.NewReservationStore()
		txMgr = memory.NewTxManager()
	}
	log.Info("Reservation storage initialized (driver=%s)", cfg.Storage.Driver)

	// Каталог ячеек
	var catalog lockersService.LockerCatalog
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		catalog = lockerRepo.NewRepository(db)
	case config.CatalogSourceHTTP:
		catalog = lockerCatalogClient.NewClient(
			cfg.Catalog.URL,
			time.Duration(cfg.Catalog.Timeout)*time.Second,
			log,
		)
	default:
		memCatalog := memory.NewLockerCatalog()
		for _, l := range cfg.Catalog.Lockers {
			memCatalog.Put(l.ToDomain())
		}
		catalog = memCatalog
	}
	log.Info("Locker catalog initialized (source=%s)", cfg.Catalog.Source)

	// Инициализируем сервисы
	pricer := pricing.NewCalculator(cfg.Pricing.BasePrices())
	reservationLedger := ledger.NewLedger(
		catalog,
		store,
		pricer,
		identity.NewGenerator(),
		txMgr,
		ledger.RealClock{},
		ledgerMetrics,
		log,
		cfg.Ledger.MaxRetries,
	)
	lockerSvc := lockersService.NewService(catalog, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(catalog, store, pricer, log)

	// Инициализируем handlers
	getLockers := getLockersHandler.NewHandler(lockerSvc, log)
	getLocker := getLockerHandler.NewHandler(lockerSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(pricer, log)
	createReservation := createReservationHandler.NewHandler(reservationLedger, log)
	getReservation := getReservationHandler.NewHandler(reservationLedger, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationLedger, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationLedger, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/lockers", getLockers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lockers/{lockerId}", getLocker.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lockers/{lockerId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/users/me/reservations", getUserReservations.Handle).Methods(http.MethodGet)

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
