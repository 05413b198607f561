package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"eventra-dashboard-service/internal/clock"
	"eventra-dashboard-service/internal/config"
	"eventra-dashboard-service/internal/platform/server"
	"eventra-dashboard-service/migrations"

	dashboardBackend "eventra-dashboard-service/internal/dashboard/adapters/backendapi"
	dashboardHttp "eventra-dashboard-service/internal/dashboard/adapters/http/fiber"
	dashboardRepoPg "eventra-dashboard-service/internal/dashboard/adapters/postgres"
	dashboardProm "eventra-dashboard-service/internal/dashboard/adapters/prometheus"
	dashboardPorts "eventra-dashboard-service/internal/dashboard/core/ports"
	dashboardUsecase "eventra-dashboard-service/internal/dashboard/core/usecase"

	eventsHttp "eventra-dashboard-service/internal/events/adapters/http/fiber"
	eventsRepoPg "eventra-dashboard-service/internal/events/adapters/postgres"
	eventsUsecase "eventra-dashboard-service/internal/events/core/usecase"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/valyala/fasthttp"

	_ "eventra-dashboard-service/docs"
)

// @title Eventra Dashboard Service API
// @version 1.0
// @description Admin dashboard figures and event catalog for the Eventra platform.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	// DB connection (optional when the dashboard reads the backend API)
	var db *sql.DB
	if cfg.HasDatabase() {
		db, err = sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxIdleConns)
		db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}

		if cfg.RunMigrations {
			if err := migrations.Apply(context.Background(), db); err != nil {
				log.Fatalf("failed to apply migrations: %v", err)
			}
		}
	}

	clk := clock.NewSystem(cfg.Location())

	// Dashboard source
	var reader dashboardPorts.EventReaderPort
	switch cfg.DashboardSource {
	case config.SourceBackend:
		client := &fasthttp.Client{Name: "eventra-dashboard-service"}
		reader = dashboardBackend.NewEventReader(client, cfg.BackendAPIURL, cfg.BackendTimeout, log.Default())
		log.Printf("dashboard source: backend api %s", cfg.BackendAPIURL)
	default:
		reader = dashboardRepoPg.NewEventReader(dashboardRepoPg.NewSQLDB(db))
		log.Println("dashboard source: postgres")
	}

	// Usecases
	getDashboardUC := dashboardUsecase.NewGetDashboardUseCase(reader, clk)
	computeDashboardUC := dashboardUsecase.NewComputeDashboardUseCase(clk)

	// Prometheus
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		dashboardProm.NewCollector(getDashboardUC, cfg.MetricsScrapeTimeout, log.Default()),
	)

	// HTTP (Fiber) app + handlers
	app := server.New(server.Options{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
	})

	if db != nil {
		app.Get("/healthz", server.Health(db))
	} else {
		app.Get("/healthz", server.Health())
	}
	app.Get("/metrics", server.Metrics(registry))

	// dashboard endpoints
	dashboardHandler := dashboardHttp.NewDashboardHandler(getDashboardUC, computeDashboardUC)
	app.Get("/dashboard", dashboardHandler.GetDashboard)
	app.Post("/dashboard/compute", dashboardHandler.ComputeDashboard)

	// events endpoints
	if db != nil {
		eventRepository := eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db))
		storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository, clk)
		listEventsUC := eventsUsecase.NewListEventsUseCase(eventRepository)

		eventsHandler := eventsHttp.NewEventHandler(storeEventUC, listEventsUC)
		app.Post("/events", eventsHandler.CreateEvent)
		app.Post("/events/bulk", eventsHandler.BulkCreateEvents)
		app.Get("/events", eventsHandler.ListEvents)
	} else {
		log.Println("POSTGRES_DSN not set: event catalog endpoints disabled")
	}

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
