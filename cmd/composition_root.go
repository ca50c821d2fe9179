package cmd

import (
	"fmt"
	"log/slog"
	"os"

	httpadapter "orderagent/internal/adapters/in/http"
	"orderagent/internal/adapters/out/courier"
	"orderagent/internal/adapters/out/filestore"
	"orderagent/internal/adapters/out/postgres/orderrepo"
	"orderagent/internal/core/application/usecases/commands"
	"orderagent/internal/core/application/usecases/queries"
	"orderagent/internal/core/ports"
	"orderagent/internal/jobs"
	"orderagent/internal/workers"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the adapters, use cases, and background machinery
// of the service together.
type CompositionRoot struct {
	logger *slog.Logger

	store        ports.OrderStore
	dispatchPool *workers.DispatchPool
	jobManager   *jobs.JobManager
}

// NewCompositionRoot builds the full object graph from the given config.
// The store backend is selected here; everything downstream depends only on
// the OrderStore port.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store, err := createOrderStore(config)
	if err != nil {
		return nil, err
	}

	courierClient := courier.NewClient(config.CourierAPIURL, config.CourierAPIKey)
	dispatchHandler := commands.NewDispatchOrderCommandHandler(store, courierClient, logger)
	dispatchPool := workers.NewDispatchPool(
		dispatchHandler,
		config.DispatchWorkers,
		config.DispatchQueueSize,
		logger,
	)

	jobManager := jobs.NewJobManager(queries.NewCountOrdersByStatusQueryHandler(store), logger)

	return &CompositionRoot{
		logger:       logger,
		store:        store,
		dispatchPool: dispatchPool,
		jobManager:   jobManager,
	}, nil
}

// createOrderStore builds the persistence adapter selected by STORE_BACKEND.
func createOrderStore(config Config) (ports.OrderStore, error) {
	switch config.StoreBackend {
	case StoreBackendFile, "":
		store, err := filestore.NewStore(config.OrdersFile)
		if err != nil {
			return nil, fmt.Errorf("open orders file %q: %w", config.OrdersFile, err)
		}
		return store, nil

	case StoreBackendPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

		db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		if err := db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
			return nil, fmt.Errorf("migrate orders table: %w", err)
		}

		return orderrepo.NewGormOrderStore(db), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", config.StoreBackend)
	}
}

// Logger returns the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// DispatchPool returns the background dispatch scheduler.
func (c *CompositionRoot) DispatchPool() *workers.DispatchPool {
	return c.dispatchPool
}

// JobManager returns the scheduled jobs coordinator.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// CreateHTTPServer builds the HTTP adapter over the command and query handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateResendOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store, c.dispatchPool)
}

func (c *CompositionRoot) CreateResendOrderCommandHandler() commands.ResendOrderCommandHandler {
	return commands.NewResendOrderCommandHandler(c.store, c.dispatchPool)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}
