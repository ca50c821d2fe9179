package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"orderagent/cmd"
	httpadapter "orderagent/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	app.DispatchPool().Start()
	defer app.DispatchPool().Stop()

	if err := app.JobManager().StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer app.JobManager().StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the environment itself may carry everything
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		APISecret:         envOrDefault("API_SECRET", "dev-secret"),
		CourierAPIURL:     envOrDefault("COURIER_API_URL", "https://httpbin.org/post"),
		CourierAPIKey:     envOrDefault("COURIER_API_KEY", ""),
		StoreBackend:      envOrDefault("STORE_BACKEND", cmd.StoreBackendFile),
		OrdersFile:        envOrDefault("ORDERS_FILE", "orders.json"),
		DBHost:            envOrDefault("DB_HOST", "localhost"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            envOrDefault("DB_USER", "postgres"),
		DBPassword:        envOrDefault("DB_PASSWORD", "postgres"),
		DBName:            envOrDefault("DB_NAME", "orderagent"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		DispatchWorkers:   envIntOrDefault("DISPATCH_WORKERS", 4),
		DispatchQueueSize: envIntOrDefault("DISPATCH_QUEUE_SIZE", 64),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Fatalf("%s must be a positive integer, got %q", key, raw)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := app.CreateHTTPServer()
	e.Use(httpadapter.NewAPIKeyMiddleware(configs.APISecret))
	api.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil &&
			err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	// Block until asked to shut down, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
