package cmd

// Store backends selectable via STORE_BACKEND.
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// Config carries everything the composition root needs to wire the service.
// Values come from the environment, with defaults suitable for local runs.
type Config struct {
	HTTPPort string

	// APISecret is the shared secret expected in the X-API-Key header.
	APISecret string

	// CourierAPIURL is the endpoint orders are forwarded to.
	CourierAPIURL string
	// CourierAPIKey is sent as a bearer credential when non-empty.
	CourierAPIKey string

	// StoreBackend selects the persistence adapter: "file" or "postgres".
	StoreBackend string
	// OrdersFile is the JSON file path used by the file backend.
	OrdersFile string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DispatchWorkers   int
	DispatchQueueSize int
}
