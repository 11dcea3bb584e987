package config

import (
	"fmt"
	"time"
)

// Supported document store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ClientIdentity holds account provider settings used by the identity
// adapter.
type ClientIdentity struct {
	// BaseURL is the provider API root URL.
	BaseURL string
	// APIKey is the project API key sent with every request.
	APIKey string
	// RequestTimeout is the default timeout for outbound provider requests.
	RequestTimeout time.Duration
}

// ClientDB contains document store connection settings for the client.
type ClientDB struct {
	// Driver is "postgres" or "sqlite".
	Driver string
	// DSN is the connection string for the selected driver.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds document store settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AccountRefreshInterval defines how often the account watcher re-reads
	// the signed-in account from the provider.
	AccountRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is the application version string.
	Version string
	// Identity contains account provider settings.
	Identity ClientIdentity
	// Storage contains document store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Version: cfg.App.Version,
		Identity: ClientIdentity{
			BaseURL:        cfg.Identity.BaseURL,
			APIKey:         cfg.Identity.APIKey,
			RequestTimeout: cfg.Identity.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{AccountRefreshInterval: cfg.Workers.AccountRefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
