package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-identity-url account provider API base URL
//	-identity-api-key account provider API key
//	-request-timeout provider request timeout (e.g., "30s", "1m")
//	-driver document store driver ("postgres" or "sqlite")
//	-d document store DSN
//	-refresh-interval account refresh interval (e.g., "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var identityBaseURL string
	var identityAPIKey string
	var requestTimeout time.Duration
	var storageDriver string
	var databaseDSN string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&identityBaseURL, "identity-url", "", "Account provider API base URL")
	flag.StringVar(&identityAPIKey, "identity-api-key", "", "Account provider API key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Provider request timeout (e.g., 30s, 1m)")
	flag.StringVar(&storageDriver, "driver", "", "Document store driver (postgres or sqlite)")
	flag.StringVar(&databaseDSN, "d", "", "Document store DSN")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Account refresh interval (e.g., 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Identity: Identity{
			BaseURL:        identityBaseURL,
			APIKey:         identityAPIKey,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: storageDriver,
				DSN:    databaseDSN,
			},
		},
		Workers: Workers{
			AccountRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
