// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [ClientConfig] satisfies all
// invariants required before the client can start.
//
// Returns nil if the configuration is valid, or one of the Err* sentinel
// errors otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Identity.BaseURL == "" || cfg.Identity.APIKey == "" || cfg.Identity.RequestTimeout == 0 {
		return ErrInvalidIdentityConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.AccountRefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
