package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "0.9.0"},
		"identity": map[string]any{
			"base_url":        "https://identity.example.com/v1",
			"api_key":         "file-key",
			"request_timeout": "15s",
		},
		"storage": map[string]any{
			"db": map[string]any{"driver": "sqlite", "dsn": "crm.db"},
		},
		"workers": map[string]any{"account_refresh_interval": "90s"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "https://identity.example.com/v1", cfg.Identity.BaseURL)
	assert.Equal(t, "file-key", cfg.Identity.APIKey)
	assert.Equal(t, 15*time.Second, cfg.Identity.RequestTimeout)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "crm.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 90*time.Second, cfg.Workers.AccountRefreshInterval)
	assert.Empty(t, cfg.JSONFilePath, "file path must not leak back into the merged config")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	f := writeTempJSONConfig(t, "not-an-object")

	_, err := parseJSON(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string duration", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(45 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(data))
}
