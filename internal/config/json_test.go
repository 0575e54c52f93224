package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"demo_open_id": "demo_user",
			"version": "1.2.3"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"assistant": {
			"base_url": "https://llm.example.com/v1",
			"api_key": "sk-test",
			"model": "gpt-4o-mini",
			"timeout": "20s"
		},
		"voice": {
			"base_url": "https://voice.example.com",
			"timeout": "45s"
		},
		"blob": {
			"base_url": "https://blob.example.com",
			"api_key": "blob-key"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "demo_user", cfg.App.DemoOpenID)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "https://llm.example.com/v1", cfg.Assistant.BaseURL)
	assert.Equal(t, "sk-test", cfg.Assistant.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Assistant.Model)
	assert.Equal(t, 20*time.Second, cfg.Assistant.Timeout)

	assert.Equal(t, "https://voice.example.com", cfg.Voice.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Voice.Timeout)

	assert.Equal(t, "https://blob.example.com", cfg.Blob.BaseURL)
	assert.Equal(t, "blob-key", cfg.Blob.APIKey)
}

func TestParseJSON_FileDoesNotExist(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {`), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"90s"`, want: 90 * time.Second},
		{name: "hours", input: `"2h"`, want: 2 * time.Hour},
		{name: "float nanoseconds", input: `1000000000`, want: time.Second},
		{name: "garbage string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
