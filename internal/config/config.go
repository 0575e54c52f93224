// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the lifehub
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session token parameters,
	// the demo identity, and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Assistant holds connection settings for the external language-model
	// service backing the AI assistant operations.
	Assistant Assistant `envPrefix:"ASSISTANT_"`

	// Voice holds connection settings for the external voice-transcription
	// service.
	Voice Voice `envPrefix:"VOICE_"`

	// Blob holds connection settings for the external blob-storage service
	// used for file uploads.
	Blob Blob `envPrefix:"BLOB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWT
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match this value are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DemoOpenID is the external identity handle every request falls back to
	// when it carries no bearer token. The store seeds a user with this
	// handle at startup, so identity resolution always succeeds.
	// Env: APP_DEMO_OPEN_ID
	DemoOpenID string `env:"DEMO_OPEN_ID"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Assistant holds connection settings for the external language-model
// service. The service speaks an OpenAI-compatible chat-completions API.
type Assistant struct {
	// BaseURL is the root URL of the language-model API.
	// Env: ASSISTANT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates requests to the language-model API.
	// Env: ASSISTANT_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model identifier passed on every completion request.
	// Env: ASSISTANT_MODEL
	Model string `env:"MODEL"`

	// Timeout bounds a single completion round trip.
	// Env: ASSISTANT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Voice holds connection settings for the external transcription service.
type Voice struct {
	// BaseURL is the root URL of the transcription API.
	// Env: VOICE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates requests to the transcription API.
	// Env: VOICE_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds a single transcription round trip.
	// Env: VOICE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Blob holds connection settings for the external blob-storage service.
type Blob struct {
	// BaseURL is the root URL of the blob-storage API; uploaded objects are
	// PUT under this URL keyed by their storage key.
	// Env: BLOB_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates requests to the blob-storage API.
	// Env: BLOB_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds a single upload round trip.
	// Env: BLOB_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
