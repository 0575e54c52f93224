// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallback values applied by applyDefaults when no configuration source
// provides them.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDemoOpenID     = "demo_user"
	DefaultTokenIssuer    = "lifehub"
	DefaultTokenDuration  = 24 * time.Hour
)

// applyDefaults fills zero-valued fields of the merged configuration with
// safe fallbacks so the server can start with no configuration at all.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.DemoOpenID == "" {
		cfg.App.DemoOpenID = DefaultDemoOpenID
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	// Assistant, Voice and Blob adapters are optional: with an empty BaseURL
	// the corresponding operations report an upstream error instead of
	// failing startup.
	return nil
}
