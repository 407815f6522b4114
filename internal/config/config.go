// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// identikit SDK and its CLI. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups
//     (caarlos0/env). All variables additionally carry the global
//     IDENTIKIT_ prefix.
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Project identifies the identity-platform project and the credentials
	// used to access it.
	Project Project `envPrefix:"PROJECT_"`

	// Adapter holds network settings for the HTTPS transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via IDENTIKIT_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Project holds project identity and credential settings.
type Project struct {
	// ID is the identity-platform project identifier. Required.
	ID string `env:"ID"`

	// CredentialsFile is the path to a service-account JSON key file.
	// When empty, application-default credentials are used.
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	// AccessToken is a static bearer token overriding credential
	// discovery. Intended for tests and emulators.
	AccessToken string `env:"ACCESS_TOKEN"`
}

// Adapter holds settings for the outbound HTTPS transport.
type Adapter struct {
	// Endpoint overrides the production configuration API base URL.
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig assembles the configuration from all sources:
// environment variables first, then command-line flags, then the optional
// JSON file, merged so that earlier sources win for fields they set.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// validate checks that the merged configuration satisfies the SDK's
// invariants before it is used.
func (cfg *StructuredConfig) validate() error {
	if cfg.Project.ID == "" {
		return ErrProjectIDRequired
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidRequestTimeout
	}
	return nil
}
