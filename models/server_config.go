package models

import (
	"errors"
	"fmt"
)

// ErrNotAnObject is returned when a server-config view is constructed from a
// raw value that is not a JSON object.
var ErrNotAnObject = errors.New("data must be a JSON object")

// MultiFactorServerConfig is a read-only view over the raw multi-factor
// policy fragment returned by the backend. Accessors re-derive their values
// from the wrapped object on every call; they return zero values or nil when
// the corresponding key is missing.
type MultiFactorServerConfig struct {
	data map[string]any
}

// NewMultiFactorServerConfig wraps the raw "mfa" fragment of a project
// config response. Returns an error if data is not a JSON object.
func NewMultiFactorServerConfig(data any) (*MultiFactorServerConfig, error) {
	m, err := asObject("MultiFactorServerConfig", data)
	if err != nil {
		return nil, err
	}
	return &MultiFactorServerConfig{data: m}, nil
}

// State returns the project-wide multi-factor state, or an empty string if
// the backend did not report one.
func (c *MultiFactorServerConfig) State() ProviderState {
	s, _ := c.data["state"].(string)
	return ProviderState(s)
}

// EnabledProviders returns the factor ids users may enroll, or nil.
func (c *MultiFactorServerConfig) EnabledProviders() []AuthFactor {
	raw, _ := c.data["factorIds"].([]any)
	if len(raw) == 0 {
		return nil
	}

	ids := make([]AuthFactor, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, AuthFactor(s))
		}
	}
	return ids
}

// ProviderConfigs returns the per-provider entries, or nil when the fragment
// carries none. Entries that are not JSON objects are skipped.
func (c *MultiFactorServerConfig) ProviderConfigs() []*ProviderServerConfig {
	raw, _ := c.data["providerConfigs"].([]any)
	if len(raw) == 0 {
		return nil
	}

	configs := make([]*ProviderServerConfig, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			configs = append(configs, &ProviderServerConfig{data: m})
		}
	}
	return configs
}

// ProviderServerConfig is a read-only view over one provider entry of the
// multi-factor policy fragment.
type ProviderServerConfig struct {
	data map[string]any
}

// NewProviderServerConfig wraps one raw provider entry. Returns an error if
// data is not a JSON object.
func NewProviderServerConfig(data any) (*ProviderServerConfig, error) {
	m, err := asObject("ProviderServerConfig", data)
	if err != nil {
		return nil, err
	}
	return &ProviderServerConfig{data: m}, nil
}

// State returns the provider state reported by the backend.
func (c *ProviderServerConfig) State() ProviderState {
	s, _ := c.data["state"].(string)
	return ProviderState(s)
}

// TOTPProviderConfig returns the TOTP settings view, or nil when the entry
// carries no (or an empty) totpProviderConfig object.
func (c *ProviderServerConfig) TOTPProviderConfig() *TOTPProviderServerConfig {
	m, _ := c.data["totpProviderConfig"].(map[string]any)
	if len(m) == 0 {
		return nil
	}
	return &TOTPProviderServerConfig{data: m}
}

// TOTPProviderServerConfig is a read-only view over the TOTP settings of one
// provider entry.
type TOTPProviderServerConfig struct {
	data map[string]any
}

// AdjacentIntervals returns the accepted TOTP window count, or 0 when the
// backend did not report one.
func (c *TOTPProviderServerConfig) AdjacentIntervals() int {
	// JSON numbers decode as float64.
	if f, ok := c.data["adjacentIntervals"].(float64); ok {
		return int(f)
	}
	return 0
}

// EmailPrivacyServerConfig is a read-only view over the raw email-privacy
// fragment returned by the backend.
type EmailPrivacyServerConfig struct {
	data map[string]any
}

// NewEmailPrivacyServerConfig wraps the raw "emailPrivacyConfig" fragment of
// a project config response. Returns an error if data is not a JSON object.
func NewEmailPrivacyServerConfig(data any) (*EmailPrivacyServerConfig, error) {
	m, err := asObject("EmailPrivacyServerConfig", data)
	if err != nil {
		return nil, err
	}
	return &EmailPrivacyServerConfig{data: m}, nil
}

// EnableImprovedEmailPrivacy reports whether improved email privacy is
// active for the project.
func (c *EmailPrivacyServerConfig) EnableImprovedEmailPrivacy() bool {
	b, _ := c.data["enableImprovedEmailPrivacy"].(bool)
	return b
}

func asObject(kind string, data any) (map[string]any, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid data argument in %s constructor: %w: got %T", kind, ErrNotAnObject, data)
	}
	return m, nil
}
