package models

import (
	"errors"
	"fmt"
)

var (
	ErrStateUndefined       = errors.New("state should be defined")
	ErrInvalidState         = errors.New(`state must be either "ENABLED" or "DISABLED"`)
	ErrInvalidFactorID      = errors.New(`factorId must be "PHONE_SMS"`)
	ErrTOTPConfigMissing    = errors.New("totpProviderConfig must be present")
	ErrInvalidAdjacentRange = errors.New("adjacentIntervals must be an integer between 1 and 10")
	ErrNilProviderConfig    = errors.New("providerConfigs must not contain nil entries")
)

// ProviderState defines whether a multi-factor provider is active.
// The values mirror the identity-platform wire representation.
type ProviderState string

const (
	// StateEnabled activates the provider for all sign-in flows.
	StateEnabled ProviderState = "ENABLED"

	// StateDisabled deactivates the provider without deleting its settings.
	StateDisabled ProviderState = "DISABLED"
)

// AuthFactor identifies a second authentication factor supported by the
// identity platform. PhoneSMS is currently the only accepted value.
type AuthFactor string

// PhoneSMS is the SMS-to-phone second factor.
const PhoneSMS AuthFactor = "PHONE_SMS"

// TOTPProviderConfig holds settings for the time-based one-time password
// provider.
type TOTPProviderConfig struct {
	// AdjacentIntervals is the number of adjacent time windows accepted
	// during TOTP verification. Must be between 1 and 10 inclusive.
	AdjacentIntervals int `json:"adjacentIntervals"`
}

// Validate checks that the TOTP settings are acceptable to the backend.
func (t *TOTPProviderConfig) Validate() error {
	if t.AdjacentIntervals < 1 || t.AdjacentIntervals > 10 {
		return fmt.Errorf("totpProviderConfig: %w: got %d", ErrInvalidAdjacentRange, t.AdjacentIntervals)
	}
	return nil
}

func (t *TOTPProviderConfig) buildServerRequest() map[string]any {
	return map[string]any{"adjacentIntervals": t.AdjacentIntervals}
}

// ProviderConfig describes one multi-factor provider entry.
type ProviderConfig struct {
	// State toggles the provider. Required.
	State ProviderState `json:"state"`

	// TOTPProviderConfig holds provider-specific TOTP settings. Required.
	TOTPProviderConfig *TOTPProviderConfig `json:"totpProviderConfig"`
}

// Validate checks the provider entry shape before it is sent to the backend.
func (p *ProviderConfig) Validate() error {
	if err := validateState("providerConfig.state", p.State); err != nil {
		return err
	}
	if p.TOTPProviderConfig == nil {
		return fmt.Errorf("providerConfig: %w", ErrTOTPConfigMissing)
	}
	return p.TOTPProviderConfig.Validate()
}

func (p *ProviderConfig) buildServerRequest() map[string]any {
	return map[string]any{
		"state":              string(p.State),
		"totpProviderConfig": p.TOTPProviderConfig.buildServerRequest(),
	}
}

// MultiFactorConfig is the caller-supplied multi-factor-authentication policy
// for a project. It validates itself locally and serializes to the wire
// fragment stored under the "mfa" key of the project config resource.
type MultiFactorConfig struct {
	// State toggles multi-factor authentication project-wide. Required.
	State ProviderState `json:"state"`

	// FactorIDs lists the second factors users may enroll.
	// Each entry must be a supported [AuthFactor]. Optional.
	FactorIDs []AuthFactor `json:"factorIds,omitempty"`

	// ProviderConfigs holds per-provider settings. Optional, but entries
	// must be fully specified when present.
	ProviderConfigs []*ProviderConfig `json:"providerConfigs,omitempty"`
}

// Validate checks the whole policy tree. It is called by the project-config
// service before any network request is made.
func (m *MultiFactorConfig) Validate() error {
	if err := validateState("multiFactorConfig.state", m.State); err != nil {
		return err
	}
	for _, id := range m.FactorIDs {
		if id != PhoneSMS {
			return fmt.Errorf("multiFactorConfig.factorIds: %w: got %q", ErrInvalidFactorID, id)
		}
	}
	for i, pc := range m.ProviderConfigs {
		if pc == nil {
			return fmt.Errorf("multiFactorConfig.providerConfigs[%d]: %w", i, ErrNilProviderConfig)
		}
		if err := pc.Validate(); err != nil {
			return fmt.Errorf("multiFactorConfig.providerConfigs[%d]: %w", i, err)
		}
	}
	return nil
}

// BuildServerRequest validates the policy and returns its wire fragment.
// Only fields the caller actually set are included.
func (m *MultiFactorConfig) BuildServerRequest() (map[string]any, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	req := map[string]any{"state": string(m.State)}
	if len(m.FactorIDs) > 0 {
		ids := make([]string, 0, len(m.FactorIDs))
		for _, id := range m.FactorIDs {
			ids = append(ids, string(id))
		}
		req["factorIds"] = ids
	}
	if len(m.ProviderConfigs) > 0 {
		pcs := make([]map[string]any, 0, len(m.ProviderConfigs))
		for _, pc := range m.ProviderConfigs {
			pcs = append(pcs, pc.buildServerRequest())
		}
		req["providerConfigs"] = pcs
	}

	return req, nil
}

func validateState(field string, s ProviderState) error {
	switch s {
	case StateEnabled, StateDisabled:
		return nil
	case "":
		return fmt.Errorf("%s: %w", field, ErrStateUndefined)
	default:
		return fmt.Errorf("%s: %w: got %q", field, ErrInvalidState, s)
	}
}
