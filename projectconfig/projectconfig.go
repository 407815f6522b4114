package projectconfig

import (
	"encoding/json"
	"fmt"

	"github.com/identikit/identikit/models"
)

// Wire keys of the two optional sub-sections of the project config resource.
const (
	keyMultiFactor  = "mfa"
	keyEmailPrivacy = "emailPrivacyConfig"
)

// ProjectConfig is an immutable snapshot of the project configuration as the
// backend returned it. Accessors re-derive their typed views from the stored
// raw object on every call; the snapshot itself is never mutated.
type ProjectConfig struct {
	data map[string]any
}

// NewProjectConfig wraps a decoded response body. Returns
// [ErrInvalidConfigData] (wrapped) if data is not a JSON object, or if one
// of its sub-sections holds a non-empty value that is not an object.
func NewProjectConfig(data any) (*ProjectConfig, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid data argument in ProjectConfig constructor: %w: got %T", ErrInvalidConfigData, data)
	}
	for _, key := range []string{keyMultiFactor, keyEmailPrivacy} {
		v, present := m[key]
		if !present || isEmptyValue(v) {
			continue
		}
		if _, ok := v.(map[string]any); !ok {
			return nil, fmt.Errorf("invalid %s value in ProjectConfig constructor: %w: got %T", key, ErrInvalidConfigData, v)
		}
	}
	return &ProjectConfig{data: m}, nil
}

// isEmptyValue reports whether a decoded JSON value counts as an omitted
// section: null, false, zero, the empty string, or an empty composite.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// MarshalJSON serializes the wrapped raw configuration object unchanged.
func (p *ProjectConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.data)
}

// MultiFactorConfig returns the typed view of the "mfa" sub-section, or nil
// when the backend returned no (or an empty) multi-factor policy.
func (p *ProjectConfig) MultiFactorConfig() *models.MultiFactorServerConfig {
	m, _ := p.data[keyMultiFactor].(map[string]any)
	if len(m) == 0 {
		return nil
	}

	cfg, err := models.NewMultiFactorServerConfig(m)
	if err != nil {
		return nil
	}
	return cfg
}

// EmailPrivacyConfig returns the typed view of the "emailPrivacyConfig"
// sub-section, or nil when the backend returned no (or an empty)
// email-privacy policy.
func (p *ProjectConfig) EmailPrivacyConfig() *models.EmailPrivacyServerConfig {
	m, _ := p.data[keyEmailPrivacy].(map[string]any)
	if len(m) == 0 {
		return nil
	}

	cfg, err := models.NewEmailPrivacyServerConfig(m)
	if err != nil {
		return nil
	}
	return cfg
}
