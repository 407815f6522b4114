package projectconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/identikit/identikit/models"
)

func TestNewProjectConfig_NotAnObject(t *testing.T) {
	for _, data := range []any{nil, "foo", 0, 1, true, false, []any{}, []string{"a"}} {
		cfg, err := NewProjectConfig(data)

		require.Error(t, err, "data=%v", data)
		assert.ErrorIs(t, err, ErrInvalidConfigData)
		assert.Nil(t, cfg)
	}
}

func TestProjectConfig_BothSectionsPresent(t *testing.T) {
	cfg, err := NewProjectConfig(map[string]any{
		"mfa": map[string]any{
			"state":     "ENABLED",
			"factorIds": []any{"PHONE_SMS"},
			"providerConfigs": []any{
				map[string]any{
					"state":              "ENABLED",
					"totpProviderConfig": map[string]any{"adjacentIntervals": float64(5)},
				},
			},
		},
		"emailPrivacyConfig": map[string]any{"enableImprovedEmailPrivacy": true},
	})
	require.NoError(t, err)

	mfa := cfg.MultiFactorConfig()
	require.NotNil(t, mfa)
	assert.Equal(t, models.StateEnabled, mfa.State())
	assert.Equal(t, []models.AuthFactor{models.PhoneSMS}, mfa.EnabledProviders())
	require.Len(t, mfa.ProviderConfigs(), 1)
	assert.Equal(t, 5, mfa.ProviderConfigs()[0].TOTPProviderConfig().AdjacentIntervals())

	privacy := cfg.EmailPrivacyConfig()
	require.NotNil(t, privacy)
	assert.True(t, privacy.EnableImprovedEmailPrivacy())
}

func TestNewProjectConfig_NonObjectSection(t *testing.T) {
	for _, section := range []any{"bogus", float64(7), true, []any{"x"}} {
		cfg, err := NewProjectConfig(map[string]any{"mfa": section})

		require.Error(t, err, "section=%v", section)
		assert.ErrorIs(t, err, ErrInvalidConfigData)
		assert.Nil(t, cfg)
	}

	_, err := NewProjectConfig(map[string]any{"emailPrivacyConfig": "bogus"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfigData)
}

func TestNewProjectConfig_FalsySectionsAreAbsent(t *testing.T) {
	for _, section := range []any{nil, false, float64(0), "", []any{}} {
		cfg, err := NewProjectConfig(map[string]any{"mfa": section})

		require.NoError(t, err, "section=%v", section)
		assert.Nil(t, cfg.MultiFactorConfig())
	}
}

func TestProjectConfig_MissingSectionsAreAbsent(t *testing.T) {
	cfg, err := NewProjectConfig(map[string]any{})
	require.NoError(t, err)

	assert.Nil(t, cfg.MultiFactorConfig())
	assert.Nil(t, cfg.EmailPrivacyConfig())
}

func TestProjectConfig_EmptySectionsAreAbsent(t *testing.T) {
	cfg, err := NewProjectConfig(map[string]any{
		"mfa":                map[string]any{},
		"emailPrivacyConfig": map[string]any{},
	})
	require.NoError(t, err)

	assert.Nil(t, cfg.MultiFactorConfig())
	assert.Nil(t, cfg.EmailPrivacyConfig())
}

func TestProjectConfig_AccessorsAreIdempotent(t *testing.T) {
	cfg, err := NewProjectConfig(map[string]any{
		"mfa": map[string]any{"state": "DISABLED"},
	})
	require.NoError(t, err)

	first := cfg.MultiFactorConfig()
	second := cfg.MultiFactorConfig()

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.State(), second.State())
}
