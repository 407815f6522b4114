package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_EnvThenJSON(t *testing.T) {
	jsonPath := writeConfigFile(t, `{
		"project": {"id": "json-project"},
		"adapter": {"request_timeout": "45s"}
	}`)

	t.Setenv("IDENTIKIT_PROJECT_ID", "env-project")
	t.Setenv("IDENTIKIT_CONFIG", jsonPath)

	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()

	require.NoError(t, err)
	// Env wins for fields it sets; JSON fills the gaps.
	assert.Equal(t, "env-project", cfg.Project.ID)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
}

func TestConfigBuilder_MissingProjectID(t *testing.T) {
	_, err := newConfigBuilder().build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProjectIDRequired)
}

func TestConfigBuilder_BrokenJSONFile(t *testing.T) {
	jsonPath := writeConfigFile(t, `{not json`)

	t.Setenv("IDENTIKIT_PROJECT_ID", "env-project")
	t.Setenv("IDENTIKIT_CONFIG", jsonPath)

	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestStructuredConfig_Validate(t *testing.T) {
	valid := &StructuredConfig{Project: Project{ID: "p"}}
	assert.NoError(t, valid.validate())

	negative := &StructuredConfig{
		Project: Project{ID: "p"},
		Adapter: Adapter{RequestTimeout: -time.Second},
	}
	assert.ErrorIs(t, negative.validate(), ErrInvalidRequestTimeout)
}
