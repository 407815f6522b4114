package projectconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePayload_MarshalJSON_PreservesOrder(t *testing.T) {
	payload := updatePayload{
		{key: "mfa", value: map[string]any{"state": "ENABLED"}},
		{key: "emailPrivacyConfig", value: map[string]any{"enableImprovedEmailPrivacy": true}},
	}

	data, err := json.Marshal(payload)

	require.NoError(t, err)
	// Raw byte comparison: key order must match insertion order.
	assert.Equal(t, `{"mfa":{"state":"ENABLED"},"emailPrivacyConfig":{"enableImprovedEmailPrivacy":true}}`, string(data))
}

func TestUpdatePayload_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(updatePayload{})

	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestUpdatePayload_UpdateMask(t *testing.T) {
	assert.Equal(t, "", updatePayload{}.UpdateMask())
	assert.Equal(t, "mfa", updatePayload{{key: "mfa"}}.UpdateMask())
	assert.Equal(t, "mfa,emailPrivacyConfig",
		updatePayload{{key: "mfa"}, {key: "emailPrivacyConfig"}}.UpdateMask())
}
