// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every environment variable the SDK reads, e.g.
// IDENTIKIT_PROJECT_ID or IDENTIKIT_ADAPTER_REQUEST_TIMEOUT.
const envPrefix = "IDENTIKIT_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env parsing fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
