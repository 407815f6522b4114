package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-project project identifier
//	-credentials-file path to a service-account JSON key file
//	-access-token static bearer token (tests/emulators)
//	-endpoint configuration API base URL override
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var projectID string
	var credentialsFile string
	var accessToken string
	var endpoint string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&projectID, "project", "", "Project identifier")
	flag.StringVar(&credentialsFile, "credentials-file", "", "Service-account JSON key file path")
	flag.StringVar(&accessToken, "access-token", "", "Static bearer token")
	flag.StringVar(&endpoint, "endpoint", "", "Configuration API base URL override")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Project: Project{
			ID:              projectID,
			CredentialsFile: credentialsFile,
			AccessToken:     accessToken,
		},
		Adapter: Adapter{
			Endpoint:       endpoint,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
