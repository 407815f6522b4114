package identikit

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// cloudPlatformScope grants access to the identity-platform configuration
// API.
const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// resolveTokenSource picks the credential provider for an App: a static
// access token when configured, otherwise a service-account key file,
// otherwise application-default credentials.
func resolveTokenSource(ctx context.Context, cfg Config) (oauth2.TokenSource, error) {
	if cfg.AccessToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		}), nil
	}

	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}

		creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("parse credentials file: %w", err)
		}
		return creds.TokenSource, nil
	}

	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("find default credentials: %w", err)
	}
	return creds.TokenSource, nil
}
