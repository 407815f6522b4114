// SPDX-License-Identifier: Apache-2.0

package identikit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/identikit/identikit/internal/adapter"
	"github.com/identikit/identikit/internal/logger"
	"github.com/identikit/identikit/projectconfig"
)

// Version is the release version of the SDK, reported to the backend in the
// X-Client-Version header of every request.
const Version = "0.1.0"

const clientVersion = "Go/Admin/" + Version

// ErrProjectIDRequired is returned by [NewApp] when no project ID is
// configured.
var ErrProjectIDRequired = errors.New("project ID is required")

const projectConfigServiceName = "project_config"

// Config holds the settings of one [App].
type Config struct {
	// ProjectID is the identity-platform project identifier. Required.
	ProjectID string

	// CredentialsFile is the path to a service-account JSON key file.
	// When empty, application-default credentials are discovered.
	CredentialsFile string

	// AccessToken is a static bearer token overriding credential
	// discovery. Intended for tests and emulators.
	AccessToken string

	// Endpoint overrides the production configuration API base URL.
	Endpoint string

	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
}

// Option customizes an [App] beyond what [Config] carries.
type Option func(*App)

// WithTokenSource injects the credential provider directly, bypassing
// credential discovery.
func WithTokenSource(creds oauth2.TokenSource) Option {
	return func(a *App) { a.creds = creds }
}

// WithLogger routes the SDK's structured logs through log. By default the
// SDK logs nothing.
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) { a.logger = &logger.Logger{Logger: log} }
}

// App is the per-application context of the SDK. It owns the project
// identity, the credential provider, and a memoized registry of service
// instances: each service is constructed once per App on first use and
// reused afterwards, which is safe because services are immutable after
// construction.
type App struct {
	cfg    Config
	creds  oauth2.TokenSource
	logger *logger.Logger

	mu       sync.Mutex
	services map[string]any
}

// NewApp constructs an application context for the configured project.
// Credentials are resolved in order: an injected token source
// ([WithTokenSource]), a static access token, a service-account key file,
// and finally application-default credentials.
//
// Returns an error if cfg.ProjectID is empty or credentials cannot be
// resolved.
func NewApp(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	if cfg.ProjectID == "" {
		return nil, ErrProjectIDRequired
	}

	app := &App{
		cfg:      cfg,
		logger:   logger.Nop(),
		services: make(map[string]any),
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.creds == nil {
		creds, err := resolveTokenSource(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("resolve credentials: %w", err)
		}
		app.creds = creds
	}

	return app, nil
}

// ProjectID returns the project identifier this App is bound to.
func (a *App) ProjectID() string {
	return a.cfg.ProjectID
}

// ProjectConfig returns the project-configuration service for this App.
// The service is constructed on first use and memoized; concurrent first
// calls still produce a single instance.
func (a *App) ProjectConfig() (*projectconfig.Service, error) {
	svc, err := a.service(projectConfigServiceName, func() (any, error) {
		transport, err := adapter.NewHTTPConfigTransport(adapter.Config{
			ProjectID:      a.cfg.ProjectID,
			Endpoint:       a.cfg.Endpoint,
			ClientVersion:  clientVersion,
			RequestTimeout: a.cfg.RequestTimeout,
		}, a.creds, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create config transport: %w", err)
		}

		return projectconfig.NewService(transport, a.logger), nil
	})
	if err != nil {
		return nil, err
	}

	return svc.(*projectconfig.Service), nil
}

// service returns the memoized instance stored under name, constructing it
// with build on first use. The registry lock is held across construction so
// concurrent first calls cannot create duplicate instances.
func (a *App) service(name string, build func() (any, error)) (any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if svc, ok := a.services[name]; ok {
		return svc, nil
	}

	svc, err := build()
	if err != nil {
		return nil, err
	}
	a.services[name] = svc

	return svc, nil
}

// GetProjectConfig fetches the current project configuration through app.
// It is a convenience wrapper around [App.ProjectConfig] and
// [projectconfig.Service.Get].
func GetProjectConfig(ctx context.Context, app *App) (*projectconfig.ProjectConfig, error) {
	svc, err := app.ProjectConfig()
	if err != nil {
		return nil, err
	}
	return svc.Get(ctx)
}

// UpdateProjectConfig applies a partial update built from the non-nil
// fields of req through app. It is a convenience wrapper around
// [App.ProjectConfig] and [projectconfig.Service.Update].
func UpdateProjectConfig(ctx context.Context, app *App, req projectconfig.UpdateRequest) (*projectconfig.ProjectConfig, error) {
	svc, err := app.ProjectConfig()
	if err != nil {
		return nil, err
	}
	return svc.Update(ctx, req)
}
