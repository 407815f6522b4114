package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/identikit/identikit/internal/logger"
	"github.com/identikit/identikit/projectconfig"
)

// identityPlatformBaseURL is the production endpoint of the identity
// platform configuration API.
const identityPlatformBaseURL = "https://identitytoolkit.googleapis.com/v2/projects"

const defaultRequestTimeout = 15 * time.Second

// Config holds the settings needed to reach one project's config resource.
type Config struct {
	// ProjectID is the identity-platform project identifier. Required.
	ProjectID string

	// Endpoint overrides the production base URL, e.g. for an emulator or
	// a test server. Optional.
	Endpoint string

	// ClientVersion is sent as the X-Client-Version header on every
	// request.
	ClientVersion string

	// RequestTimeout bounds each outbound request. Defaults to 15s.
	RequestTimeout time.Duration
}

type httpConfigTransport struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPConfigTransport constructs the HTTPS/JSON implementation of
// [projectconfig.Transport], bound to the project-scoped resource URL
// <endpoint>/<projectID>/config.
//
// Every request carries a bearer token obtained from creds (a nil creds
// skips authentication, which only makes sense against emulators), the
// client-version header, and a generated X-Request-Id for correlation.
//
// Returns an error if cfg.ProjectID is empty or the endpoint cannot be
// parsed as a valid URL.
func NewHTTPConfigTransport(cfg Config, creds oauth2.TokenSource, log *logger.Logger) (projectconfig.Transport, error) {
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, fmt.Errorf("project ID is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = identityPlatformBaseURL
	}
	baseURL, err := normalizeBaseURL(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid config endpoint: %w", err)
	}

	client := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s/config", baseURL, url.PathEscape(cfg.ProjectID))).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("X-Client-Version", cfg.ClientVersion)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		if creds == nil {
			return nil
		}

		token, err := creds.Token()
		if err != nil {
			return fmt.Errorf("fetch access token: %w", err)
		}
		req.SetHeader("Authorization", token.Type()+" "+token.AccessToken)
		return nil
	})

	return &httpConfigTransport{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetConfig implements [projectconfig.Transport]. It GETs the resource base
// URL and returns the decoded configuration object. Returns a sentinel
// error from this package if the request fails, the backend responds with a
// non-2xx status, or the body is not a JSON object.
func (h *httpConfigTransport) GetConfig(ctx context.Context) (map[string]any, error) {
	h.logger.Debug().Msg("fetching project config")

	resp, err := h.client.R().
		SetContext(ctx).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("get config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeConfigBody(resp.Body())
}

// UpdateConfig implements [projectconfig.Transport]. It PATCHes the
// resource base URL with body as the JSON request body and updateMask as
// the updateMask query parameter, and returns the decoded post-update
// configuration object.
func (h *httpConfigTransport) UpdateConfig(ctx context.Context, body any, updateMask string) (map[string]any, error) {
	h.logger.Debug().Str("updateMask", updateMask).Msg("patching project config")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("updateMask", updateMask).
		SetBody(body).
		Patch("")
	if err != nil {
		return nil, fmt.Errorf("update config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeConfigBody(resp.Body())
}

func decodeConfigBody(body []byte) (map[string]any, error) {
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	// Unmarshalling the literal null into a map succeeds and leaves it nil.
	if decoded == nil {
		return nil, fmt.Errorf("%w: null body", ErrMalformedResponse)
	}
	return decoded, nil
}
