// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/identikit/identikit/internal/logger"
	"github.com/identikit/identikit/projectconfig"
)

func newTestTransport(t *testing.T, serverURL string) projectconfig.Transport {
	t.Helper()

	creds := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token", TokenType: "Bearer"})
	transport, err := NewHTTPConfigTransport(Config{
		ProjectID:     "test-project",
		Endpoint:      serverURL,
		ClientVersion: "Go/Admin/test",
	}, creds, logger.Nop())
	require.NoError(t, err)
	return transport
}

// ── NewHTTPConfigTransport ──────────────────────────────────────────────────

func TestNewHTTPConfigTransport_EmptyProjectID(t *testing.T) {
	_, err := NewHTTPConfigTransport(Config{}, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "project ID")
}

func TestNewHTTPConfigTransport_InvalidEndpoint(t *testing.T) {
	_, err := NewHTTPConfigTransport(Config{ProjectID: "p", Endpoint: "://nope"}, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config endpoint")
}

// ── GetConfig ───────────────────────────────────────────────────────────────

func TestGetConfig_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/test-project/config", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "Go/Admin/test", r.Header.Get("X-Client-Version"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mfa":{"state":"ENABLED"}}`))
	}))
	defer srv.Close()

	transport := newTestTransport(t, srv.URL)
	body, err := transport.GetConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"mfa": map[string]any{"state": "ENABLED"}}, body)
}

func TestGetConfig_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrInvalidArgument},
		{http.StatusUnauthorized, ErrUnauthenticated},
		{http.StatusForbidden, ErrPermissionDenied},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternal},
		{http.StatusServiceUnavailable, ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("backend says no"))
			}))
			defer srv.Close()

			transport := newTestTransport(t, srv.URL)
			_, err := transport.GetConfig(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGetConfig_ErrorEnvelopeWinsOverStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// 400 status but the envelope carries a not-found code.
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"CONFIGURATION_NOT_FOUND: no config for project"}}`))
	}))
	defer srv.Close()

	transport := newTestTransport(t, srv.URL)
	_, err := transport.GetConfig(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no config for project")
}

func TestGetConfig_EnvelopeStatusFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"the caller may not act on this project","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	transport := newTestTransport(t, srv.URL)
	_, err := transport.GetConfig(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestGetConfig_MalformedBody(t *testing.T) {
	for _, body := range []string{``, `not json`, `[1,2,3]`, `"scalar"`, `null`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		transport := newTestTransport(t, srv.URL)
		_, err := transport.GetConfig(context.Background())

		require.Error(t, err, "body=%q", body)
		assert.ErrorIs(t, err, ErrMalformedResponse)
		srv.Close()
	}
}

func TestGetConfig_TokenSourceFailure(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	failing := oauth2.TokenSource(tokenSourceFunc(func() (*oauth2.Token, error) {
		return nil, errors.New("credential store offline")
	}))
	transport, err := NewHTTPConfigTransport(Config{ProjectID: "p", Endpoint: srv.URL}, failing, nil)
	require.NoError(t, err)

	_, err = transport.GetConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch access token")
	assert.Zero(t, calls.Load())
}

type tokenSourceFunc func() (*oauth2.Token, error)

func (f tokenSourceFunc) Token() (*oauth2.Token, error) { return f() }

// ── UpdateConfig ────────────────────────────────────────────────────────────

func TestUpdateConfig_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/test-project/config", r.URL.Path)
		assert.Equal(t, "mfa,emailPrivacyConfig", r.URL.Query().Get("updateMask"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"mfa":                map[string]any{"state": "ENABLED"},
			"emailPrivacyConfig": map[string]any{"enableImprovedEmailPrivacy": true},
		}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mfa":{"state":"ENABLED"},"emailPrivacyConfig":{"enableImprovedEmailPrivacy":true}}`))
	}))
	defer srv.Close()

	transport := newTestTransport(t, srv.URL)
	body, err := transport.UpdateConfig(context.Background(), map[string]any{
		"mfa":                map[string]any{"state": "ENABLED"},
		"emailPrivacyConfig": map[string]any{"enableImprovedEmailPrivacy": true},
	}, "mfa,emailPrivacyConfig")

	require.NoError(t, err)
	assert.Contains(t, body, "mfa")
	assert.Contains(t, body, "emailPrivacyConfig")
}

func TestUpdateConfig_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"PROJECT_NOT_FOUND: no project"}}`))
	}))
	defer srv.Close()

	transport := newTestTransport(t, srv.URL)
	_, err := transport.UpdateConfig(context.Background(), map[string]any{"mfa": map[string]any{}}, "mfa")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
