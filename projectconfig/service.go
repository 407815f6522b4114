package projectconfig

import (
	"context"
	"fmt"

	"github.com/identikit/identikit/internal/logger"
	"github.com/identikit/identikit/models"
)

// UpdateRequest carries the optional configuration fragments of a partial
// update. Each non-nil field is validated locally, serialized to its wire
// fragment, and listed in the update mask; nil fields are left untouched on
// the server.
type UpdateRequest struct {
	// MultiFactorConfig replaces the project's multi-factor policy
	// (wire key "mfa").
	MultiFactorConfig *models.MultiFactorConfig

	// EmailPrivacyConfig replaces the project's email-privacy policy
	// (wire key "emailPrivacyConfig").
	EmailPrivacyConfig *models.EmailPrivacyConfig
}

// configFragment is the closed contract every accepted update fragment
// satisfies: local validation plus serialisation to its wire object.
type configFragment interface {
	Validate() error
	BuildServerRequest() (map[string]any, error)
}

// updateFields is the fixed field-to-key table of the partial-update
// protocol. It is iterated in declaration order, which fixes both the
// payload key order and the update-mask order: mfa first, then
// emailPrivacyConfig.
var updateFields = []struct {
	key      string
	fragment func(UpdateRequest) configFragment
}{
	{
		key: keyMultiFactor,
		fragment: func(r UpdateRequest) configFragment {
			if r.MultiFactorConfig == nil {
				return nil
			}
			return r.MultiFactorConfig
		},
	},
	{
		key: keyEmailPrivacy,
		fragment: func(r UpdateRequest) configFragment {
			if r.EmailPrivacyConfig == nil {
				return nil
			}
			return r.EmailPrivacyConfig
		},
	},
}

// Service exposes the two operations of the project config resource: read
// and partial update. It holds no mutable per-call state, so one Service
// may be used from multiple goroutines concurrently.
type Service struct {
	transport Transport
	logger    *logger.Logger
}

// NewService constructs a Service on top of the given transport. A nil log
// falls back to a no-op logger.
func NewService(transport Transport, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{transport: transport, logger: log}
}

// Get fetches the current project configuration and wraps it in a
// [ProjectConfig] snapshot. Transport and backend failures carry the
// adapter package's sentinel errors.
func (s *Service) Get(ctx context.Context) (*ProjectConfig, error) {
	body, err := s.transport.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get project config: %w", err)
	}

	return NewProjectConfig(body)
}

// Update applies a partial update built from the non-nil fields of req and
// returns the post-update snapshot.
//
// Validation failures and an empty request surface before any network call:
// [ErrNoUpdateFields] when every fragment is nil, or the fragment's own
// validation error wrapped with its field name.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*ProjectConfig, error) {
	payload := make(updatePayload, 0, len(updateFields))
	for _, field := range updateFields {
		fragment := field.fragment(req)
		if fragment == nil {
			continue
		}

		wire, err := fragment.BuildServerRequest()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.key, err)
		}
		payload = append(payload, payloadField{key: field.key, value: wire})
	}

	if len(payload) == 0 {
		return nil, ErrNoUpdateFields
	}

	mask := payload.UpdateMask()
	s.logger.Debug().Str("updateMask", mask).Msg("updating project config")

	body, err := s.transport.UpdateConfig(ctx, payload, mask)
	if err != nil {
		return nil, fmt.Errorf("update project config: %w", err)
	}

	return NewProjectConfig(body)
}
