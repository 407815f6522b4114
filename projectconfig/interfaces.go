package projectconfig

import "context"

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/transport_mock.go -package=mock

// Transport defines the HTTPS/JSON exchange with the project config
// resource. Implementations are responsible for authentication headers,
// serialisation, and mapping transport-level failures to the sentinel
// errors defined in the adapter package.
type Transport interface {
	// GetConfig issues a GET against the resource base URL and returns the
	// decoded JSON object of the current configuration.
	GetConfig(ctx context.Context) (map[string]any, error)

	// UpdateConfig issues a PATCH against the resource base URL with body
	// as the JSON request body and updateMask as the updateMask query
	// parameter, and returns the decoded JSON object of the post-update
	// configuration.
	UpdateConfig(ctx context.Context, body any, updateMask string) (map[string]any, error)
}
