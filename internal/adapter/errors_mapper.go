package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorEnvelope is the standard error body of the identity platform:
//
//	{"error": {"code": 404, "message": "CONFIGURATION_NOT_FOUND: ...", "status": "NOT_FOUND"}}
//
// The leading segment of message (up to the first colon) carries the
// backend error code, which is more specific than the HTTP status.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// backendCodes maps platform error codes and statuses to the sentinel
// errors of this package.
var backendCodes = map[string]error{
	"INVALID_ARGUMENT":        ErrInvalidArgument,
	"INVALID_PROJECT_ID":      ErrInvalidArgument,
	"UNAUTHENTICATED":         ErrUnauthenticated,
	"INSUFFICIENT_PERMISSION": ErrPermissionDenied,
	"PERMISSION_DENIED":       ErrPermissionDenied,
	"NOT_FOUND":               ErrNotFound,
	"CONFIGURATION_NOT_FOUND": ErrNotFound,
	"PROJECT_NOT_FOUND":       ErrNotFound,
	"ABORTED":                 ErrConflict,
	"INTERNAL":                ErrInternal,
	"INTERNAL_ERROR":          ErrInternal,
	"UNAVAILABLE":             ErrUnavailable,
	"SERVICE_UNAVAILABLE":     ErrUnavailable,
}

// mapHTTPError translates a backend response into the sentinel error
// taxonomy. 2xx responses map to nil. The platform error envelope is
// consulted first; the raw HTTP status is the fallback for responses
// without a recognizable envelope.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	if sentinel, detail, ok := parseErrorEnvelope(resp.Body()); ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthenticated, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternal, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrUnavailable, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// parseErrorEnvelope extracts a sentinel error and detail message from the
// platform error body. The third return value reports whether the body held
// a recognizable envelope.
func parseErrorEnvelope(body []byte) (error, string, bool) {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, "", false
	}

	message := strings.TrimSpace(envelope.Error.Message)
	code := message
	if idx := strings.Index(message, ":"); idx != -1 {
		code = strings.TrimSpace(message[:idx])
	}

	if sentinel, ok := backendCodes[code]; ok {
		return sentinel, message, true
	}
	if sentinel, ok := backendCodes[envelope.Error.Status]; ok {
		if message == "" {
			message = envelope.Error.Status
		}
		return sentinel, message, true
	}

	return nil, "", false
}
