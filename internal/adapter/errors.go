package adapter

import "errors"

var (
	ErrInvalidArgument   = errors.New("backend rejected an argument")
	ErrUnauthenticated   = errors.New("request unauthenticated")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotFound          = errors.New("project config not found")
	ErrConflict          = errors.New("conflicting update")
	ErrInternal          = errors.New("internal backend error")
	ErrUnavailable       = errors.New("backend unavailable")
	ErrMalformedResponse = errors.New("malformed backend response")
)
