package config

import "errors"

var (
	ErrProjectIDRequired     = errors.New("project ID must be configured")
	ErrInvalidRequestTimeout = errors.New("request timeout must not be negative")
)
