package projectconfig

import "errors"

var (
	// ErrNoUpdateFields is returned by [Service.Update] when the request
	// carries none of the optional configuration fragments.
	ErrNoUpdateFields = errors.New("at least one field must be specified for update")

	// ErrInvalidConfigData is returned by [NewProjectConfig] when the raw
	// response value is not a JSON object.
	ErrInvalidConfigData = errors.New("project config data must be a JSON object")
)
