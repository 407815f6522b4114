// Package models defines the configuration value objects exchanged with the
// identity-platform project config resource.
//
// Write-side types ([MultiFactorConfig], [EmailPrivacyConfig]) are supplied
// by callers, validate themselves locally, and serialize to the JSON
// fragments the backend expects via their BuildServerRequest methods.
//
// Read-side types ([MultiFactorServerConfig], [EmailPrivacyServerConfig] and
// friends) are thin views over the raw JSON objects the backend returns.
// They hold the decoded map and expose typed accessors instead of copying
// the data into structs, so unknown backend fields are preserved.
package models
