// Package config provides configuration loading, merging, and validation
// facilities for the identikit SDK and its CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables (IDENTIKIT_ prefix)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
