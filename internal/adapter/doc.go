// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the HTTPS transport behind the project-config
// service.
//
// NewHTTPConfigTransport builds the resty-based implementation of
// [projectconfig.Transport] bound to one project's resource URL. Backend
// failures are mapped by mapHTTPError to the sentinel errors defined in
// errors.go so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrPermissionDenied] for
// 403). The platform's JSON error envelope takes precedence over the raw
// HTTP status when it carries a recognizable backend code.
package adapter
