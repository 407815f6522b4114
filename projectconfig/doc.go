// SPDX-License-Identifier: Apache-2.0

// Package projectconfig manages the identity-platform project configuration
// resource: one server-side object per project holding the multi-factor and
// email-privacy policies.
//
// The resource supports exactly two operations, exposed on [Service]: Get
// reads the current configuration, Update applies a partial update. Partial
// updates follow the backend's field-mask protocol: the request body holds
// only the top-level keys being changed, and the updateMask query parameter
// lists exactly those keys so the backend can distinguish "omitted" from
// "explicitly cleared".
//
// Callers normally obtain a *Service through identikit.App.ProjectConfig
// rather than constructing one directly.
package projectconfig
