package models

// EmailPrivacyConfig is the caller-supplied email-privacy policy for a
// project. When improved email privacy is enabled the backend stops
// disclosing whether an email address is registered during sign-in flows.
type EmailPrivacyConfig struct {
	// EnableImprovedEmailPrivacy toggles the improved email privacy
	// protections project-wide.
	EnableImprovedEmailPrivacy bool `json:"enableImprovedEmailPrivacy"`
}

// Validate always succeeds: a boolean toggle has no invalid shape.
// It exists so the policy satisfies the same contract as the other
// configuration value objects.
func (e *EmailPrivacyConfig) Validate() error {
	return nil
}

// BuildServerRequest returns the wire fragment stored under the
// "emailPrivacyConfig" key of the project config resource.
func (e *EmailPrivacyConfig) BuildServerRequest() (map[string]any, error) {
	return map[string]any{"enableImprovedEmailPrivacy": e.EnableImprovedEmailPrivacy}, nil
}
