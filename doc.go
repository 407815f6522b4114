// SPDX-License-Identifier: Apache-2.0

// Package identikit is an admin SDK for the identity-platform project
// configuration API.
//
// An [App] binds one project identity to one credential provider and hands
// out memoized service instances. The project-configuration service
// supports reading the current configuration and applying partial updates
// to the multi-factor and email-privacy policies:
//
//	app, err := identikit.NewApp(ctx, identikit.Config{ProjectID: "my-project"})
//	if err != nil {
//		// handle error
//	}
//
//	cfg, err := identikit.UpdateProjectConfig(ctx, app, projectconfig.UpdateRequest{
//		MultiFactorConfig: &models.MultiFactorConfig{
//			State:     models.StateEnabled,
//			FactorIDs: []models.AuthFactor{models.PhoneSMS},
//		},
//	})
package identikit
