// Command idconfig reads and updates the identity-platform project
// configuration from the command line.
//
// Fetch the current configuration:
//
//	idconfig -project my-project
//
// Apply a partial update from a JSON file holding the optional "mfa" and
// "emailPrivacyConfig" fragments:
//
//	idconfig -project my-project -update changes.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/identikit/identikit"
	"github.com/identikit/identikit/internal/config"
	"github.com/identikit/identikit/internal/logger"
	"github.com/identikit/identikit/models"
	"github.com/identikit/identikit/projectconfig"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// updateFile is the on-disk shape of a partial update: the same wire keys
// the backend uses, each optional.
type updateFile struct {
	MultiFactorConfig  *models.MultiFactorConfig  `json:"mfa"`
	EmailPrivacyConfig *models.EmailPrivacyConfig `json:"emailPrivacyConfig"`
}

func main() {
	printBuildInfo()

	// Registered before config.GetStructuredConfig triggers flag.Parse.
	updatePath := flag.String("update", "", "JSON file with config fragments to apply")

	log := logger.NewLogger("idconfig-cli")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	app, err := identikit.NewApp(ctx, identikit.Config{
		ProjectID:       cfg.Project.ID,
		CredentialsFile: cfg.Project.CredentialsFile,
		AccessToken:     cfg.Project.AccessToken,
		Endpoint:        cfg.Adapter.Endpoint,
		RequestTimeout:  cfg.Adapter.RequestTimeout,
	}, identikit.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	var projectCfg *projectconfig.ProjectConfig
	if *updatePath != "" {
		projectCfg, err = applyUpdate(ctx, app, *updatePath)
	} else {
		projectCfg, err = identikit.GetProjectConfig(ctx, app)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("project config operation failed")
	}

	if err = printConfig(projectCfg); err != nil {
		log.Fatal().Err(err).Msg("print project config")
	}
}

func applyUpdate(ctx context.Context, app *identikit.App, path string) (*projectconfig.ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read update file: %w", err)
	}

	var fragments updateFile
	if err = json.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("decode update file: %w", err)
	}

	return identikit.UpdateProjectConfig(ctx, app, projectconfig.UpdateRequest{
		MultiFactorConfig:  fragments.MultiFactorConfig,
		EmailPrivacyConfig: fragments.EmailPrivacyConfig,
	})
}

func printConfig(cfg *projectconfig.ProjectConfig) error {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
