package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can carry values like
// "30s" or "1m".
type Duration time.Duration

// UnmarshalJSON accepts either a duration string ("30s") or a number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := time.ParseDuration(asString)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var asNanos int64
	if err := json.Unmarshal(data, &asNanos); err != nil {
		return fmt.Errorf("invalid duration value: %s", data)
	}
	*d = Duration(asNanos)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// file-friendly [Duration] type.
type StructuredJSONConfig struct {
	Project struct {
		ID              string `json:"id"`
		CredentialsFile string `json:"credentials_file"`
		AccessToken     string `json:"access_token"`
	} `json:"project,omitempty"`

	Adapter struct {
		Endpoint       string   `json:"endpoint"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding a json file: %w", err)
	}

	return &StructuredConfig{
		Project: Project{
			ID:              jsonCfg.Project.ID,
			CredentialsFile: jsonCfg.Project.CredentialsFile,
			AccessToken:     jsonCfg.Project.AccessToken,
		},
		Adapter: Adapter{
			Endpoint:       jsonCfg.Adapter.Endpoint,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}, nil
}
