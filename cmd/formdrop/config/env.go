// Package config provides environment-based configuration fallbacks for the
// formdrop CLI. Endpoint, token, and field mapping are usually fixed per
// project, so they live in the environment (or a .env file) while per-run
// options stay on the command line.
package config

import (
	"os"
	"strings"

	"github.com/formdrop-dev/formdrop/internal/logging"
	"github.com/joho/godotenv"
)

// Environment variable names recognized as flag fallbacks.
const (
	EnvEndpoint         = "FORMDROP_ENDPOINT"
	EnvToken            = "FORMDROP_TOKEN"
	EnvFields           = "FORMDROP_FIELDS" // comma-separated column names
	EnvAttachmentColumn = "FORMDROP_ATTACHMENT_COLUMN"
)

// ApplyEnvFallbacks loads a .env file when present and fills submit settings
// that were not provided as flags from FORMDROP_* environment variables.
// Flags always win: only empty values are filled in.
//
// A missing .env file is not an error — the variables may be set in the
// shell, or everything may come from flags.
func ApplyEnvFallbacks() {
	if err := godotenv.Load(); err == nil {
		logging.Debug("Loaded configuration from .env file")
	}

	if Submit.Endpoint == "" {
		Submit.Endpoint = os.Getenv(EnvEndpoint)
	}
	if Submit.Token == "" {
		Submit.Token = os.Getenv(EnvToken)
	}
	if len(Submit.Fields) == 0 {
		if raw := os.Getenv(EnvFields); raw != "" {
			for _, field := range strings.Split(raw, ",") {
				if name := strings.TrimSpace(field); name != "" {
					Submit.Fields = append(Submit.Fields, name)
				}
			}
		}
	}
	if Submit.AttachmentColumn == "" {
		Submit.AttachmentColumn = os.Getenv(EnvAttachmentColumn)
	}
}
