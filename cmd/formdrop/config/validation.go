// Package config provides configuration validation for the formdrop CLI.
package config

import (
	"fmt"

	"github.com/formdrop-dev/formdrop/internal/logging"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateLogLevelFlag(); err != nil {
		return err
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	return nil
}

// ValidateLogLevelFlag validates the --log-level flag
func ValidateLogLevelFlag() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s' - valid levels are: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
		return fmt.Errorf("invalid log level - valid: DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}
