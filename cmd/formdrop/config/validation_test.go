package config

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		expectError bool
	}{
		{name: "table_ok", output: "table", expectError: false},
		{name: "json_ok", output: "json", expectError: false},
		{name: "yaml_error", output: "yaml", expectError: true},
		{name: "empty_error", output: "", expectError: true},
		{name: "uppercase_error", output: "JSON", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Global.Output
			Global.Output = tt.output
			defer func() { Global.Output = original }()

			err := ValidateOutputFormat()
			if tt.expectError && err == nil {
				t.Errorf("expected error for output %q, got nil", tt.output)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for output %q: %v", tt.output, err)
			}
		})
	}
}

func TestValidateLogLevelFlag(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{name: "debug_ok", level: "DEBUG", expectError: false},
		{name: "error_ok", level: "ERROR", expectError: false},
		{name: "lowercase_error", level: "info", expectError: true},
		{name: "unknown_error", level: "VERBOSE", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Global.LogLevel
			Global.LogLevel = tt.level
			defer func() { Global.LogLevel = original }()

			err := ValidateLogLevelFlag()
			if tt.expectError && err == nil {
				t.Errorf("expected error for level %q, got nil", tt.level)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for level %q: %v", tt.level, err)
			}
		})
	}
}

func TestApplyEnvFallbacks(t *testing.T) {
	t.Run("env_fills_unset_values", func(t *testing.T) {
		resetSubmit(t)
		t.Setenv(EnvEndpoint, "https://api.example.com/upload")
		t.Setenv(EnvToken, "env-token")
		t.Setenv(EnvFields, "id, name ,email")
		t.Setenv(EnvAttachmentColumn, "resume")

		ApplyEnvFallbacks()

		if Submit.Endpoint != "https://api.example.com/upload" {
			t.Errorf("Endpoint = %q", Submit.Endpoint)
		}
		if Submit.Token != "env-token" {
			t.Errorf("Token = %q", Submit.Token)
		}
		want := []string{"id", "name", "email"}
		if len(Submit.Fields) != len(want) {
			t.Fatalf("Fields = %v, want %v", Submit.Fields, want)
		}
		for i, field := range want {
			if Submit.Fields[i] != field {
				t.Errorf("Fields[%d] = %q, want %q", i, Submit.Fields[i], field)
			}
		}
		if Submit.AttachmentColumn != "resume" {
			t.Errorf("AttachmentColumn = %q", Submit.AttachmentColumn)
		}
	})

	t.Run("flags_take_precedence", func(t *testing.T) {
		resetSubmit(t)
		Submit.Endpoint = "https://flag.example.com/upload"
		Submit.Token = "flag-token"
		t.Setenv(EnvEndpoint, "https://env.example.com/upload")
		t.Setenv(EnvToken, "env-token")

		ApplyEnvFallbacks()

		if Submit.Endpoint != "https://flag.example.com/upload" {
			t.Errorf("flag endpoint overwritten: %q", Submit.Endpoint)
		}
		if Submit.Token != "flag-token" {
			t.Errorf("flag token overwritten: %q", Submit.Token)
		}
	})
}

// resetSubmit clears the Submit config and restores it after the test
func resetSubmit(t *testing.T) {
	t.Helper()
	original := Submit
	Submit.Endpoint = ""
	Submit.Token = ""
	Submit.Fields = nil
	Submit.AttachmentColumn = ""
	t.Cleanup(func() { Submit = original })
}
