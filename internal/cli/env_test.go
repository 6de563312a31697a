package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/cvgen/internal/cli"
)

func TestBindEnvVars(t *testing.T) {
	tcs := map[string]struct {
		envVars       map[string]string
		wantLogLevel  string
		wantLogFormat string
		args          []string
	}{
		"environment variables are bound when no args provided": {
			envVars: map[string]string{
				"CVGEN_LOG_LEVEL":  "debug",
				"CVGEN_LOG_FORMAT": "json",
			},
			args:          []string{},
			wantLogLevel:  "debug",
			wantLogFormat: "json",
		},
		"command line args take precedence over environment variables": {
			envVars: map[string]string{
				"CVGEN_LOG_LEVEL":  "debug",
				"CVGEN_LOG_FORMAT": "json",
			},
			args:          []string{"--log-level", "error", "--log-format", "text"},
			wantLogLevel:  "error",
			wantLogFormat: "text",
		},
		"partial environment variable override": {
			envVars: map[string]string{
				"CVGEN_LOG_LEVEL": "warn",
			},
			args:          []string{"--log-format", "json"},
			wantLogLevel:  "warn",
			wantLogFormat: "json",
		},
		"no environment variables uses defaults": {
			envVars:       map[string]string{},
			args:          []string{},
			wantLogLevel:  "info",
			wantLogFormat: "text",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for key, val := range tc.envVars {
				t.Setenv(key, val)
			}

			cmd := cli.NewRootCmd()

			// Parse flags (this triggers environment variable binding).
			err := cmd.ParseFlags(tc.args)
			require.NoError(t, err)

			logLevel, err := cmd.Flags().GetString("log-level")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogLevel, logLevel)

			logFormat, err := cmd.Flags().GetString("log-format")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogFormat, logFormat)
		})
	}
}

func TestBindEnvVars_Subcommands(t *testing.T) {
	t.Setenv("CVGEN_MASTER", "/cv/master.json")
	t.Setenv("CVGEN_PROFILE", "sales,technical")

	cmd := cli.NewRootCmd()

	generate, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)

	master, err := generate.Flags().GetString("master")
	require.NoError(t, err)
	assert.Equal(t, "/cv/master.json", master)

	diff, _, err := cmd.Find([]string{"diff"})
	require.NoError(t, err)

	profiles, err := diff.Flags().GetStringArray("profile")
	require.NoError(t, err)
	assert.Equal(t, []string{"sales", "technical"}, profiles)
}

// Test that flag usage strings are updated to include environment variable names.
func TestEnvironmentVariableUsageUpdate(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd()

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Contains(t, logLevelFlag.Usage, "$CVGEN_LOG_LEVEL")

	generate, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)

	templateFlag := generate.Flags().Lookup("template")
	require.NotNil(t, templateFlag)
	assert.Contains(t, templateFlag.Usage, "$CVGEN_TEMPLATE")
}
