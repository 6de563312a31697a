package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dotEnvFile is loaded from the working directory, if present.
const dotEnvFile = ".env"

// loadDotEnv loads [dotEnvFile] into the environment. Variables that are
// already set are not overridden.
func loadDotEnv() {
	err := godotenv.Load(dotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load env file",
			slog.String("path", dotEnvFile),
			slog.Any("error", err),
		)
	}
}

// bindEnvVars automatically binds environment variables to the flags of cmd
// and all of its subcommands. Environment variable names are generated as
// CVGEN_<FLAG_NAME> where the flag name is converted to uppercase and dashes
// are replaced with underscores.
//
// For example:
//   - Flag "log-level" becomes environment variable "CVGEN_LOG_LEVEL"
//   - Flag "profiles-dir" becomes environment variable "CVGEN_PROFILES_DIR"
//
// Arguments take precedence over environment variables, which take precedence
// over default values.
//
// This function also updates flag usage descriptions to include the environment
// variable name, making it visible in help output.
func bindEnvVars(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		bindFlagToEnv(flag)
	})

	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		bindFlagToEnv(flag)
	})

	for _, sub := range cmd.Commands() {
		bindEnvVars(sub)
	}
}

// bindFlagToEnv binds a single flag to its corresponding environment variable.
func bindFlagToEnv(flag *pflag.Flag) {
	envName := flagToEnvName(flag.Name)

	// Update the flag usage to include the environment variable name.
	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	// Skip if flag was already set via command line arguments.
	if flag.Changed {
		return
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok {
		return
	}

	// Repeatable flags take a comma-separated list.
	if sv, ok := flag.Value.(pflag.SliceValue); ok {
		err := sv.Replace(strings.Split(envValue, ","))
		if err != nil {
			logEnvError(flag, envName, envValue, err)
		}

		return
	}

	err := flag.Value.Set(envValue)
	if err != nil {
		logEnvError(flag, envName, envValue, err)
	}
}

// Log the error but don't fail, the default value is used instead.
func logEnvError(flag *pflag.Flag, envName, envValue string, err error) {
	slog.Error("failed to set flag from environment variable",
		slog.String("flag", flag.Name),
		slog.String("env", envName),
		slog.String("value", envValue),
		slog.Any("error", err),
	)
}

// flagToEnvName converts a flag name to its corresponding environment variable name.
// Example: "log-level" -> "CVGEN_LOG_LEVEL".
func flagToEnvName(flagName string) string {
	envName := strings.ReplaceAll(flagName, "-", "_")
	return strings.ToUpper(cmdName + "_" + envName)
}
