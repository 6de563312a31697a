package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/cvgen/api"
	"github.com/macropower/cvgen/pkg/log"
)

const (
	cmdName = "cvgen"
	cmdDesc = `Generate tailored CV documents from a master record and rendering profiles.`
)

type RootArgs struct {
	LogLevel    string
	LogFormat   string
	ProfilesDir string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.ProfilesDir, "profiles-dir", api.GetConfigPath("profiles"), "Directory containing rendering profiles")

	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.MarkPersistentFlagDirname("profiles-dir"))
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setupLogging(args),
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)

	cmd.AddCommand(
		NewGenerateCmd(NewGenerateArgs(args)),
		NewContextCmd(NewContextArgs(args)),
		NewProfilesCmd(NewProfilesArgs(args)),
		NewDiffCmd(NewDiffArgs(args)),
		NewServeMCPCmd(NewServeMCPArgs(args)),
	)

	loadDotEnv()
	bindEnvVars(cmd)

	return cmd
}

func setupLogging(rc *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		err := log.Setup(cmd.ErrOrStderr(), rc.LogLevel, rc.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		return nil
	}
}

const cmdExamples = `  # Generate a CV with the default profile:
  cvgen generate -m master.json -t cv.docx -o out/cv.docx

  # Use the "sales" profile and regenerate on every change:
  cvgen generate -m master.json -t cv.md -o out/cv.md -p sales --watch

  # Show the values a template receives:
  cvgen context -m master.json -p technical

  # Compare two profiles:
  cvgen diff -m master.json -p sales -p technical

  # Install the built-in profiles:
  cvgen profiles --init`
