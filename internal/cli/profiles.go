package cli

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/macropower/cvgen/pkg/profile"
)

type ProfilesArgs struct {
	*RootArgs

	Init  bool
	Force bool
}

func NewProfilesArgs(rootArgs *RootArgs) *ProfilesArgs {
	return &ProfilesArgs{RootArgs: rootArgs}
}

func (pa *ProfilesArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&pa.Init, "init", false, "Write the built-in profiles to the profiles directory first")
	cmd.Flags().BoolVar(&pa.Force, "force", false, "With --init, overwrite existing profiles (a backup is kept)")
}

func NewProfilesCmd(pa *ProfilesArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the available rendering profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pa.Init {
				written, err := profile.WriteDefaults(pa.ProfilesDir, pa.Force)
				if err != nil {
					return fmt.Errorf("write default profiles: %w", err)
				}

				slog.Info("wrote default profiles",
					slog.String("dir", pa.ProfilesDir),
					slog.Int("count", len(written)),
				)
			}

			summaries, err := profile.List(pa.ProfilesDir)
			if err != nil {
				return fmt.Errorf("list profiles: %w", err)
			}

			if len(summaries) == 0 {
				slog.Warn("no profiles found, run with --init to install the defaults",
					slog.String("dir", pa.ProfilesDir),
				)

				return nil
			}

			mustN(fmt.Fprintln(cmd.OutOrStdout(), profileTable(summaries)))

			return nil
		},
	}

	pa.AddFlags(cmd)

	return cmd
}

func profileTable(summaries []profile.Summary) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		Headers("ID", "NAME", "DESCRIPTION")

	for _, s := range summaries {
		t.Row(s.ID, s.Name, s.Description)
	}

	return t.Render()
}
