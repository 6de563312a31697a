package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"
)

type DiffArgs struct {
	*RootArgs

	Master   string
	Profiles []string
}

func NewDiffArgs(rootArgs *RootArgs) *DiffArgs {
	return &DiffArgs{RootArgs: rootArgs}
}

func (da *DiffArgs) AddFlags(cmd *cobra.Command) {
	addMasterFlag(cmd, &da.Master)
	cmd.Flags().StringArrayVarP(&da.Profiles, "profile", "p", nil, "Profile name or path, given exactly twice")

	must(cmd.RegisterFlagCompletionFunc("profile", profileCompletion(da.RootArgs)))
}

func NewDiffCmd(da *DiffArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the template context differs between two profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := requireFlags(requiredFlag{"master", da.Master})
			if err != nil {
				return err
			}
			if len(da.Profiles) != 2 {
				return fmt.Errorf("invalid argument: --profile must be given twice, got %d", len(da.Profiles))
			}

			docs := make([]string, 0, 2)
			for _, p := range da.Profiles {
				c, err := buildContext(da.Master, p, da.ProfilesDir)
				if err != nil {
					return err
				}

				out, err := encodeContext(c, FormatYAML)
				if err != nil {
					return err
				}

				docs = append(docs, out)
			}

			diff := udiff.Unified(diffLabel(da.Profiles[0]), diffLabel(da.Profiles[1]), docs[0], docs[1])
			if diff == "" {
				slog.Info("contexts are identical", slog.Any("profiles", da.Profiles))
				return nil
			}

			return writeHighlighted(cmd.OutOrStdout(), diff, "diff")
		},
	}

	da.AddFlags(cmd)

	return cmd
}

func diffLabel(arg string) string {
	return strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
}
