package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macropower/cvgen/pkg/generate"
	"github.com/macropower/cvgen/pkg/profile"
	"github.com/macropower/cvgen/pkg/render"
)

var errRequiredFlag = errors.New("required flag not set")

type GenerateArgs struct {
	*RootArgs

	Master   string
	Template string
	Output   string
	Profile  string
	Watch    bool
}

func NewGenerateArgs(rootArgs *RootArgs) *GenerateArgs {
	return &GenerateArgs{RootArgs: rootArgs}
}

func (ga *GenerateArgs) AddFlags(cmd *cobra.Command) {
	addMasterFlag(cmd, &ga.Master)
	cmd.Flags().StringVarP(&ga.Template, "template", "t", "", "Path to the template document")
	cmd.Flags().StringVarP(&ga.Output, "output", "o", "", "Path to write the generated document to")
	cmd.Flags().StringVarP(&ga.Profile, "profile", "p", "",
		fmt.Sprintf("Profile name or path (default %q when available)", profile.DefaultID))
	cmd.Flags().BoolVarP(&ga.Watch, "watch", "w", false, "Regenerate when the master record, profile or template changes")

	exts := append([]string{".docx"}, render.TextExtensions...)
	for i, ext := range exts {
		exts[i] = ext[1:]
	}

	must(cmd.MarkFlagFilename("template", exts...))
	must(cmd.RegisterFlagCompletionFunc("profile", profileCompletion(ga.RootArgs)))
}

func NewGenerateCmd(ga *GenerateArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a template with the master record and a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := requireFlags(
				requiredFlag{"master", ga.Master},
				requiredFlag{"template", ga.Template},
				requiredFlag{"output", ga.Output},
			)
			if err != nil {
				return err
			}

			g := &generate.Generator{
				Master:      ga.Master,
				Template:    ga.Template,
				Output:      ga.Output,
				Profile:     ga.Profile,
				ProfilesDir: ga.ProfilesDir,
			}
			if g.Profile == "" {
				g.Profile = profile.Default(ga.ProfilesDir)
			}

			if !ga.Watch {
				_, err := g.Run(cmd.Context())
				return err //nolint:wrapcheck // Already wrapped with context.
			}

			return g.Watch(cmd.Context(), func(_ *generate.Result, err error) {
				if err != nil {
					slog.Error("generate", slog.Any("err", err))
				}
			})
		},
	}

	ga.AddFlags(cmd)

	return cmd
}

func addMasterFlag(cmd *cobra.Command, master *string) {
	cmd.Flags().StringVarP(master, "master", "m", "", "Path to the master record (JSON or YAML)")
	must(cmd.MarkFlagFilename("master", "json", "yaml", "yml"))
}

type requiredFlag struct {
	name  string
	value string
}

// requireFlags reports the flags that have no value. Flags may be set through
// the environment, so cobra's own required-flag check is not used.
func requireFlags(flags ...requiredFlag) error {
	var missing []string
	for _, f := range flags {
		if f.value == "" {
			missing = append(missing, strconv.Quote(f.name))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errRequiredFlag, strings.Join(missing, ", "))
	}

	return nil
}

func profileCompletion(ra *RootArgs) cobra.CompletionFunc {
	return func(_ *cobra.Command, _ []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
		summaries, err := profile.List(ra.ProfilesDir)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		completions := make([]cobra.Completion, 0, len(summaries))
		for _, s := range summaries {
			completions = append(completions, cobra.CompletionWithDesc(s.ID, s.Name))
		}

		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}
