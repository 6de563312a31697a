package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/cvgen/pkg/assemble"
	"github.com/macropower/cvgen/pkg/generate"
	"github.com/macropower/cvgen/pkg/render"
	"github.com/macropower/cvgen/pkg/yaml"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var allFormats = []string{FormatYAML, FormatJSON}

type ContextArgs struct {
	*RootArgs

	Master  string
	Profile string
	Format  string
}

func NewContextArgs(rootArgs *RootArgs) *ContextArgs {
	return &ContextArgs{RootArgs: rootArgs}
}

func (ca *ContextArgs) AddFlags(cmd *cobra.Command) {
	addMasterFlag(cmd, &ca.Master)
	cmd.Flags().StringVarP(&ca.Profile, "profile", "p", "", "Profile name or path")
	cmd.Flags().StringVarP(&ca.Format, "format", "f", FormatYAML, fmt.Sprintf("Output format, one of: %s", allFormats))

	must(cmd.RegisterFlagCompletionFunc("profile", profileCompletion(ca.RootArgs)))
	must(cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(allFormats, cobra.ShellCompDirectiveNoFileComp),
	))
}

func NewContextCmd(ca *ContextArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the template context for the master record and a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := requireFlags(requiredFlag{"master", ca.Master})
			if err != nil {
				return err
			}
			if !slices.Contains(allFormats, ca.Format) {
				return fmt.Errorf("invalid argument %q for \"--format\": want one of %s", ca.Format, allFormats)
			}

			c, err := buildContext(ca.Master, ca.Profile, ca.ProfilesDir)
			if err != nil {
				return err
			}

			out, err := encodeContext(c, ca.Format)
			if err != nil {
				return err
			}

			return writeHighlighted(cmd.OutOrStdout(), out, ca.Format)
		},
	}

	ca.AddFlags(cmd)

	return cmd
}

// buildContext assembles the context with hyperlinks as plain
// {target, text} values.
func buildContext(master, prof, profilesDir string) (*assemble.Context, error) {
	g := &generate.Generator{
		Master:      master,
		Profile:     prof,
		ProfilesDir: profilesDir,
	}

	c, _, err := g.Context(render.LinkBuilder)
	if err != nil {
		return nil, err //nolint:wrapcheck // Already wrapped with context.
	}

	return c, nil
}

func encodeContext(c *assemble.Context, format string) (string, error) {
	if format == FormatJSON {
		b, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}

		return string(b) + "\n", nil
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return "", err //nolint:wrapcheck // Already wrapped with context.
	}

	return string(b), nil
}

// writeHighlighted writes src to w, with syntax highlighting when w is a
// terminal.
func writeHighlighted(w io.Writer, src, lang string) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		mustN(io.WriteString(w, src))
		return nil
	}

	err := yaml.NewHighlighter(lang, termenv.ColorProfile()).Highlight(w, src)
	if err != nil {
		return fmt.Errorf("highlight output: %w", err)
	}

	return nil
}
