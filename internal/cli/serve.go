package cli

import (
	"github.com/spf13/cobra"

	"github.com/macropower/cvgen/pkg/mcp"
)

type ServeMCPArgs struct {
	*RootArgs

	Master  string
	Address string
}

func NewServeMCPArgs(rootArgs *RootArgs) *ServeMCPArgs {
	return &ServeMCPArgs{RootArgs: rootArgs}
}

func (sa *ServeMCPArgs) AddFlags(cmd *cobra.Command) {
	addMasterFlag(cmd, &sa.Master)
	cmd.Flags().StringVar(&sa.Address, "addr", "", "Serve streamable HTTP at this address instead of stdio")
}

func NewServeMCPCmd(sa *ServeMCPArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve-mcp",
		Short: "Serve the CV tools over the Model Context Protocol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := requireFlags(requiredFlag{"master", sa.Master})
			if err != nil {
				return err
			}

			return mcp.NewServer(sa.Address, sa.Master, sa.ProfilesDir).Serve(cmd.Context())
		},
	}

	sa.AddFlags(cmd)

	return cmd
}
