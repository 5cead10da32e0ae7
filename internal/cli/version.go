package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/buildinfo"
)

// versionCommand creates the version command.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.Out, buildinfo.String())
			return err
		},
	}
}
