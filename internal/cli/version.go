package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milele-cleaning/milele/pkg/version"
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "milele %s\n", version.GetFullVersion())
		},
	}
	// Needs no configuration.
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }
	return cmd
}
