package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milele-cleaning/milele/pkg/version"
)

// flags holds the persistent root flags.
var flags Overrides

var rootCmd = &cobra.Command{
	Use:   "milele",
	Short: "Milele Cleaning Services in your terminal",
	Long: `milele is the terminal storefront for Milele Cleaning Services.

Run it without arguments to browse the services, read what clients say,
request a free quote or book a cleaning. The quote, book, login and signup
commands run the same forms directly and accept flags for scripted use.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			InitDependencies()
		}
		if err := deps.Ensure(flags); err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBrowse(cmd, deps.Config.Get().UI.StartPage)
	},
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	defer func() { _ = deps.Close() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("milele %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigDir, "config-dir", "", "configuration and session directory (default ~/.milele)")
	pf.StringVar(&flags.APIURL, "api-url", "", "storefront API base URL")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colors")
	pf.BoolVar(&flags.NonInteractive, "non-interactive", false, "never prompt; read form values from flags")
}
