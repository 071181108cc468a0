package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/milele-cleaning/milele/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and write the configuration",
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		newConfigShowCmd(),
		newConfigInitCmd(),
		newConfigPathCmd(),
	)
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			data, err := yaml.Marshal(deps.Config.Get())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "# sections from files: %s\n", loadedList(deps.Config.LoadedSections()))
			_, _ = out.Write(data)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the section files with current values",
		Long: `Write one YAML file per section under <config-dir>/config/sections.
Values given through flags, such as --api-url, are written too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			if err := deps.Config.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard(deps.Theme,
				"Configuration written",
				config.SectionsDir(deps.Config.Dir()),
			))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Config.Dir())
			return nil
		},
	}
}

func loadedList(sections map[string]bool) string {
	var names []string
	for name, ok := range sections {
		if ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
