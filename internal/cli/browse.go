package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/milele-cleaning/milele/internal/carousel"
	"github.com/milele-cleaning/milele/internal/config"
	"github.com/milele-cleaning/milele/internal/tui"
)

// ErrNotInteractive is returned when the storefront is opened without a
// terminal to draw on.
var ErrNotInteractive = errors.New("cli: an interactive terminal is required")

func init() {
	rootCmd.AddCommand(newBrowseCmd(), newTestimonialsCmd())
}

func newBrowseCmd() *cobra.Command {
	var page string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the storefront",
		Long: fmt.Sprintf(`Open the full-screen storefront.

Pages: %s
Switch pages with 1-6 or tab, press b to book, c to chat, q to quit.`, strings.Join(tui.Routes(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			start := page
			if start == "" {
				start = deps.Config.Get().UI.StartPage
			}
			if !tui.IsRoute(start) {
				return fmt.Errorf("unknown page %q", start)
			}
			return runBrowse(cmd, start)
		},
	}
	cmd.Flags().StringVarP(&page, "page", "p", "", "page to open on, e.g. /services")
	return cmd
}

func newTestimonialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testimonials",
		Short: "Show what our clients say",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			return runBrowse(cmd, tui.RouteTestimonials)
		},
	}
}

// runBrowse runs the TUI until the user quits. Every timer the app started
// is released before returning.
func runBrowse(cmd *cobra.Command, start string) error {
	if deps.Headless.IsHeadless() {
		return ErrNotInteractive
	}
	cfg := deps.Config.Get()

	app := tui.New(tui.Options{
		Theme:         deps.Theme,
		Service:       deps.Account,
		Carousel:      carouselOptions(cfg.Carousel),
		Start:         start,
		SubmitTimeout: cfg.API.Timeout(),
		Logger:        deps.Logger,
	})
	defer app.Close()

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run storefront: %w", err)
	}
	return nil
}

// carouselOptions maps the carousel config section onto the widget.
func carouselOptions(c config.CarouselConfig) tui.CarouselOptions {
	opts := tui.DefaultCarouselOptions()
	opts.AutoAdvance = c.AutoAdvance()
	opts.Transition = c.Transition()
	opts.ReenableDelay = c.ReenableDelay()
	opts.CellWidthPx = c.CellWidthPx
	opts.Breakpoints = carousel.Breakpoints{MD: c.BreakpointMD, LG: c.BreakpointLG}
	return opts
}
