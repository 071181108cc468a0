// Package cli provides the Cobra command tree and dependency injection
// wiring for the milele CLI. This file defines the Dependencies struct
// (Composition Root) that wires the storefront services together.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/milele-cleaning/milele/internal/account"
	"github.com/milele-cleaning/milele/internal/api"
	"github.com/milele-cleaning/milele/internal/config"
	"github.com/milele-cleaning/milele/internal/session"
	"github.com/milele-cleaning/milele/internal/ui"
)

// Dependencies holds the services used by CLI commands. This is the only
// place where concrete types are instantiated and wired together.
type Dependencies struct {
	Config   *config.Manager
	API      *api.Client
	Sessions session.Store
	Account  *account.Service
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger

	logCloser io.Closer
}

// Overrides are command-line values that take precedence over the loaded
// configuration.
type Overrides struct {
	ConfigDir      string
	APIURL         string
	NoColor        bool
	NonInteractive bool
}

// deps is the global dependencies instance, initialized by InitDependencies
// and completed by Ensure before a command runs.
var deps *Dependencies

// InitDependencies creates the dependencies that need no configuration.
// The rest is wired lazily by Ensure once flags are parsed.
func InitDependencies() {
	deps = &Dependencies{
		Headless: ui.NewHeadlessManager(),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// NewDependencies loads configuration from the overridden or default
// directory and wires every service.
func NewDependencies(o Overrides) (*Dependencies, error) {
	d := &Dependencies{Headless: ui.NewHeadlessManager()}
	if err := d.Ensure(o); err != nil {
		return nil, err
	}
	return d, nil
}

// Ensure completes the wiring. It is a no-op once Account is set, which
// lets tests inject a prepared instance.
func (d *Dependencies) Ensure(o Overrides) error {
	if d.Account != nil {
		return nil
	}

	dir := o.ConfigDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return err
		}
	}

	// Config warnings go to stderr until the configured logger exists.
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	d.Config = config.NewManager(bootLogger)
	cfg, err := d.Config.Load(dir)
	if err != nil {
		return err
	}
	if o.APIURL != "" {
		cfg.API.BaseURL = o.APIURL
	}
	if o.NoColor {
		cfg.UI.NoColor = true
	}
	if o.NonInteractive {
		cfg.UI.NonInteractive = true
	}

	logger, closer, err := newLogger(cfg.System, dir)
	if err != nil {
		return err
	}
	d.Logger = logger
	d.logCloser = closer

	if d.Headless == nil {
		d.Headless = ui.NewHeadlessManager()
	}
	if cfg.UI.NonInteractive {
		d.Headless.ForceHeadless(true)
	}
	d.Theme = ui.NewTheme(cfg.UI.NoColor)

	d.API = api.NewClient(cfg.API.BaseURL, newHTTPClient(cfg.API.Timeout()), logger)
	if d.Sessions == nil {
		d.Sessions = session.NewFileStore(dir)
	}
	d.Account = account.NewService(d.API, d.Sessions, logger)

	logger.Debug("dependencies ready", "config_dir", dir, "api", d.API.BaseURL())
	return nil
}

// Close releases the log file, if one was opened.
func (d *Dependencies) Close() error {
	if d == nil || d.logCloser == nil {
		return nil
	}
	err := d.logCloser.Close()
	d.logCloser = nil
	return err
}

// newLogger builds the application logger from the system section. With
// no log file configured everything is discarded: the terminal belongs to
// the UI. Relative log paths resolve against the config directory.
func newLogger(sys config.SystemConfig, dir string) (*slog.Logger, io.Closer, error) {
	if sys.LogFile == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(sys.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	path := sys.LogFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.EqualFold(sys.LogFormat, "json") {
		h = slog.NewJSONHandler(f, opts)
	} else {
		h = slog.NewTextHandler(f, opts)
	}
	return slog.New(h), f, nil
}

// newHTTPClient returns a client bounded by timeout, or nil for the API
// client's default.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		return nil
	}
	return &http.Client{Timeout: timeout}
}

// errNotReady is returned when a command runs before Ensure succeeded.
var errNotReady = errors.New("cli: dependencies not initialized")

func ready() error {
	if deps == nil || deps.Account == nil {
		return errNotReady
	}
	return nil
}
