package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Manager provides thread-safe configuration management.
// It must be initialized via Load() before use.
type Manager struct {
	mu             sync.RWMutex
	config         *Config
	dir            string
	loader         *Loader
	loadedSections map[string]bool
}

// NewManager creates a new Manager in uninitialized state.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{loader: NewLoader(logger)}
}

// DefaultDir returns the per-user configuration directory. MILELE_CONFIG_DIR
// overrides the default of ~/.milele.
func DefaultDir() (string, error) {
	if envDir := os.Getenv("MILELE_CONFIG_DIR"); envDir != "" {
		return filepath.Clean(envDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Load reads configuration from configDir. It merges file values with
// compiled defaults and applies environment variable overrides. The
// configuration is validated before being stored.
func (m *Manager) Load(configDir string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.loader.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	m.loadedSections = m.loader.LoadedSections()

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.dir = configDir
	return cfg, nil
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Dir returns the directory the configuration was loaded from.
func (m *Manager) Dir() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dir
}

// LoadedSections reports which sections came from files.
func (m *Manager) LoadedSections() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.loadedSections))
	maps.Copy(out, m.loadedSections)
	return out
}

// Save persists the current configuration to disk atomically, one file per
// section. Returns ErrNotInitialized if Load() has not been called.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return ErrNotInitialized
	}

	dir := SectionsDir(m.dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sections directory: %w", err)
	}

	sections := []struct {
		file string
		data any
	}{
		{"api.yaml", apiFileWrapper{API: m.config.API}},
		{"carousel.yaml", carouselFileWrapper{Carousel: m.config.Carousel}},
		{"ui.yaml", uiFileWrapper{UI: m.config.UI}},
		{"system.yaml", systemFileWrapper{System: m.config.System}},
	}
	for _, s := range sections {
		if err := saveSection(dir, s.file, s.data); err != nil {
			return err
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("MILELE_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if level := os.Getenv("MILELE_LOG_LEVEL"); level != "" {
		cfg.System.LogLevel = level
	}
	if format := os.Getenv("MILELE_LOG_FORMAT"); format != "" {
		cfg.System.LogFormat = format
	}
	if noColor := os.Getenv("MILELE_NO_COLOR"); noColor == "true" || noColor == "1" {
		cfg.UI.NoColor = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.UI.NoColor = true
	}
}

// saveSection marshals data to YAML and writes it atomically.
func saveSection(dir, filename string, data any) error {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}

	path := filepath.Join(dir, filename)
	return atomicWrite(path, yamlData)
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".milele-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
