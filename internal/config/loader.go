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

// Loader reads configuration from YAML section files.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu             sync.RWMutex
	logger         *slog.Logger
	loadedSections map[string]bool
}

// NewLoader creates a new Loader. A nil logger uses slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// SectionsDir returns the directory holding the section files for configDir.
func SectionsDir(configDir string) string {
	return filepath.Join(filepath.Clean(configDir), "config", "sections")
}

// Load reads all configuration section files from the given directory and
// returns a merged Config with defaults applied for missing fields.
// Missing files use default values. Invalid YAML files are skipped with a
// warning.
func (l *Loader) Load(configDir string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	cfg := NewDefaultConfig()

	sectionsDir := SectionsDir(configDir)
	if _, err := os.Stat(sectionsDir); os.IsNotExist(err) {
		l.logger.Debug("config sections directory not found, using defaults", "path", sectionsDir)
		return cfg, nil
	}

	apiWrapper := &apiFileWrapper{API: cfg.API}
	if l.loadSection(sectionsDir, "api", apiWrapper) {
		cfg.API = apiWrapper.API
	}

	carouselWrapper := &carouselFileWrapper{Carousel: cfg.Carousel}
	if l.loadSection(sectionsDir, "carousel", carouselWrapper) {
		cfg.Carousel = carouselWrapper.Carousel
	}

	uiWrapper := &uiFileWrapper{UI: cfg.UI}
	if l.loadSection(sectionsDir, "ui", uiWrapper) {
		cfg.UI = uiWrapper.UI
	}

	systemWrapper := &systemFileWrapper{System: cfg.System}
	if l.loadSection(sectionsDir, "system", systemWrapper) {
		cfg.System = systemWrapper.System
	}

	return cfg, nil
}

// loadSection loads <name>.yaml into wrapper and records the section as
// loaded. Read or parse failures keep the defaults and log a warning.
func (l *Loader) loadSection(dir, name string, wrapper any) bool {
	loaded, err := loadYAMLFile(dir, name+".yaml", wrapper)
	if err != nil {
		l.logger.Warn("failed to load config section, using defaults", "section", name, "error", err)
		return false
	}
	if loaded {
		l.loadedSections[name] = true
	}
	return loaded
}

// LoadedSections returns a copy of the map indicating which sections
// were successfully loaded from YAML files.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
