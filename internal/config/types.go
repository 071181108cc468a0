package config

import "time"

// Config is the root configuration aggregate containing all sections.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Carousel CarouselConfig `yaml:"carousel"`
	UI       UIConfig       `yaml:"ui"`
	System   SystemConfig   `yaml:"system"`
}

// APIConfig locates the storefront backend.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CarouselConfig tunes the testimonial carousel.
type CarouselConfig struct {
	AutoAdvanceMS   int `yaml:"auto_advance_ms"`
	TransitionMS    int `yaml:"transition_ms"`
	ReenableDelayMS int `yaml:"reenable_delay_ms"`
	CellWidthPx     int `yaml:"cell_width_px"` // pixels per terminal column
	BreakpointMD    int `yaml:"breakpoint_md"`
	BreakpointLG    int `yaml:"breakpoint_lg"`
}

// AutoAdvance returns the auto-advance interval.
func (c CarouselConfig) AutoAdvance() time.Duration {
	return time.Duration(c.AutoAdvanceMS) * time.Millisecond
}

// Transition returns the slide duration.
func (c CarouselConfig) Transition() time.Duration {
	return time.Duration(c.TransitionMS) * time.Millisecond
}

// ReenableDelay returns the delay before animation is restored after a snap.
func (c CarouselConfig) ReenableDelay() time.Duration {
	return time.Duration(c.ReenableDelayMS) * time.Millisecond
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
	StartPage      string `yaml:"start_page"`
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`
}

// Section file wrappers. Each YAML file nests its values under the
// section name.
type apiFileWrapper struct {
	API APIConfig `yaml:"api"`
}

type carouselFileWrapper struct {
	Carousel CarouselConfig `yaml:"carousel"`
}

type uiFileWrapper struct {
	UI UIConfig `yaml:"ui"`
}

type systemFileWrapper struct {
	System SystemConfig `yaml:"system"`
}
