package config

// Default value constants to avoid magic numbers and strings.
const (
	// DirName is the per-user directory holding config and session state.
	DirName = ".milele"

	DefaultBaseURL        = "http://localhost:5000"
	DefaultTimeoutSeconds = 15

	DefaultAutoAdvanceMS   = 5000
	DefaultTransitionMS    = 700
	DefaultReenableDelayMS = 20
	DefaultCellWidthPx     = 8
	DefaultBreakpointMD    = 768
	DefaultBreakpointLG    = 1024

	DefaultStartPage = "/"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// ValidLogLevels lists the accepted system.log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted system.log_format values.
var ValidLogFormats = []string{"text", "json"}

// ValidStartPages lists the routes the browser can open on.
var ValidStartPages = []string{"/", "/services", "/testimonials", "/contact", "/login", "/signup"}

// NewDefaultConfig returns a Config with every field set to its default.
func NewDefaultConfig() *Config {
	return &Config{
		API:      NewDefaultAPIConfig(),
		Carousel: NewDefaultCarouselConfig(),
		UI:       UIConfig{StartPage: DefaultStartPage},
		System:   SystemConfig{LogLevel: DefaultLogLevel, LogFormat: DefaultLogFormat},
	}
}

// NewDefaultAPIConfig returns the default API section.
func NewDefaultAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// NewDefaultCarouselConfig returns the default carousel section.
func NewDefaultCarouselConfig() CarouselConfig {
	return CarouselConfig{
		AutoAdvanceMS:   DefaultAutoAdvanceMS,
		TransitionMS:    DefaultTransitionMS,
		ReenableDelayMS: DefaultReenableDelayMS,
		CellWidthPx:     DefaultCellWidthPx,
		BreakpointMD:    DefaultBreakpointMD,
		BreakpointLG:    DefaultBreakpointLG,
	}
}
