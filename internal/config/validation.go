package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateAPI(&cfg.API)...)
	errs = append(errs, validateCarousel(&cfg.Carousel)...)
	errs = append(errs, validateUI(&cfg.UI)...)
	errs = append(errs, validateSystem(&cfg.System)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateAPI(c *APIConfig) []ValidationError {
	var errs []ValidationError

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: "must be an absolute http or https URL (example: base_url: http://localhost:5000)",
			Value:   c.BaseURL,
			Err:     ErrInvalidURL,
		})
	}
	if c.TimeoutSeconds < 1 || c.TimeoutSeconds > 300 {
		errs = append(errs, ValidationError{
			Field:   "api.timeout_seconds",
			Message: "must be between 1 and 300",
			Value:   c.TimeoutSeconds,
			Err:     ErrOutOfRange,
		})
	}
	return errs
}

func validateCarousel(c *CarouselConfig) []ValidationError {
	var errs []ValidationError

	positive := []struct {
		field string
		value int
	}{
		{"carousel.auto_advance_ms", c.AutoAdvanceMS},
		{"carousel.transition_ms", c.TransitionMS},
		{"carousel.reenable_delay_ms", c.ReenableDelayMS},
		{"carousel.cell_width_px", c.CellWidthPx},
		{"carousel.breakpoint_md", c.BreakpointMD},
		{"carousel.breakpoint_lg", c.BreakpointLG},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, ValidationError{
				Field:   p.field,
				Message: "must be greater than 0",
				Value:   p.value,
				Err:     ErrOutOfRange,
			})
		}
	}

	if c.BreakpointMD > 0 && c.BreakpointLG > 0 && c.BreakpointLG <= c.BreakpointMD {
		errs = append(errs, ValidationError{
			Field:   "carousel.breakpoint_lg",
			Message: fmt.Sprintf("must be greater than breakpoint_md (%d)", c.BreakpointMD),
			Value:   c.BreakpointLG,
			Err:     ErrOutOfRange,
		})
	}
	if c.AutoAdvanceMS > 0 && c.TransitionMS >= c.AutoAdvanceMS {
		errs = append(errs, ValidationError{
			Field:   "carousel.transition_ms",
			Message: "must be shorter than auto_advance_ms",
			Value:   c.TransitionMS,
			Err:     ErrOutOfRange,
		})
	}
	return errs
}

func validateUI(c *UIConfig) []ValidationError {
	if c.StartPage == "" || slices.Contains(ValidStartPages, c.StartPage) {
		return nil
	}
	return []ValidationError{{
		Field:   "ui.start_page",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidStartPages, ", ")),
		Value:   c.StartPage,
		Err:     ErrInvalidConfig,
	}}
}

func validateSystem(c *SystemConfig) []ValidationError {
	var errs []ValidationError
	if c.LogLevel != "" && !slices.Contains(ValidLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, ValidationError{
			Field:   "system.log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels, ", ")),
			Value:   c.LogLevel,
			Err:     ErrInvalidConfig,
		})
	}
	if c.LogFormat != "" && !slices.Contains(ValidLogFormats, strings.ToLower(c.LogFormat)) {
		errs = append(errs, ValidationError{
			Field:   "system.log_format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats, ", ")),
			Value:   c.LogFormat,
			Err:     ErrInvalidConfig,
		})
	}
	return errs
}
