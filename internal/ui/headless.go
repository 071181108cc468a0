package ui

import (
	"maps"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether forms can prompt, and holds the values
// used in their place when they cannot (flag input).
type HeadlessManager struct {
	forced *bool
	values map[string]string
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless reports whether prompts must be skipped. ForceHeadless
// overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// SetValues stores field values keyed by form field name. Empty values are
// dropped so they never mask a prompt default.
func (h *HeadlessManager) SetValues(values map[string]string) {
	h.values = make(map[string]string, len(values))
	maps.Copy(h.values, values)
	maps.DeleteFunc(h.values, func(_, v string) bool { return v == "" })
}

// Value returns the stored value for key.
func (h *HeadlessManager) Value(key string) (string, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Fill copies stored values into the pointed-to fields, leaving fields
// without a stored value untouched.
func (h *HeadlessManager) Fill(fields map[string]*string) {
	for key, dst := range fields {
		if v, ok := h.values[key]; ok {
			*dst = v
		}
	}
}
