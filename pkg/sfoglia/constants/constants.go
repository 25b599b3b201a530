// Package constants defines shared constants, types, and configuration values
// used throughout the sfoglia UI toolkit.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// LogLevelEnvVar selects the framework log level (debug, info, warn, error).
const LogLevelEnvVar = "SFOGLIA_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VariableSigil prefixes a theme attribute value that refers to a theme
// variable, e.g. "$accent".
const VariableSigil = "$"

// SelectorDelimiter separates the segments of a parent-chained style
// selector, e.g. "window>caption".
const SelectorDelimiter = ">"

// WidgetState represents an interaction state a theme may specialize for any
// selector by declaring a "<selector>:<state>" entry.
type WidgetState int

const (
	StateNone WidgetState = iota
	StateHover
	StateActive
	StateFocus
	StateDisabled
)

// String returns the state suffix used in theme selector keys.
func (s WidgetState) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StateActive:
		return "active"
	case StateFocus:
		return "focus"
	case StateDisabled:
		return "disabled"
	default:
		return "none"
	}
}

// Align specifies how a widget is positioned inside the space a layout
// assigns to it.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// SizePolicy specifies how a widget trades size with its siblings.
type SizePolicy int

const (
	PolicyFixed SizePolicy = iota
	PolicyExpand
	PolicyShrink
)

// Default timing constants.
const (
	DefaultFPS         = 60                       // Frame cap when vsync is unavailable
	DefaultFrameBudget = time.Second / DefaultFPS // Target frame duration at DefaultFPS
)
