// Package wizard drives the interactive collection of a ProjectConfig.
// Every answer is validated incrementally against the accumulator of
// previously accepted names and ports, so the user gets immediate feedback
// and the scaffolder can trust the assembled configuration.
package wizard

import "errors"

// ErrCancelled indicates the user aborted the wizard (Ctrl+C / Esc).
var ErrCancelled = errors.New("wizard: cancelled by user")

// Brand colors for the wizard theme (dark-terminal values).
const (
	colorPrimary = "#38BDF8"
	colorSuccess = "#34D399"
	colorError   = "#F87171"
	colorText    = "#E5E7EB"
	colorMuted   = "#6B7280"
	colorBorder  = "#374151"
)
