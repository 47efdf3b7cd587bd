package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// CardWidth is the outer width of one recommendation card.
	CardWidth = 30

	// CardGap is the horizontal space between cards in a row.
	CardGap = 1

	// SelectorRows is how many movie entries the open selector shows at once.
	SelectorRows = 8
)

// Activity overlay limits.
const (
	// ActivityLogLines is the number of log lines read for the activity overlay.
	ActivityLogLines = 200
)

// Timing constants.
const (
	// ToastDuration is how long a notification stays visible.
	ToastDuration = 3 * time.Second

	// PulseDuration is how long the trigger is highlighted after a selection.
	PulseDuration = 500 * time.Millisecond

	// DefaultUIInterval is the default health refresh interval for the header.
	DefaultUIInterval = time.Second
)
