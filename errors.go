package seamcarve

import "errors"

var (
	// ErrWidthTooSmall indicates a target width below the minimum of 2 columns.
	ErrWidthTooSmall = errors.New("seamcarve: target width must be at least 2")
	// ErrNoHistory indicates a target width wider than the removal history can restore.
	ErrNoHistory = errors.New("seamcarve: not enough removed seams to restore target width")
)
