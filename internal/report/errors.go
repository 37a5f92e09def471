package report

import "errors"

// Sentinel errors for report package.
var (
	// ErrUnknownAPILevel is returned when aggregated data references an API
	// level that the descriptor table does not list.
	ErrUnknownAPILevel = errors.New("report: api level not in descriptor table")

	// ErrMalformedFontPath is returned when an emoji support row's font path
	// is not of the form api_level/<level>/<file>.
	ErrMalformedFontPath = errors.New("report: malformed font path")
)
