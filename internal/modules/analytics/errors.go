package analytics

import "errors"

var (
	ErrUnknownReport = errors.New("unknown report kind")
	ErrUnknownRange  = errors.New("unknown date range")
)
