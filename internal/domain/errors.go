package domain

import "errors"

// Domain errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrTimelineTooLong  = errors.New("timeline exceeds maximum length")
	ErrChartOutOfRange  = errors.New("timeline value out of chart range")
	ErrUnknownField     = errors.New("unknown field")
	ErrUnsupportedEvent = errors.New("unsupported event type")
)
