package aggregators

import "errors"

var (
	// ErrZeroTotals is returned when the grand totals used as percentage
	// denominators are zero.
	ErrZeroTotals = errors.New("total request count or total request time is zero")
)
