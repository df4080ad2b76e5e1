package ingestors

import "errors"

var (
	// ErrEmptyLog is returned when the log contains no lines at all, so no
	// error rate can be computed.
	ErrEmptyLog = errors.New("log contains no lines")
)
