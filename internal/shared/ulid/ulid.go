package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates a new ULID string identifying one pipeline run.
var NewRunID = func() string {
	return ulid.Make().String()
}
