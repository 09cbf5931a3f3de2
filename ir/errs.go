package ir

import (
	"errors"
)

var (
	// ErrValue reports a YAML value whose Go representation has no
	// node equivalent.
	ErrValue = errors.New("unsupported value")
)
