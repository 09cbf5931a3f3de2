package motion

import (
	"errors"
)

var (
	// ErrNotFound reports an edit against a frame name that is absent
	// from the loaded document.
	ErrNotFound = errors.New("frame not found")
	// ErrUnknownJoint reports a strict-mode edit naming a joint the
	// current joint mapping cannot resolve.
	ErrUnknownJoint = errors.New("unknown joint name")
)
