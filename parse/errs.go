package parse

import (
	"errors"
)

var (
	// ErrFormat reports a document whose top level is not a sequence, or
	// one that is not valid YAML at all.
	ErrFormat = errors.New("bad document format")
	// ErrParse reports a frame-shaped entry whose required parts are
	// missing or malformed.
	ErrParse = errors.New("parse error")
)
