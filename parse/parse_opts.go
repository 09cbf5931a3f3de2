package parse

type parseOpts struct {
	uniqueNames bool
}

type ParseOption func(*parseOpts)

// UniqueNames makes duplicate frame names a parse error. By default
// duplicates are permitted and name lookups resolve to the first match.
func UniqueNames() ParseOption {
	return func(o *parseOpts) { o.uniqueNames = true }
}
