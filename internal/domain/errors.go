package domain

import "errors"

var (
	// ErrTransport reports a network failure or a non-success response on a fatal call.
	ErrTransport = errors.New("transport error")
	// ErrParse reports a malformed response body on a fatal call.
	ErrParse = errors.New("parse error")
	// ErrUnorderable reports a percentage that cannot be compared while ranking.
	// Valid totals never produce one.
	ErrUnorderable = errors.New("unorderable percentage")
)
