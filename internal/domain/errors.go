package domain

import "errors"

// Sentinel errors for the offer normalization pipeline. Structural errors are
// scoped to a single offer: the transformer skips the offending offer and
// keeps processing the batch, so none of these should ever abort a transform
// call for well-formed neighbours.
var (
	// ErrNoSegments means a raw offer carried no leg records at all.
	ErrNoSegments = errors.New("offer has no flight segments")

	// ErrEmptySegmentGroup means a segment group ended up with zero segments,
	// which indicates malformed upstream data.
	ErrEmptySegmentGroup = errors.New("segment group has no segments")

	// ErrInvalidRequest is returned for search requests that fail validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamUnavailable is returned when the distribution API cannot be
	// reached or answers with a non-success status.
	ErrUpstreamUnavailable = errors.New("flight distribution API unavailable")
)
