package crvs

import "errors"

var (
	// ErrCycle is returned when attaching a modulation child would make a
	// curve reachable from itself.
	ErrCycle = errors.New("crvs: modulation cycle")
	// ErrDepth is returned when a modulation graph would be deeper than
	// [MaxDepth].
	ErrDepth = errors.New("crvs: modulation graph too deep")
	// ErrDimension is returned for windows narrower or shorter than 1.
	ErrDimension = errors.New("crvs: window dimension less than 1")
	// ErrResolution is returned for resolutions less than 1.
	ErrResolution = errors.New("crvs: resolution less than 1")
)
