package fixtures

import "errors"

// ErrTooFewLevels is returned by Chain when asked for fewer than two
// levels — a chain needs at least a source and a target to be a chain.
var ErrTooFewLevels = errors.New("fixtures: chain needs at least 2 levels")

// ErrEmptyLeafSet is returned by Star when given no leaves.
var ErrEmptyLeafSet = errors.New("fixtures: star needs at least 1 leaf")
