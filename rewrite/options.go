package rewrite

// Options carries the caller-supplied control data a rewrite needs
// beyond the rule and the instance itself (spec.md §4.3 stage 0).
type Options struct {
	// PTyping restricts, per ancestor graph id and node, which P-node
	// labels a clone in that ancestor should be split into. Absent
	// entries get the canonical propagation: one copy per P-preimage.
	PTyping map[string]map[string][]string
	// RHSTyping routes, per descendant graph id and added R-node,
	// which existing descendant node(s) the addition should be typed
	// onto. Absent entries introduce a fresh descendant node, unless
	// Strict is set.
	RHSTyping map[string]map[string][]string
	// Strict requires every added R-node to carry an explicit
	// RHSTyping entry in every descendant; violating this raises a
	// RewritingError before any mutation (stage 0).
	Strict bool
}

// Option mutates an Options value, following the teacher's functional-
// options idiom (core.GraphOption, core.EdgeOption).
type Option func(*Options)

// WithPTyping sets the ancestor clone-routing control map.
func WithPTyping(t map[string]map[string][]string) Option {
	return func(o *Options) { o.PTyping = t }
}

// WithRHSTyping sets the descendant addition-routing control map.
func WithRHSTyping(t map[string]map[string][]string) Option {
	return func(o *Options) { o.RHSTyping = t }
}

// WithStrict toggles strict mode.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}
