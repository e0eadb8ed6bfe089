package rewrite

import (
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/propagate"
	"github.com/birdduck/regraph/rgerrors"
	"github.com/birdduck/regraph/rule"
)

// Rewrite applies r through instance to the graph named graphID,
// repairing every ancestor and descendant typing so the hierarchy's
// commutativity invariant holds afterwards, and returns rhs_g_prime:
// the map from R into the rewritten graph (spec.md §4.3).
//
// Stage 0 (typecheck) runs to completion, with no mutation, before any
// of stages 1-4 touch a graph — a kernel failure or validation error
// in stage 0 always leaves the hierarchy untouched. Stages 1-4 mutate
// graphs in place as they go; per spec.md §5 the core does not roll
// these back on a deeper failure; callers needing all-or-nothing
// semantics across a rewrite that can fail past stage 0 should
// snapshot the hierarchy first.
func Rewrite(h *hierarchy.Hierarchy, graphID string, r rule.Rule, instance hom.Mapping, opts ...Option) (hom.Mapping, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	g := h.GetGraph(graphID)
	if g == nil {
		return nil, rgerrors.Hierarchy("graph %q not found", graphID)
	}

	instance, err := normalizeInstance(g, r, instance)
	if err != nil {
		return nil, err
	}

	ancestors, err := h.GetAncestors(graphID)
	if err != nil {
		return nil, err
	}
	if err := validatePTyping(h, graphID, ancestors, r, instance, o.PTyping); err != nil {
		return nil, err
	}

	descendants, err := h.GetDescendants(graphID)
	if err != nil {
		return nil, err
	}
	rhsTyping, err := completeRHSTyping(h, graphID, descendants, r, o.RHSTyping, o.Strict)
	if err != nil {
		return nil, err
	}

	// Stage 1 — restrictive rewrite + upward repair.
	gMinus, pGMinus, gMinusG := applyRestrictive(g, r, instance)
	if err := h.SetGraph(graphID, gMinus); err != nil {
		return nil, err
	}
	if err := repairSuccessors(h, graphID, gMinus, gMinusG); err != nil {
		return nil, err
	}

	// Stage 2 — backward propagation.
	if err := propagate.Backward(h, graphID, r, instance, gMinus, pGMinus, o.PTyping); err != nil {
		return nil, err
	}

	// Stage 3 — expansive rewrite + downward repair.
	gPrime, rhsGPrime, gMinusGPrime := applyExpansive(gMinus, r, pGMinus)
	if err := h.SetGraph(graphID, gPrime); err != nil {
		return nil, err
	}
	if err := repairPredecessors(h, graphID, gMinusGPrime); err != nil {
		return nil, err
	}

	// Stage 4 — forward propagation.
	if err := propagate.Forward(h, graphID, r, instance, gPrime, rhsGPrime, rhsTyping); err != nil {
		return nil, err
	}

	return rhsGPrime, nil
}
