package fixtures_test

import (
	"testing"

	"github.com/birdduck/regraph/internal/fixtures"
	"github.com/stretchr/testify/require"
)

func TestChainRejectsTooFewLevels(t *testing.T) {
	_, err := fixtures.Chain([]string{"only"}, 2)
	require.ErrorIs(t, err, fixtures.ErrTooFewLevels)
}

func TestChainBuildsConsecutiveTypings(t *testing.T) {
	h, err := fixtures.Chain([]string{"A", "B", "C"}, 2)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"A", "B", "C"}, h.Graphs())
	require.Len(t, h.GetTyping("A", "B"), 2)
	require.Len(t, h.GetTyping("B", "C"), 2)
}

func TestStarRejectsEmptyLeaves(t *testing.T) {
	_, err := fixtures.Star("center", nil, 1)
	require.ErrorIs(t, err, fixtures.ErrEmptyLeafSet)
}

func TestStarTypesEveryLeafToCenter(t *testing.T) {
	h, err := fixtures.Star("center", []string{"leaf1", "leaf2"}, 1)
	require.NoError(t, err)
	ancestors, err := h.GetAncestors("center")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"leaf1", "leaf2"}, ancestors)
}

func TestCloningScenario(t *testing.T) {
	s, err := fixtures.CloningScenario()
	require.NoError(t, err)
	require.Equal(t, "T", s.Origin)
	require.ElementsMatch(t, []string{"a1"}, s.PTyping["G"]["x"])
	require.ElementsMatch(t, []string{"a2"}, s.PTyping["G"]["y"])
}

func TestMergeScenario(t *testing.T) {
	s, err := fixtures.MergeScenario()
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, s.Rule.RHS.Nodes())
}

func TestDeletionScenario(t *testing.T) {
	s, err := fixtures.DeletionScenario()
	require.NoError(t, err)
	anc, err := s.Hierarchy.GetAncestors("T")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"M", "G"}, anc)
}
