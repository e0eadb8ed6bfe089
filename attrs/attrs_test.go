package attrs_test

import (
	"testing"

	"github.com/birdduck/regraph/attrs"
	"github.com/stretchr/testify/require"
)

func TestFiniteSetUnionIntersectSubset(t *testing.T) {
	a := attrs.NewFiniteSet("x", "y")
	b := attrs.NewFiniteSet("y", "z")

	u, err := a.Union(b)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"x", "y", "z"}, u.(attrs.FiniteSet).Values())

	i, err := a.Intersect(b)
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, i.(attrs.FiniteSet).Values())

	sub, err := attrs.NewFiniteSet("y").SubsetOf(a)
	require.NoError(t, err)
	require.True(t, sub)

	sub, err = a.SubsetOf(attrs.NewFiniteSet("y"))
	require.NoError(t, err)
	require.False(t, sub)
}

func TestDictUnionSubsetRemove(t *testing.T) {
	d1 := attrs.Dict{"name": attrs.NewFiniteSet("a")}
	d2 := attrs.Dict{"name": attrs.NewFiniteSet("b"), "age": attrs.NewIntegerSet(3)}

	u, err := attrs.Union(d1, d2)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, u["name"].(attrs.FiniteSet).Values())
	require.Equal(t, []int64{3}, u["age"].(attrs.IntegerSet).Values())

	ok, err := attrs.SubsetOf(d1, u)
	require.NoError(t, err)
	require.True(t, ok)

	removed, err := attrs.Remove(u, d1)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, removed["name"].(attrs.FiniteSet).Values())
}

func TestTypeMismatch(t *testing.T) {
	_, err := attrs.NewFiniteSet("a").Union(attrs.NewIntegerSet(1))
	require.Error(t, err)
}
