package sgf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTrunkWalk(t *testing.T) {
	g := line("B", "aa", "W", "bb", "B", "cc")
	c := NewCursor(g)

	assert.True(t, c.AtStart())
	assert.Equal(t, 0, c.Ply())
	assert.Equal(t, "aa", c.Node().Get("B").Values[0].Raw)

	n, err := c.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, "bb", n.Get("W").Values[0].Raw)
	assert.Equal(t, 1, c.Ply())
	assert.False(t, c.AtStart())

	n, err = c.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, "cc", n.Get("B").Values[0].Raw)
	assert.True(t, c.AtEnd())

	_, err = c.Advance(0)
	require.Error(t, err)
	assert.True(t, IsTreeEnd(err))
	assert.Equal(t, 2, c.Ply())
}

func TestCursorBranchDescent(t *testing.T) {
	g := sampleTree()
	c := NewCursor(g)

	_, err := c.Advance(0)
	require.NoError(t, err)
	_, err = c.Advance(0)
	require.NoError(t, err)
	assert.True(t, c.AtBranchPoint())

	heads := c.Children()
	require.Len(t, heads, 2)
	assert.Equal(t, "pp", heads[0].Get("B").Values[0].Raw)
	assert.Equal(t, "cd", heads[1].Get("B").Values[0].Raw)

	n, err := c.Advance(1)
	require.NoError(t, err)
	assert.Equal(t, "cd", n.Get("B").Values[0].Raw)
	assert.Equal(t, 3, c.Ply())
	assert.Equal(t, g.Branches[1], c.Subtree())
	assert.Equal(t, 0, c.Index())
}

func TestCursorOutOfBounds(t *testing.T) {
	g := sampleTree()
	c := NewCursor(g)

	// Mid-trunk, only branch 0 is legal.
	_, err := c.Advance(1)
	require.Error(t, err)
	assert.True(t, IsOutOfBounds(err))
	assert.False(t, IsTreeEnd(err))

	_, err = c.Advance(0)
	require.NoError(t, err)
	_, err = c.Advance(0)
	require.NoError(t, err)

	_, err = c.Advance(2)
	require.Error(t, err)
	assert.True(t, IsOutOfBounds(err))
	assert.Contains(t, err.Error(), "OUT_OF_BOUNDS")
}

func TestCursorPrevious(t *testing.T) {
	g := sampleTree()
	c := NewCursor(g)

	_, err := c.Previous()
	require.Error(t, err)
	assert.True(t, IsTreeEnd(err))

	c.Reset()
	_, _ = c.Advance(0)
	_, _ = c.Advance(0)
	_, _ = c.Advance(0) // into first branch

	n, err := c.Previous()
	require.NoError(t, err)
	assert.Equal(t, "dp", n.Get("W").Values[0].Raw)
	assert.Equal(t, 2, c.Ply())
	assert.Equal(t, g, c.Subtree())
}

func TestCursorIntoBranchAndToParent(t *testing.T) {
	g := sampleTree()
	c := NewCursor(g)

	// IntoBranch is only legal at the trunk end.
	_, err := c.IntoBranch(0)
	require.Error(t, err)
	assert.True(t, IsOutOfBounds(err))

	_, _ = c.Advance(0)
	_, _ = c.Advance(0)

	n, err := c.IntoBranch(0)
	require.NoError(t, err)
	assert.Equal(t, "pp", n.Get("B").Values[0].Raw)

	_, err = c.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Ply())

	require.NoError(t, c.ToParent())
	assert.Equal(t, "dp", c.Node().Get("W").Values[0].Raw)
	assert.Equal(t, 2, c.Ply())

	err = c.ToParent()
	require.Error(t, err)
	assert.True(t, IsTreeEnd(err))
}

func TestCursorReset(t *testing.T) {
	g := sampleTree()
	c := NewCursor(g)
	_, _ = c.Advance(0)
	_, _ = c.Advance(0)
	_, _ = c.Advance(1)

	c.Reset()
	assert.True(t, c.AtStart())
	assert.Equal(t, 0, c.Ply())
	assert.Equal(t, g, c.Subtree())
	assert.Equal(t, g.Root(), c.Node())
}
