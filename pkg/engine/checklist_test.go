package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistFreshSession(t *testing.T) {
	c := newChecklist([]string{"a", "b", "c"}, nil)

	assert.Equal(t, []string{"a", "b", "c"}, c.unchecked())
	assert.Equal(t, 3, c.total())
	assert.Equal(t, 0, c.recalledCount())
	assert.False(t, c.complete())

	probe, ok := c.nextProbe()
	require.True(t, ok)
	assert.Equal(t, "a", probe)
}

func TestChecklistRehydration(t *testing.T) {
	c := newChecklist([]string{"a", "b", "c"}, []string{"a", "zzz"})

	assert.Equal(t, []string{"b", "c"}, c.unchecked())
	assert.Equal(t, []string{"a"}, c.recalledIDs())

	probe, ok := c.nextProbe()
	require.True(t, ok)
	assert.Equal(t, "b", probe)
}

func TestChecklistMarkRecalledAdvancesProbe(t *testing.T) {
	c := newChecklist([]string{"a", "b", "c"}, nil)

	assert.True(t, c.markRecalled("a"))
	probe, ok := c.nextProbe()
	require.True(t, ok)
	assert.Equal(t, "b", probe)

	// marking a non-probe point leaves the probe alone
	assert.True(t, c.markRecalled("c"))
	probe, ok = c.nextProbe()
	require.True(t, ok)
	assert.Equal(t, "b", probe)
}

func TestChecklistMarkRecalledIdempotent(t *testing.T) {
	c := newChecklist([]string{"a", "b"}, nil)

	assert.True(t, c.markRecalled("a"))
	assert.False(t, c.markRecalled("a"))
	assert.False(t, c.markRecalled("unknown"))
	assert.Equal(t, 1, c.recalledCount())
}

func TestChecklistCircularProbeScan(t *testing.T) {
	c := newChecklist([]string{"a", "b", "c"}, nil)

	// recall the tail point; probe wraps around past it
	require.True(t, c.markRecalled("b"))
	require.True(t, c.markRecalled("c"))
	probe, ok := c.nextProbe()
	require.True(t, ok)
	assert.Equal(t, "a", probe)
}

func TestChecklistComplete(t *testing.T) {
	c := newChecklist([]string{"a", "b"}, nil)
	c.markRecalled("a")
	c.markRecalled("b")

	assert.True(t, c.complete())
	assert.Empty(t, c.unchecked())
	_, ok := c.nextProbe()
	assert.False(t, ok)

	// an empty target list is never complete
	empty := newChecklist(nil, nil)
	assert.False(t, empty.complete())
}
