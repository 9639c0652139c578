package benches

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CathyLuo/uarch-bench/match"
)

func TestAllHasUniqueIDs(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool)
	for _, b := range all {
		args := b.Args()
		assert.NotEmpty(t, args.ID)
		assert.NotEmpty(t, args.Desc)
		assert.False(t, seen[args.ID], "duplicate benchmark ID %q", args.ID)
		seen[args.ID] = true
	}
}

func TestSelectEmptyPatternReturnsAll(t *testing.T) {
	all := All()
	selected, err := Select(all, "", match.New(false))
	require.NoError(t, err)
	assert.Len(t, selected, len(all))
}

func TestSelectByPrefixWildcard(t *testing.T) {
	selected, err := Select(All(), "memory/*", match.New(false))
	require.NoError(t, err)
	require.NotEmpty(t, selected)
	for _, b := range selected {
		assert.True(t, strings.HasPrefix(b.Args().ID, "memory/"), "ID %q", b.Args().ID)
	}
}

func TestSelectExactID(t *testing.T) {
	selected, err := Select(All(), "cpu/add-dep", match.New(true))
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "cpu/add-dep", selected[0].Args().ID)
}

func TestSelectPropagatesUnsupportedPattern(t *testing.T) {
	_, err := Select(All(), "cpu/*-dep", match.New(true))
	assert.ErrorIs(t, err, match.ErrUnsupportedPattern)
}
