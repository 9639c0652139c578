package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWildcardMatcher(t *testing.T) {
	m := WildcardMatcher{}

	cases := []struct {
		target  string
		pattern string
		want    bool
	}{
		{"abcdef", "abc*", true},
		{"xabc", "abc*", false},
		{"abc", "abc", true},
		{"ab", "abc", false},
		{"abc", "a*c", true},
		{"axxxc", "a*c", true},
		{"axxxd", "a*c", false},
		{"memory/load-lat-1.00MB", "memory/*", true},
		{"cpu/add-dep", "memory/*", false},
		{"anything", "*", true},
		{"", "*", true},
		{"a.c", "a.c", true},
		{"abc", "a.c", false}, // '.' is literal, not a metacharacter
	}
	for _, tc := range cases {
		got, err := m.Matches(tc.target, tc.pattern)
		require.NoError(t, err, "target=%q pattern=%q", tc.target, tc.pattern)
		assert.Equal(t, tc.want, got, "target=%q pattern=%q", tc.target, tc.pattern)
	}
}

func TestSimpleMatcher(t *testing.T) {
	m := SimpleMatcher{}

	got, err := m.Matches("abcdef", "abc*")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = m.Matches("xabc", "abc*")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = m.Matches("abc", "abc")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = m.Matches("ab", "abc")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestSimpleMatcherRejectsNonTrailingWildcard(t *testing.T) {
	m := SimpleMatcher{}

	for _, pattern := range []string{"a*c", "*abc", "a*b*"} {
		_, err := m.Matches("abc", pattern)
		assert.ErrorIs(t, err, ErrUnsupportedPattern, "pattern=%q", pattern)
	}
}

func TestNewSelectsEngine(t *testing.T) {
	assert.IsType(t, SimpleMatcher{}, New(true))
	assert.IsType(t, WildcardMatcher{}, New(false))
}
