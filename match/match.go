// Package match selects benchmarks by name pattern. The only metacharacter
// is '*', matching zero or more characters; everything else is literal.
//
// Two engines implement the same interface: the wildcard engine handles '*'
// anywhere in the pattern, and the simple engine handles only an exact
// literal or a single trailing '*'. The simple engine exists for callers
// that want matching with no regexp machinery behind it; when it sees a
// pattern it cannot handle it says so instead of guessing, because a wrong
// match silently runs the wrong benchmarks.
package match

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnsupportedPattern is returned by the simple engine for patterns with a
// '*' anywhere but the last position.
var ErrUnsupportedPattern = errors.New("non-trailing wildcards need the full matching engine")

// Matcher reports whether a benchmark name matches a selection pattern.
type Matcher interface {
	Matches(target, pattern string) (bool, error)
}

// New returns the simple engine when simple is true, otherwise the full
// wildcard engine.
func New(simple bool) Matcher {
	if simple {
		return SimpleMatcher{}
	}
	return WildcardMatcher{}
}

// WildcardMatcher supports '*' in any position by rewriting the pattern to
// an anchored regular expression: escape everything, then turn each escaped
// '*' back into '.*'.
type WildcardMatcher struct{}

func (WildcardMatcher) Matches(target, pattern string) (bool, error) {
	escaped := regexp.QuoteMeta(pattern)
	expr := strings.ReplaceAll(escaped, `\*`, `.*`)
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return false, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	return re.MatchString(target), nil
}

// SimpleMatcher supports an exact literal or a single trailing '*' (prefix
// match). Any other use of '*' returns ErrUnsupportedPattern.
type SimpleMatcher struct{}

func (SimpleMatcher) Matches(target, pattern string) (bool, error) {
	star := strings.IndexByte(pattern, '*')
	switch {
	case star < 0:
		return target == pattern, nil
	case star == len(pattern)-1:
		return strings.HasPrefix(target, pattern[:len(pattern)-1]), nil
	default:
		return false, fmt.Errorf("pattern %q: %w", pattern, ErrUnsupportedPattern)
	}
}
