package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportsEmptySet(t *testing.T) {
	assert.True(t, Supports(nil))
	assert.Empty(t, Missing(nil))
}

func TestSupportsAgreesWithMissing(t *testing.T) {
	for _, f := range []Feature{AESNI, AVX2, POPCNT, RDTSCP, SSE2} {
		set := []Feature{f}
		assert.Equal(t, len(Missing(set)) == 0, Supports(set), "feature %s", f)
	}
}

func TestFeatureString(t *testing.T) {
	assert.Equal(t, "AVX2", AVX2.String())
	assert.Equal(t, "AESNI", AESNI.String())
}
