package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/delacli/dela/internal/types"
)

func TestAvailable_MemoizesAcrossCalls(t *testing.T) {
	ResetCache()
	defer ResetCache()

	first := Available(types.RunnerMake)
	_, cached := defaultCache.cache[types.RunnerMake.ShortName()]
	assert.True(t, cached, "first call must populate the memoization table")
	assert.Equal(t, first, Available(types.RunnerMake), "second call must return the memoized value")
}

func TestAvailable_UnknownBinaryIsFalse(t *testing.T) {
	ResetCache()
	defer ResetCache()

	assert.False(t, Available(types.Runner("definitely-not-a-real-binary-xyz")))
}

func TestResetCache_ClearsMemoization(t *testing.T) {
	ResetCache()
	Available(types.RunnerMake)
	assert.Len(t, defaultCache.cache, 1)

	ResetCache()
	assert.Empty(t, defaultCache.cache)
}
