package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cleanup runs during shutdown where any subset of the optional clients may be
// nil (Redis/NATS disabled, storage unconfigured, or Initialize failed partway).
func TestCleanupWithNoInfrastructure(t *testing.T) {
	c := NewContainer()

	assert.NotPanics(t, func() {
		require.NoError(t, c.Cleanup())
	})
}

func TestCleanupIsIdempotent(t *testing.T) {
	c := NewContainer()

	require.NoError(t, c.Cleanup())
	require.NoError(t, c.Cleanup())
}
