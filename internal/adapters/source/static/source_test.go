package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceServesSamplePackagesInOrder(t *testing.T) {
	source := NewSource()

	packages, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 3)

	assert.Equal(t, "SWM", packages[0].WorkoutType)
	assert.Equal(t, "RUN", packages[1].WorkoutType)
	assert.Equal(t, "WLK", packages[2].WorkoutType)
}

func TestSourceReturnsACopy(t *testing.T) {
	source := NewSource()

	first, err := source.Load(context.Background())
	require.NoError(t, err)
	first[0].WorkoutType = "XXX"

	second, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SWM", second[0].WorkoutType)
}

func TestSourceCanceledContext(t *testing.T) {
	source := NewSource()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
