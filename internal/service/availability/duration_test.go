package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationCalculator_TotalDuration(t *testing.T) {
	providers := newFakeProviders()
	providers.add(1, "X", map[int64]int{serviceA: 30, serviceB: 20})
	providers.add(2, "Y", map[int64]int{serviceA: 45, serviceB: 15})
	c := NewDurationCalculator(providers, true)
	ctx := context.Background()

	total, err := c.TotalDuration(ctx, 1, []int64{serviceA, serviceB})
	require.NoError(t, err)
	assert.Equal(t, 50, total)

	// Длительность зависит от мастера
	total, err = c.TotalDuration(ctx, 2, []int64{serviceA, serviceB})
	require.NoError(t, err)
	assert.Equal(t, 60, total)

	total, err = c.TotalDuration(ctx, 1, []int64{serviceA, serviceA})
	require.NoError(t, err)
	assert.Equal(t, 30, total)

	total, err = c.TotalDuration(ctx, 1, nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDurationCalculator_UnofferedService(t *testing.T) {
	providers := newFakeProviders()
	providers.add(1, "X", map[int64]int{serviceA: 30})
	ctx := context.Background()

	_, err := NewDurationCalculator(providers, true).TotalDuration(ctx, 1, []int64{serviceA, serviceC})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	total, err := NewDurationCalculator(providers, false).TotalDuration(ctx, 1, []int64{serviceA, serviceC})
	require.NoError(t, err)
	assert.Equal(t, 30, total)
}

func TestDurationCalculator_StorageError(t *testing.T) {
	providers := newFakeProviders()
	providers.err = errStorage

	_, err := NewDurationCalculator(providers, true).TotalDuration(context.Background(), 1, []int64{serviceA})
	assert.ErrorIs(t, err, ErrInternal)
}
