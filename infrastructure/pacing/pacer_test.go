package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDelay_Waits(t *testing.T) {
	pacer := NewFixedDelay(20 * time.Millisecond)

	start := time.Now()
	require.NoError(t, pacer.Wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, pacer.Delay())
}

func TestFixedDelay_ZeroDelay(t *testing.T) {
	pacer := NewFixedDelay(0)

	start := time.Now()
	require.NoError(t, pacer.Wait(context.Background()))
	assert.Less(t, time.Since(start), 10*time.Millisecond)
}

func TestFixedDelay_ContextCancelled(t *testing.T) {
	pacer := NewFixedDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pacer.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimit_BurstThenThrottle(t *testing.T) {
	pacer := NewRateLimit(50, 1)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, pacer.Wait(ctx))
	require.NoError(t, pacer.Wait(ctx))

	// second token arrives after ~20ms at 50 rps
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestRateLimit_ContextCancelled(t *testing.T) {
	pacer := NewRateLimit(0.001, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.NoError(t, pacer.Wait(ctx))
	assert.Error(t, pacer.Wait(ctx))
}

func TestNone(t *testing.T) {
	assert.NoError(t, None{}.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, None{}.Wait(ctx))
}
