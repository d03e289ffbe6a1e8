package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type styleInput struct {
	Face string
	Tier int
}

func newStyleCache(t *testing.T, skipCache bool, calls *int) *ReadThroughCache[string, resolvedStyle, styleInput] {
	t.Helper()
	backing := NewInMemoryCacheManager[string, resolvedStyle]("style-cache", DefaultExpiration, DefaultCleanupInterval)
	return NewReadThroughCache[string, resolvedStyle, styleInput](
		backing,
		func(ctx context.Context, input styleInput) (resolvedStyle, error) {
			*calls++
			return resolvedStyle{Foreground: "#bbc2cf", Bold: input.Face == "error"}, nil
		},
		skipCache,
	)
}

func TestReadThroughCache_Get_ComputesOnMiss(t *testing.T) {
	calls := 0
	cache := newStyleCache(t, false, &calls)

	got, err := cache.Get(context.Background(), "a1:default:256", styleInput{Face: "default", Tier: 256}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, "#bbc2cf", got.Foreground)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_Get_ServesSecondHitFromCache(t *testing.T) {
	calls := 0
	cache := newStyleCache(t, false, &calls)

	_, err := cache.Get(context.Background(), "a1:default:256", styleInput{Face: "default", Tier: 256}, time.Minute)
	require.NoError(t, err)
	_, err = cache.Get(context.Background(), "a1:default:256", styleInput{Face: "default", Tier: 256}, time.Minute)
	require.NoError(t, err)

	require.Equal(t, 1, calls, "second lookup should not recompute")
}

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	calls := 0
	cache := newStyleCache(t, true, &calls)

	_, err := cache.Get(context.Background(), "a1:default:256", styleInput{Face: "default", Tier: 256}, time.Minute)
	require.NoError(t, err)
	_, err = cache.Get(context.Background(), "a1:default:256", styleInput{Face: "default", Tier: 256}, time.Minute)
	require.NoError(t, err)

	require.Equal(t, 2, calls, "disabled cache recomputes every time")
}

func TestReadThroughCache_Get_ComputeError(t *testing.T) {
	backing := NewInMemoryCacheManager[string, resolvedStyle]("style-cache", DefaultExpiration, DefaultCleanupInterval)
	cache := NewReadThroughCache[string, resolvedStyle, styleInput](
		backing,
		func(ctx context.Context, input styleInput) (resolvedStyle, error) {
			return resolvedStyle{}, errors.New("palette unavailable")
		},
		false,
	)

	_, err := cache.Get(context.Background(), "a1:default:256", styleInput{Face: "default", Tier: 256}, time.Minute)
	require.Error(t, err)

	// Errors must not be cached as values.
	_, ok := backing.Get(context.Background(), "a1:default:256")
	require.False(t, ok)
}

func TestReadThroughCache_GetWithRefresh_ComputesOnMiss(t *testing.T) {
	calls := 0
	cache := newStyleCache(t, false, &calls)

	got, err := cache.GetWithRefresh(context.Background(), "a1:error:256", styleInput{Face: "error", Tier: 256}, time.Minute)
	require.NoError(t, err)
	require.True(t, got.Bold)
	require.Equal(t, 1, calls)

	_, err = cache.GetWithRefresh(context.Background(), "a1:error:256", styleInput{Face: "error", Tier: 256}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}
