package redisquota

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, userDaily, globalDaily int64) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, userDaily, globalDaily), mr
}

func TestAllowWithinQuota(t *testing.T) {
	s, _ := newStore(t, 3, 0)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ok, err := s.Allow(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, ok, "call %d", i+1)
	}
	ok, err := s.Allow(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok, "fourth call must be denied")
}

func TestDenialDoesNotConsumeOtherUsers(t *testing.T) {
	s, _ := newStore(t, 1, 0)
	ctx := context.Background()

	ok, err := s.Allow(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.Allow(ctx, "u1")
	require.NoError(t, err)
	require.False(t, ok)

	// Another user still has their own bucket.
	ok, err = s.Allow(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGlobalCeiling(t *testing.T) {
	s, _ := newStore(t, 0, 2)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		ok, err := s.Allow(ctx, fmt.Sprintf("u%d", i))
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := s.Allow(ctx, "u9")
	require.NoError(t, err)
	assert.False(t, ok, "global ceiling must deny regardless of user")
}

func TestDeniedCallDoesNotBurnGlobalQuota(t *testing.T) {
	s, _ := newStore(t, 1, 3)

	require.True(t, allow(t, s, "u1"))
	// u1 exhausted; denials must not eat the global budget.
	require.False(t, allow(t, s, "u1"))
	require.False(t, allow(t, s, "u1"))

	assert.True(t, allow(t, s, "u2"))
	assert.True(t, allow(t, s, "u3"))
}

func TestZeroCeilingsUnlimited(t *testing.T) {
	s, _ := newStore(t, 0, 0)
	for i := 0; i < 50; i++ {
		ok, err := s.Allow(context.Background(), "u1")
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestAnonymousSharesOneBucket(t *testing.T) {
	s, _ := newStore(t, 1, 0)
	ctx := context.Background()
	require.True(t, allow(t, s, ""))
	ok, err := s.Allow(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountersResetAcrossDays(t *testing.T) {
	s, _ := newStore(t, 1, 0)
	base := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	require.True(t, allow(t, s, "u1"))
	require.False(t, allow(t, s, "u1"))

	// Next day keys are distinct, so the budget is fresh.
	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	assert.True(t, allow(t, s, "u1"))
}

func allow(t *testing.T, s *Store, user string) bool {
	t.Helper()
	ok, err := s.Allow(context.Background(), user)
	require.NoError(t, err)
	return ok
}
