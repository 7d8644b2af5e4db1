package authoring

import (
	"context"
	"lms/models/course"
	"lms/schemas"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisSectionCache(t *testing.T) {
	mr, rdb := newTestRedis(t)
	cache := NewRedisSectionCache(rdb, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx, 1)
	assert.False(t, ok)

	sections := []course.Section{{ID: 1, Title: "Intro", OrderIndex: 1}}
	cache.Set(ctx, 1, sections)

	got, ok := cache.Get(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, sections, got)

	mr.FastForward(2 * time.Minute)
	_, ok = cache.Get(ctx, 1)
	assert.False(t, ok, "entries expire after the ttl")
}

func TestSectionListUsesCache(t *testing.T) {
	_, rdb := newTestRedis(t)
	api := newFakeAPI()
	api.sections[4] = []course.Section{{ID: 2, OrderIndex: 2}, {ID: 1, OrderIndex: 1}}
	c := NewSectionCoordinator(api, NewRedisSectionCache(rdb, time.Minute))
	ctx := context.Background()

	first, err := c.List(ctx, 4)
	require.NoError(t, err)
	second, err := c.List(ctx, 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.listSectionCalls)

	_, err = c.Create(ctx, 4, schemas.SectionForm{Title: "Third", OrderIndex: 3})
	require.NoError(t, err)
	_, err = c.List(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listSectionCalls, "create invalidates the cached list")
}
