package authoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lms/models/course"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// SectionCache holds section lists per course. Failures are logged, never
// returned, so a cache outage only costs an extra API call.
type SectionCache interface {
	Get(ctx context.Context, courseID uint) ([]course.Section, bool)
	Set(ctx context.Context, courseID uint, sections []course.Section)
	Invalidate(ctx context.Context, courseID uint)
}

// NoCache always misses
type NoCache struct{}

func (NoCache) Get(context.Context, uint) ([]course.Section, bool) { return nil, false }
func (NoCache) Set(context.Context, uint, []course.Section)        {}
func (NoCache) Invalidate(context.Context, uint)                   {}

type RedisSectionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSectionCache(rdb *redis.Client, ttl time.Duration) *RedisSectionCache {
	return &RedisSectionCache{rdb: rdb, ttl: ttl}
}

func sectionsKey(courseID uint) string {
	return fmt.Sprintf("lms:course:%d:sections", courseID)
}

func (c *RedisSectionCache) Get(ctx context.Context, courseID uint) ([]course.Section, bool) {
	raw, err := c.rdb.Get(ctx, sectionsKey(courseID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Printf("section cache: get course %d: %v", courseID, err)
		return nil, false
	}

	var sections []course.Section
	if err := json.Unmarshal(raw, &sections); err != nil {
		log.Printf("section cache: decode course %d: %v", courseID, err)
		return nil, false
	}
	return sections, true
}

func (c *RedisSectionCache) Set(ctx context.Context, courseID uint, sections []course.Section) {
	data, err := json.Marshal(sections)
	if err != nil {
		log.Printf("section cache: encode course %d: %v", courseID, err)
		return
	}
	if err := c.rdb.Set(ctx, sectionsKey(courseID), data, c.ttl).Err(); err != nil {
		log.Printf("section cache: set course %d: %v", courseID, err)
	}
}

func (c *RedisSectionCache) Invalidate(ctx context.Context, courseID uint) {
	if err := c.rdb.Del(ctx, sectionsKey(courseID)).Err(); err != nil {
		log.Printf("section cache: invalidate course %d: %v", courseID, err)
	}
}
