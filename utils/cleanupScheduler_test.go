package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purgerFunc func(now time.Time) (int64, error)

func (f purgerFunc) PurgeExpired(now time.Time) (int64, error) { return f(now) }

func TestRunCleanupCallsEveryPurger(t *testing.T) {
	calls := map[string]int{}
	RunCleanup(map[string]Purger{
		"drafts": purgerFunc(func(time.Time) (int64, error) {
			calls["drafts"]++
			return 2, nil
		}),
		"registrations": purgerFunc(func(time.Time) (int64, error) {
			calls["registrations"]++
			return 0, errors.New("db down")
		}),
	})

	assert.Equal(t, 1, calls["drafts"])
	assert.Equal(t, 1, calls["registrations"])
}

func TestStartCleanupSchedulerRejectsBadSpec(t *testing.T) {
	_, err := StartCleanupScheduler("not a schedule", nil)
	assert.Error(t, err)
}

func TestStartCleanupScheduler(t *testing.T) {
	c, err := StartCleanupScheduler("@every 1h", map[string]Purger{})
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)
}
