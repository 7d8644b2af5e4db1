package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger removes rows whose expiry is before now
type Purger interface {
	PurgeExpired(now time.Time) (int64, error)
}

// logCleanup logs scheduler events with timestamp
func logCleanup(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RunCleanup runs every purger once
func RunCleanup(purgers map[string]Purger) {
	now := time.Now()
	for name, p := range purgers {
		removed, err := p.PurgeExpired(now)
		if err != nil {
			logCleanup("Error purging " + name + ": " + err.Error())
			continue
		}
		if removed > 0 {
			log.Printf("[CLEANUP-SCHEDULER] purged %d expired %s", removed, name)
		}
	}
}

// StartCleanupScheduler purges expired drafts and pending registrations on schedule
func StartCleanupScheduler(schedule string, purgers map[string]Purger) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(schedule, func() {
		RunCleanup(purgers)
	}); err != nil {
		return nil, err
	}

	c.Start()
	logCleanup("Started with schedule " + schedule)
	return c, nil
}
