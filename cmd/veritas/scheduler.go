// cmd/veritas/scheduler.go
package main

import (
	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic maintenance jobs
type Scheduler struct {
	cron   *cron.Cron
	cache  *Cache
	health *HealthMonitor
}

// NewScheduler creates the cron manager with the standard job set
func NewScheduler(cache *Cache, health *HealthMonitor) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		cache:  cache,
		health: health,
	}
}

// Start registers and starts the maintenance jobs
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every 10m", func() {
		if removed := s.cache.Sweep(); removed > 0 {
			Logger().Debug("Cache sweep removed %d expired entries", removed)
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("@every 5m", s.health.PerformChecks); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("@hourly", func() {
		if err := SaveState(); err != nil {
			Logger().Warning("Failed to save state snapshot: %v", err)
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("@daily", func() {
		if err := Logger().CleanOldLogs(); err != nil {
			Logger().Warning("Log cleanup failed: %v", err)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron manager
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
