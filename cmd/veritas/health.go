// cmd/veritas/health.go
package main

import (
	"sync"
	"time"
)

// HealthMonitor tracks system health across periodic checks
type HealthMonitor struct {
	mutex           sync.Mutex
	lastCheck       time.Time
	healthyStreak   int
	unhealthyStreak int
	warnings        []string
}

// NewHealthMonitor creates a new health monitor
func NewHealthMonitor() *HealthMonitor {
	return &HealthMonitor{}
}

// PerformChecks runs health checks; scheduled by the cron manager
func (hm *HealthMonitor) PerformChecks() {
	hm.mutex.Lock()
	defer hm.mutex.Unlock()

	hm.lastCheck = time.Now()
	hm.warnings = hm.warnings[:0]

	metrics := collectMetrics()

	if metrics.MemoryUsageMB > 1000 {
		hm.warn("High memory usage detected")
	}
	if metrics.GoroutineCount > 500 {
		hm.warn("High goroutine count detected")
	}

	if len(hm.warnings) == 0 {
		hm.healthyStreak++
		hm.unhealthyStreak = 0
	} else {
		hm.healthyStreak = 0
		hm.unhealthyStreak++
	}

	if hm.unhealthyStreak >= 5 {
		Logger().Error("System has been unhealthy for %d consecutive checks", hm.unhealthyStreak)
	}
}

func (hm *HealthMonitor) warn(message string) {
	hm.warnings = append(hm.warnings, message)
	Logger().Warning("%s", message)
}

// Status summarizes current health for the status endpoint
func (hm *HealthMonitor) Status() map[string]interface{} {
	hm.mutex.Lock()
	defer hm.mutex.Unlock()

	state := GetState()

	status := "healthy"
	if len(hm.warnings) > 0 {
		status = "warning"
	}

	return map[string]interface{}{
		"status":          status,
		"version":         state.Version,
		"uptime":          FormatDuration(time.Since(state.StartupTime)),
		"lastCheck":       hm.lastCheck,
		"healthyStreak":   hm.healthyStreak,
		"unhealthyStreak": hm.unhealthyStreak,
		"warnings":        append([]string(nil), hm.warnings...),
		"verifyCount":     state.VerifyCount,
		"lastError":       state.LastError,
	}
}
