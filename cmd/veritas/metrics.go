// cmd/veritas/metrics.go
package main

import (
	"runtime"
	"sync"
	"time"
)

// Metrics holds system and application metrics
type Metrics struct {
	Timestamp      time.Time        `json:"timestamp"`
	MemoryUsageMB  float64          `json:"memory_usage_mb"`
	GoroutineCount int              `json:"goroutine_count"`
	UptimeHours    float64          `json:"uptime_hours"`
	VerifyCount    int64            `json:"verify_count"`
	StageCounts    map[string]int64 `json:"stage_counts"`
	CacheSize      int              `json:"cache_size"`
	CacheHitRate   float64          `json:"cache_hit_rate"`
}

// metricsMaxAge bounds how stale a served snapshot may be
const metricsMaxAge = time.Minute

var (
	metricsMutex sync.RWMutex
	lastMetrics  *Metrics
	metricsCache *Cache
)

// SetMetricsCache registers the result cache for metrics collection
func SetMetricsCache(c *Cache) {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	metricsCache = c
}

// collectMetrics gathers system and application metrics
func collectMetrics() *Metrics {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	state := GetState()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	metrics := &Metrics{
		Timestamp:      time.Now(),
		MemoryUsageMB:  float64(memStats.Alloc) / 1024 / 1024,
		GoroutineCount: runtime.NumGoroutine(),
		UptimeHours:    time.Since(state.StartupTime).Hours(),
		VerifyCount:    state.VerifyCount,
		StageCounts:    state.StageCounts,
	}

	if metricsCache != nil {
		metrics.CacheSize = metricsCache.Len()
		metrics.CacheHitRate = metricsCache.HitRate()
	}

	lastMetrics = metrics
	return metrics
}

// GetLastMetrics returns the most recently collected metrics, refreshing
// the snapshot when it is missing or older than metricsMaxAge
func GetLastMetrics() *Metrics {
	metricsMutex.RLock()
	cached := lastMetrics
	metricsMutex.RUnlock()

	if cached == nil || time.Since(cached.Timestamp) > metricsMaxAge {
		return collectMetrics()
	}
	return cached
}
