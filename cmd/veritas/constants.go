package main

import "time"

const VERSION = "1.0.0"

// External service endpoints
const (
	factCheckEndpoint     = "https://factchecktools.googleapis.com/v1alpha1/claims:search"
	newsAPIEndpoint       = "https://newsapi.org/v2/everything"
	googleNewsRSSEndpoint = "https://news.google.com/rss/search"
)

// Timeouts for outbound calls
const (
	searchTimeout = 10 * time.Second
	modelTimeout  = 30 * time.Second
	enrichTimeout = 5 * time.Second
)

const (
	defaultModel        = "gpt-3.5-turbo"
	defaultSourcesPath  = "config/sources.yml"
	defaultStatePath    = "data/state.json"
	defaultLogPath      = "data/logs/veritas.log"
	defaultAPIPort      = 8080
	defaultCacheTTL     = time.Hour
	maxEvidenceURLs     = 3
	newsPageSize        = 5
	defaultDomainKey    = "General"
	statusUnverified    = "Unverified"
	explanationFallback = "No explanation provided"
)

// Default confidence policy. These are hand-tuned priors reflecting the
// trust ordering of the pipeline stages, not statistical estimates.
const (
	defaultFactCheckConfidence = 0.95
	defaultDegradedConfidence  = 0.40
	defaultFallbackConfidence  = 0.30
)
