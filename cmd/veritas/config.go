// cmd/veritas/config.go
package main

import "fmt"

// Config holds application configuration
type Config struct {
	Version string

	// Service credentials. Any of these may be empty; an empty credential
	// disables the corresponding pipeline stage instead of failing startup.
	OpenAIAPIKey    string
	FactCheckAPIKey string
	NewsAPIKey      string

	Model string

	// API server
	EnableAPI         bool
	APIPort           int
	RequestsPerMinute int

	// Discord bot
	EnableBot bool
	BotToken  string
	AppID     string
	GuildID   string

	// Behavior
	EnableSourcePreview bool
	EnableNewsRSS       bool
	CacheTTLMinutes     int

	// Paths
	SourcesPath string
	StatePath   string
	LogPath     string
	LogLevel    string

	Policy Policy
}

// Policy holds the fixed per-stage confidence priors. Values are
// configurable but default to the tuning the pipeline shipped with.
type Policy struct {
	FactCheckConfidence float64 `yaml:"factcheck_confidence"`
	DegradedConfidence  float64 `yaml:"degraded_confidence"`
	FallbackConfidence  float64 `yaml:"fallback_confidence"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Version: GetEnvString("VERITAS_VERSION", VERSION),

		OpenAIAPIKey:    FirstEnv("OPENAI_API_KEY", "OPENAI_KEY", "AI_API_KEY"),
		FactCheckAPIKey: FirstEnv("FACTCHECK_API_KEY", "FACT_CHECK_KEY", "FACTCHECK"),
		NewsAPIKey:      FirstEnv("NEWSAPI_KEY", "NEWS_API_KEY", "NEWSAPI"),

		Model: GetEnvString("OPENAI_MODEL", defaultModel),

		EnableAPI:         GetEnvBool("ENABLE_API", true),
		APIPort:           GetEnvInt("API_PORT", defaultAPIPort),
		RequestsPerMinute: GetEnvInt("REQUESTS_PER_MINUTE", 30),

		EnableBot: GetEnvBool("ENABLE_BOT", false),
		BotToken:  GetEnvString("BOT_TOKEN", ""),
		AppID:     GetEnvString("APP_ID", ""),
		GuildID:   GetEnvString("GUILD_ID", ""),

		EnableSourcePreview: GetEnvBool("ENABLE_SOURCE_PREVIEW", false),
		EnableNewsRSS:       GetEnvBool("ENABLE_NEWS_RSS", true),
		CacheTTLMinutes:     GetEnvInt("CACHE_TTL_MINUTES", 60),

		SourcesPath: GetEnvString("SOURCES_PATH", defaultSourcesPath),
		StatePath:   GetEnvString("STATE_PATH", defaultStatePath),
		LogPath:     GetEnvString("LOG_PATH", defaultLogPath),
		LogLevel:    GetEnvString("LOG_LEVEL", "INFO"),

		Policy: Policy{
			FactCheckConfidence: GetEnvFloat("FACTCHECK_CONFIDENCE", defaultFactCheckConfidence),
			DegradedConfidence:  GetEnvFloat("DEGRADED_CONFIDENCE", defaultDegradedConfidence),
			FallbackConfidence:  GetEnvFloat("FALLBACK_CONFIDENCE", defaultFallbackConfidence),
		},
	}
}

// Validate checks configuration consistency. Missing service credentials
// are reported by the caller as warnings, not failures.
func (c *Config) Validate() error {
	if c.EnableBot {
		if c.BotToken == "" {
			return NewConfigError(ErrConfigValidation, "BOT_TOKEN is required when ENABLE_BOT is set", nil)
		}
		if c.AppID == "" {
			return NewConfigError(ErrConfigValidation, "APP_ID is required when ENABLE_BOT is set", nil)
		}
	}
	if c.EnableAPI && c.APIPort <= 0 {
		return NewConfigError(ErrConfigValidation, fmt.Sprintf("invalid API_PORT %d", c.APIPort), nil)
	}
	return nil
}

// MissingCredentials lists the disabled stages for startup logging
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.FactCheckAPIKey == "" {
		missing = append(missing, "fact-check search (FACTCHECK_API_KEY)")
	}
	if c.NewsAPIKey == "" {
		missing = append(missing, "news search (NEWSAPI_KEY)")
	}
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "model generation (OPENAI_API_KEY)")
	}
	return missing
}
