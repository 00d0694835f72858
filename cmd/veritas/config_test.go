package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCredentialAliases(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_KEY", "legacy-openai")
	t.Setenv("FACT_CHECK_KEY", "legacy-fc")
	t.Setenv("NEWSAPI_KEY", "primary-news")
	t.Setenv("NEWS_API_KEY", "ignored-alias")

	cfg := LoadConfig()

	assert.Equal(t, "legacy-openai", cfg.OpenAIAPIKey)
	assert.Equal(t, "legacy-fc", cfg.FactCheckAPIKey)
	assert.Equal(t, "primary-news", cfg.NewsAPIKey)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, defaultModel, cfg.Model)
	assert.True(t, cfg.EnableAPI)
	assert.False(t, cfg.EnableBot)
	assert.Equal(t, defaultFactCheckConfidence, cfg.Policy.FactCheckConfidence)
	assert.Equal(t, defaultDegradedConfidence, cfg.Policy.DegradedConfidence)
	assert.Equal(t, defaultFallbackConfidence, cfg.Policy.FallbackConfidence)
}

func TestValidateBotRequiresToken(t *testing.T) {
	cfg := &Config{EnableBot: true, EnableAPI: false}

	err := cfg.Validate()

	require.Error(t, err)

	cfg.BotToken = "token"
	cfg.AppID = "app"
	assert.NoError(t, cfg.Validate())
}

func TestValidateAPIPort(t *testing.T) {
	cfg := &Config{EnableAPI: true, APIPort: 0}
	require.Error(t, cfg.Validate())

	cfg.APIPort = 8080
	assert.NoError(t, cfg.Validate())
}

func TestMissingCredentials(t *testing.T) {
	cfg := &Config{}
	assert.Len(t, cfg.MissingCredentials(), 3)

	cfg.OpenAIAPIKey = "set"
	cfg.FactCheckAPIKey = "set"
	cfg.NewsAPIKey = "set"
	assert.Empty(t, cfg.MissingCredentials())
}
