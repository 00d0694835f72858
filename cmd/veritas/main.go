package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Veritas v" + VERSION + " starting up...")

	// .env is optional; real deployments export variables directly
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
		}
	}

	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := InitLogger(cfg.LogPath, ParseLogLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", err)
	}
	defer Logger().Close()

	for _, missing := range cfg.MissingCredentials() {
		Logger().Warning("Stage disabled, no credential: %s", missing)
	}

	if err := InitState(cfg.StatePath); err != nil {
		Logger().Warning("State persistence unavailable: %v", err)
	}

	table, err := LoadTrustedSources(cfg.SourcesPath, &cfg.Policy)
	if err != nil {
		Logger().Warning("Using built-in trusted sources: %v", err)
	}
	Logger().Info("Trusted-source table loaded with %d domains", len(table.Domains()))

	cache := NewCache(time.Duration(cfg.CacheTTLMinutes)*time.Minute, 1000)
	SetMetricsCache(cache)

	verifier := NewVerifier(cfg, table, cache)
	health := NewHealthMonitor()

	if cfg.EnableAPI {
		server := NewAPIServer(cfg, verifier, health)
		server.Start(cfg.APIPort)
	}

	var bot *Bot
	if cfg.EnableBot {
		bot, err = NewBot(cfg, verifier)
		if err != nil {
			Logger().Error("Failed to create Discord bot: %v", err)
			os.Exit(1)
		}
		if err := bot.Start(); err != nil {
			Logger().Error("Failed to start Discord bot: %v", err)
			os.Exit(1)
		}
		defer bot.Stop()
	}

	scheduler := NewScheduler(cache, health)
	if err := scheduler.Start(); err != nil {
		Logger().Warning("Scheduler unavailable: %v", err)
	}
	defer scheduler.Stop()

	Logger().Info("Veritas is running. Press CTRL-C to exit.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	Logger().Info("Shutting down...")
	if err := SaveState(); err != nil {
		Logger().Warning("Failed to save state on shutdown: %v", err)
	}
}
