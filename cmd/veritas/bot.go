// cmd/veritas/bot.go
package main

import (
	"github.com/bwmarrin/discordgo"
)

// Bot is the Discord front end for the verification pipeline
type Bot struct {
	session  *discordgo.Session
	verifier *Verifier
	enricher *SourceEnricher
	appID    string
	guildID  string
	preview  bool
}

// NewBot creates the Discord session and wires handlers
func NewBot(cfg *Config, verifier *Verifier) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		session:  session,
		verifier: verifier,
		enricher: NewSourceEnricher(),
		appID:    cfg.AppID,
		guildID:  cfg.GuildID,
		preview:  cfg.EnableSourcePreview,
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start connects to Discord and registers the slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return err
	}

	if err := b.registerCommands(); err != nil {
		b.session.Close()
		return err
	}

	Logger().Info("Connected to Discord")
	return nil
}

// Stop disconnects from Discord
func (b *Bot) Stop() {
	if b.session != nil {
		b.session.Close()
	}
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	Logger().Info("Discord session ready as %s", r.User.Username)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "verify":
		b.handleVerifyCommand(s, i)
	case "domains":
		b.handleDomainsCommand(s, i)
	}
}
