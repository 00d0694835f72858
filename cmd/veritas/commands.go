// cmd/veritas/commands.go
package main

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers the bot's slash commands
func (b *Bot) registerCommands() error {
	domains := b.verifier.Domains()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domains))
	for _, domain := range domains {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  domain,
			Value: domain,
		})
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "verify",
			Description: "Verify whether a claim is true, false, misleading, or unverified",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "claim",
					Description: "The claim to verify",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "domain",
					Description: "Topic domain of the claim",
					Required:    false,
					Choices:     choices,
				},
			},
		},
		{
			Name:        "domains",
			Description: "List the recognized verification domains",
		},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.appID, b.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

// handleVerifyCommand runs the pipeline and replies with an embed.
// Verification takes several network round trips, so the response is
// deferred first.
func (b *Bot) handleVerifyCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var claim, domain string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "claim":
			claim = opt.StringValue()
		case "domain":
			domain = opt.StringValue()
		}
	}

	claim = strings.TrimSpace(claim)
	if claim == "" {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Please enter a claim before verifying.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		Logger().Warning("Failed to defer interaction: %v", err)
		return
	}

	ctx := context.Background()
	result := b.verifier.Verify(ctx, claim, domain)

	var previews []SourcePreview
	if b.preview {
		previews = b.enricher.Enrich(ctx, result.Sources)
	}

	embed := buildResultEmbed(result, previews)
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}); err != nil {
		Logger().Warning("Failed to send verification result: %v", err)
	}
}

// handleDomainsCommand lists the recognized domains
func (b *Bot) handleDomainsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Recognized domains: " + strings.Join(b.verifier.Domains(), ", "),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
