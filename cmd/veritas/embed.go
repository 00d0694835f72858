// cmd/veritas/embed.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed colors keyed by verification status
const (
	colorTrue       = 0x4CAF50
	colorFalse      = 0xF44336
	colorMisleading = 0xFF9800
	colorUnverified = 0x9E9E9E
)

// statusColor picks an embed color for a status string
func statusColor(status string) int {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "true":
		return colorTrue
	case "false":
		return colorFalse
	case "misleading":
		return colorMisleading
	default:
		return colorUnverified
	}
}

// buildResultEmbed renders a verification result as a Discord embed
func buildResultEmbed(result *VerificationResult, previews []SourcePreview) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       truncate(result.Claim, 250),
		Description: truncate(result.Explanation, 2000),
		Color:       statusColor(result.Status),
		Timestamp:   result.CheckedAt.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Status",
				Value:  result.Status,
				Inline: true,
			},
			{
				Name:   "Confidence",
				Value:  fmt.Sprintf("%.2f%%", result.Confidence*100),
				Inline: true,
			},
			{
				Name:   "Domain",
				Value:  result.Domain,
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Method: %s", result.Method),
		},
	}

	if len(result.Sources) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Sources",
			Value: formatSources(result.Sources, previews),
		})
	}

	return embed
}

// formatSources renders source lines, linking titles when previews exist
func formatSources(sources []string, previews []SourcePreview) string {
	byURL := make(map[string]SourcePreview, len(previews))
	for _, p := range previews {
		byURL[p.URL] = p
	}

	var lines []string
	for _, src := range sources {
		if p, ok := byURL[src]; ok && p.Title != "" {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", p.Title, src))
			continue
		}
		if strings.HasPrefix(src, "http") {
			lines = append(lines, fmt.Sprintf("- <%s>", src))
			continue
		}
		lines = append(lines, "- "+src)
	}

	return truncate(strings.Join(lines, "\n"), 1024)
}
