// cmd/veritas/generate.go
package main

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Generator produces model text for a prompt. The orchestrator depends on
// this narrow interface so tests can substitute a canned implementation.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAIGenerator invokes a chat-completion model with a bounded timeout
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a generator. With an empty credential the
// generator stays unconfigured and reports that on every call without
// touching the network.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	g := &OpenAIGenerator{model: model}
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

// Generate invokes the model and extracts its textual payload
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", NewModelError(ErrModelNotConfigured, "model credential not configured", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, modelTimeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an AI misinformation checker.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.2,
		},
	)
	if err != nil {
		return "", NewModelError(ErrModelRequest, "model request failed", err)
	}

	text := extractResponseText(resp)
	if text == "" {
		return "", NewModelError(ErrModelEmpty, "model returned no textual content", nil)
	}
	return text, nil
}

// extractResponseText pulls the textual payload out of a chat-completion
// response. Response shapes vary by provider and API version: content may
// be a plain string or a list of typed parts, so each shape gets checked
// in turn rather than assuming one.
func extractResponseText(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}

	msg := resp.Choices[0].Message
	if strings.TrimSpace(msg.Content) != "" {
		return msg.Content
	}

	if len(msg.MultiContent) > 0 {
		var pieces []string
		for _, part := range msg.MultiContent {
			if part.Type == openai.ChatMessagePartTypeText && part.Text != "" {
				pieces = append(pieces, part.Text)
			}
		}
		if len(pieces) > 0 {
			return strings.Join(pieces, "\n")
		}
	}

	return ""
}

var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON locates a JSON object inside model output and parses it.
// Models often wrap JSON in prose or code fences, so after a direct parse
// fails the first greedy brace-delimited block is tried. Anything that is
// not a JSON object at the top level is rejected.
func extractJSON(text string) (map[string]interface{}, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	if parsed, ok := tryParseObject(text); ok {
		return parsed, true
	}

	if snippet := jsonBlockPattern.FindString(text); snippet != "" {
		if parsed, ok := tryParseObject(snippet); ok {
			return parsed, true
		}
	}

	return nil, false
}

func tryParseObject(text string) (map[string]interface{}, bool) {
	var value interface{}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, false
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, false
	}
	return obj, true
}
