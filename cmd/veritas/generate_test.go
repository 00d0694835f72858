package main

import (
	"context"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPureObject(t *testing.T) {
	parsed, ok := extractJSON(`{"status": "True", "confidence": 0.9}`)
	require.True(t, ok)
	assert.Equal(t, "True", parsed["status"])
	assert.Equal(t, 0.9, parsed["confidence"])
}

func TestExtractJSONSurroundedByProse(t *testing.T) {
	text := `Sure! Based on the evidence, here is my assessment:
{"status": "Misleading", "explanation": "partially accurate"}
Let me know if you need anything else.`

	parsed, ok := extractJSON(text)
	require.True(t, ok)
	assert.Equal(t, "Misleading", parsed["status"])
}

func TestExtractJSONInCodeFence(t *testing.T) {
	text := "```json\n{\"status\": \"False\",\n\"confidence\": 0.75}\n```"

	parsed, ok := extractJSON(text)
	require.True(t, ok)
	assert.Equal(t, "False", parsed["status"])
	assert.Equal(t, 0.75, parsed["confidence"])
}

func TestExtractJSONNoBraceBlock(t *testing.T) {
	_, ok := extractJSON("the model refused to answer in JSON")
	assert.False(t, ok)
}

func TestExtractJSONRejectsTopLevelArray(t *testing.T) {
	_, ok := extractJSON(`[1, 2, 3]`)
	assert.False(t, ok)
}

func TestExtractJSONRejectsScalarAndEmpty(t *testing.T) {
	_, ok := extractJSON(`"just a string"`)
	assert.False(t, ok)

	_, ok = extractJSON("")
	assert.False(t, ok)
}

func TestExtractResponseTextPlainContent(t *testing.T) {
	resp := openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "hello"}},
		},
	}
	assert.Equal(t, "hello", extractResponseText(resp))
}

func TestExtractResponseTextMultiContent(t *testing.T) {
	resp := openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: "part one"},
					{Type: openai.ChatMessagePartTypeImageURL},
					{Type: openai.ChatMessagePartTypeText, Text: "part two"},
				},
			}},
		},
	}
	assert.Equal(t, "part one\npart two", extractResponseText(resp))
}

func TestExtractResponseTextNoChoices(t *testing.T) {
	assert.Equal(t, "", extractResponseText(openai.ChatCompletionResponse{}))
}

func TestGeneratorWithoutCredential(t *testing.T) {
	gen := NewOpenAIGenerator("", defaultModel)

	text, err := gen.Generate(context.Background(), "prompt")

	assert.Empty(t, text)
	require.Error(t, err)
	assert.True(t, IsStageDisabled(err))
}
