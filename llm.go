package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

const highlightsSystemPrompt = `You summarize a developer's weekly issue report for their team's Slack channel.
Write 1-3 plain sentences covering what was finished and what is in flight.
Refer to issues by their identifiers. No greetings, no markdown headings, no bullet lists.`

// BuildHighlights asks the Anthropic API for a short intro paragraph over
// the report. Callers treat errors as a reason to post without highlights.
func BuildHighlights(cfg Config, report Report) (string, error) {
	model := cfg.LLMModel
	if model == "" {
		model = defaultAnthropicModel
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))

	message, err := client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 512,
		System: []anthropic.TextBlockParam{
			{Text: highlightsSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildHighlightsPrompt(report))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("llm highlights size=%d tokens_in=%d tokens_out=%d",
				len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens)
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("no text content in Anthropic response")
}

func buildHighlightsPrompt(report Report) string {
	var b strings.Builder
	for _, bucket := range report {
		fmt.Fprintf(&b, "Week of %s:\n", bucket.Label)
		for _, issue := range bucket.Issues {
			status := issue.StateName
			if status == "" {
				status = "unknown state"
			}
			fmt.Fprintf(&b, "- %s %s (%s)\n", issue.Identifier, issue.Title, status)
		}
		b.WriteString("\n")
	}
	return b.String()
}
