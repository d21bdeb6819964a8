package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/slack-go/slack"
)

type RunOptions struct {
	DryRun bool
	// Now is the reference instant for week classification; the zero value
	// means the wall clock.
	Now time.Time
}

// Test seams, swapped out in unit tests.
var (
	fetchAssignedIssuesFn = FetchAssignedIssues
	buildHighlightsFn     = BuildHighlights
)

// Run executes one fetch-classify-render-post cycle. With DryRun set it
// prints the rendered payload and returns before any Slack call.
func Run(cfg Config, api slackAPI, opts RunOptions) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	raws, err := fetchAssignedIssuesFn(cfg)
	if err != nil {
		return fmt.Errorf("fetching assigned issues: %w", err)
	}

	issues, err := NormalizeIssues(raws)
	if err != nil {
		return err
	}

	report := BuildReport(issues, now)
	log.Printf("report built buckets=%d issues=%d", len(report), reportIssueCount(report))

	blocks := RenderBlocks(cfg, report)
	if cfg.AnthropicAPIKey != "" && len(report) > 0 {
		highlights, err := buildHighlightsFn(cfg, report)
		if err != nil {
			log.Printf("highlights skipped: %v", err)
		} else if highlights != "" {
			intro := slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, highlights, false, false), nil, nil)
			blocks = append([]slack.Block{intro}, blocks...)
		}
	}

	if opts.DryRun {
		payload, err := json.MarshalIndent(map[string]any{
			"channel": cfg.SlackChannelID,
			"blocks":  blocks,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding payload: %w", err)
		}
		fmt.Println(string(payload))
		return nil
	}

	if len(report) == 0 {
		log.Println("Nothing to report for either week, skipping post")
		return nil
	}

	threadTS, err := FindWeeklyThread(api, cfg.SlackChannelID, cfg.ThreadPattern,
		time.Duration(cfg.ThreadLookbackDays)*24*time.Hour, now)
	if err != nil {
		return err
	}
	if threadTS != "" {
		log.Printf("weekly thread found ts=%s", threadTS)
	} else {
		log.Println("No weekly thread found, posting to channel")
	}

	return PostReport(api, cfg.SlackChannelID, threadTS, blocks)
}

func reportIssueCount(report Report) int {
	total := 0
	for _, bucket := range report {
		total += len(bucket.Issues)
	}
	return total
}
