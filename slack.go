package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

const threadSearchLimit = 200

// slackAPI is the slice of *slack.Client the bot needs; tests substitute a
// fake.
type slackAPI interface {
	GetConversationHistory(params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

// FindWeeklyThread scans recent channel history for the current weekly
// discussion thread: the newest parent message whose text contains pattern,
// matched case-insensitively. Returns an empty timestamp when there is none.
func FindWeeklyThread(api slackAPI, channelID, pattern string, lookback time.Duration, now time.Time) (string, error) {
	resp, err := api.GetConversationHistory(&slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Oldest:    slackTimestamp(now.Add(-lookback)),
		Limit:     threadSearchLimit,
	})
	if err != nil {
		return "", fmt.Errorf("fetching channel history: %w", err)
	}

	for _, msg := range resp.Messages {
		if isThreadParent(msg) && matchesThreadPattern(msg.Text, pattern) {
			return msg.Timestamp, nil
		}
	}
	return "", nil
}

// isThreadParent reports whether a message can anchor a thread: replies
// carry a thread timestamp different from their own.
func isThreadParent(msg slack.Message) bool {
	return msg.ThreadTimestamp == "" || msg.ThreadTimestamp == msg.Timestamp
}

func matchesThreadPattern(text, pattern string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(pattern))
}

func slackTimestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10) + ".000000"
}

// PostReport publishes the rendered blocks. With a thread timestamp the
// update goes out as a reply that is also broadcast to the channel.
func PostReport(api slackAPI, channelID, threadTS string, blocks []slack.Block) error {
	opts := []slack.MsgOption{
		slack.MsgOptionText("Weekly update", false),
		slack.MsgOptionBlocks(blocks...),
	}
	if threadTS != "" {
		opts = append(opts, slack.MsgOptionTS(threadTS), slack.MsgOptionBroadcast())
	}
	if _, _, err := api.PostMessage(channelID, opts...); err != nil {
		return fmt.Errorf("posting weekly update: %w", err)
	}
	return nil
}
