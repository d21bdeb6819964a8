package main

import "github.com/slack-go/slack"

// RenderBlocks turns a report into Slack blocks: a header per bucket
// followed by one ordered rich-text list. Numbering restarts per bucket.
func RenderBlocks(cfg Config, report Report) []slack.Block {
	var blocks []slack.Block
	for _, bucket := range report {
		blocks = append(blocks, slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Week of "+bucket.Label, false, false),
		))
		if len(bucket.Issues) == 0 {
			continue
		}
		items := make([]slack.RichTextElement, 0, len(bucket.Issues))
		for _, issue := range bucket.Issues {
			items = append(items, renderIssueLine(cfg, issue))
		}
		blocks = append(blocks, slack.NewRichTextBlock("",
			slack.NewRichTextList(slack.RTEListOrdered, 0, items...),
		))
	}
	return blocks
}

func renderIssueLine(cfg Config, issue Issue) *slack.RichTextSection {
	var parts []slack.RichTextSectionElement
	if issue.StateSymbol != "" {
		parts = append(parts,
			slack.NewRichTextSectionEmojiElement(issue.StateSymbol, 0, nil),
			slack.NewRichTextSectionTextElement(" ", nil),
		)
	}
	parts = append(parts,
		slack.NewRichTextSectionLinkElement(cfg.IssueBaseURL+issue.Identifier, issue.Identifier, nil),
		slack.NewRichTextSectionTextElement(" - "+issue.Title, nil),
	)
	return slack.NewRichTextSection(parts...)
}
