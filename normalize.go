package main

import (
	"fmt"
	"time"
)

const unknownStatePosition = 100

// statePositions ranks workflow states for display, lower first.
var statePositions = map[string]int{
	"Done":        0,
	"In Review":   1,
	"In Progress": 2,
	"Pending":     3,
	"Todo":        4,
	"Backlog":     5,
	"Triage":      6,
	"Canceled":    8,
	"Duplicate":   9,
}

var stateSymbols = map[string]string{
	"Done":        "white_check_mark",
	"In Progress": "hourglass_flowing_sand",
	"Pending":     "no_entry",
}

func StatePosition(stateName string) int {
	if pos, ok := statePositions[stateName]; ok {
		return pos
	}
	return unknownStatePosition
}

func StateSymbol(stateName string) string {
	return stateSymbols[stateName]
}

// NormalizeIssue converts one raw record. A missing priority is a shape
// error in the source data; malformed timestamps are kept as zero instead.
func NormalizeIssue(raw RawIssue) (Issue, error) {
	if raw.Priority == nil {
		return Issue{}, fmt.Errorf("issue %s has no priority", raw.Identifier)
	}

	issue := Issue{
		Identifier:  raw.Identifier,
		Title:       raw.Title,
		URL:         raw.URL,
		Priority:    int(*raw.Priority),
		CreatedAt:   parseTimestamp(raw.CreatedAt),
		CompletedAt: parseTimestamp(raw.CompletedAt),
	}
	if raw.Estimate != nil {
		estimate := int(*raw.Estimate)
		issue.Estimate = &estimate
	}
	if raw.State != nil {
		issue.StateName = raw.State.Name
	}
	issue.StatePosition = StatePosition(issue.StateName)
	issue.StateSymbol = StateSymbol(issue.StateName)
	return issue, nil
}

func NormalizeIssues(raws []RawIssue) ([]Issue, error) {
	issues := make([]Issue, 0, len(raws))
	for _, raw := range raws {
		issue, err := NormalizeIssue(raw)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
