package main

import "time"

// activeStates are the workflow states that belong in the this-week bucket.
var activeStates = map[string]bool{
	"Done":        true,
	"In Review":   true,
	"In Progress": true,
	"Pending":     true,
	"Todo":        true,
}

// BuildReport classifies issues into last-week and this-week buckets around
// the Monday boundaries derived from now, and ranks each bucket. Buckets
// that end up empty are omitted.
func BuildReport(issues []Issue, now time.Time) Report {
	lastMonday, thisMonday := WeekBoundaries(now)
	lastSunday := thisMonday.Add(-time.Second)

	var lastWeek, thisWeek []Issue
	for _, issue := range issues {
		if completedBetween(issue, lastMonday, lastSunday) {
			lastWeek = append(lastWeek, issue)
		}
		if inThisWeek(issue, thisMonday) {
			thisWeek = append(thisWeek, issue)
		}
	}

	var report Report
	if len(lastWeek) > 0 {
		SortIssues(lastWeek)
		report = append(report, WeekBucket{Label: lastMonday.Format("2006-01-02"), Issues: lastWeek})
	}
	if len(thisWeek) > 0 {
		SortIssues(thisWeek)
		report = append(report, WeekBucket{Label: thisMonday.Format("2006-01-02"), Issues: thisWeek})
	}
	return report
}

func completedBetween(issue Issue, from, to time.Time) bool {
	if issue.CompletedAt.IsZero() {
		return false
	}
	return !issue.CompletedAt.Before(from) && !issue.CompletedAt.After(to)
}

func inThisWeek(issue Issue, thisMonday time.Time) bool {
	if !activeStates[issue.StateName] {
		return false
	}
	// A Done issue only counts toward this week when it was completed this
	// week; otherwise it already shows up in the last-week bucket.
	if issue.StateName == "Done" {
		return !issue.CompletedAt.IsZero() && !issue.CompletedAt.Before(thisMonday)
	}
	return true
}
