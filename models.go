package main

import "time"

// RawIssue is one node of the Linear assignedIssues response. Optional
// fields stay pointers so an absent value is distinguishable from a zero.
type RawIssue struct {
	Identifier  string    `json:"identifier"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Estimate    *float64  `json:"estimate"`
	Priority    *float64  `json:"priority"`
	CreatedAt   string    `json:"createdAt"`
	CompletedAt string    `json:"completedAt"`
	State       *RawState `json:"state"`
}

type RawState struct {
	Name string `json:"name"`
}

// Issue is the normalized form the pipeline works with. Absent timestamps
// are the zero time.Time, an absent estimate is nil.
type Issue struct {
	Identifier    string
	Title         string
	URL           string
	Estimate      *int
	Priority      int
	CreatedAt     time.Time
	CompletedAt   time.Time
	StateName     string
	StatePosition int
	StateSymbol   string // Slack emoji name, empty when the state has none
}

// WeekBucket groups the issues of one reporting week, labeled by the
// YYYY-MM-DD date of its Monday. Issues carry the ranker's order.
type WeekBucket struct {
	Label  string
	Issues []Issue
}

// Report is the pipeline's final artifact: at most two buckets (last week,
// this week), empty buckets omitted.
type Report []WeekBucket

// WeekBoundaries returns Monday 00:00:00 of the previous calendar week and
// Monday 00:00:00 of the current calendar week relative to now.
func WeekBoundaries(now time.Time) (lastMonday, thisMonday time.Time) {
	weekday := now.Weekday()
	if weekday == time.Sunday {
		weekday = 7
	}
	daysFromMonday := int(weekday) - int(time.Monday)
	thisMonday = time.Date(now.Year(), now.Month(), now.Day()-daysFromMonday, 0, 0, 0, 0, now.Location())
	lastMonday = thisMonday.AddDate(0, 0, -7)
	return lastMonday, thisMonday
}
