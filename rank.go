package main

import "sort"

type issueCompare func(a, b Issue) int

// rankKeys is the tie-break chain: each key is tried in order and the next
// one only applies when the previous returned 0.
var rankKeys = []issueCompare{
	compareStatePosition,
	compareEstimate,
	comparePriority,
	compareCompletedAt,
	compareCreatedAt,
}

func CompareIssues(a, b Issue) int {
	for _, cmp := range rankKeys {
		if c := cmp(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// SortIssues orders a bucket in place. The sort is stable so full-key ties
// keep their input order.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return CompareIssues(issues[i], issues[j]) < 0
	})
}

func compareStatePosition(a, b Issue) int {
	switch {
	case a.StatePosition < b.StatePosition:
		return -1
	case a.StatePosition > b.StatePosition:
		return 1
	}
	return 0
}

// compareEstimate sorts larger estimates first. A nil estimate sorts below
// every concrete value, so under the descending rule it lands last.
func compareEstimate(a, b Issue) int {
	switch {
	case a.Estimate == nil && b.Estimate == nil:
		return 0
	case a.Estimate == nil:
		return 1
	case b.Estimate == nil:
		return -1
	case *a.Estimate > *b.Estimate:
		return -1
	case *a.Estimate < *b.Estimate:
		return 1
	}
	return 0
}

func comparePriority(a, b Issue) int {
	switch {
	case a.Priority < b.Priority:
		return -1
	case a.Priority > b.Priority:
		return 1
	}
	return 0
}

// compareCompletedAt is ascending, with unfinished issues (zero CompletedAt)
// after finished ones.
func compareCompletedAt(a, b Issue) int {
	switch {
	case a.CompletedAt.IsZero() && b.CompletedAt.IsZero():
		return 0
	case a.CompletedAt.IsZero():
		return 1
	case b.CompletedAt.IsZero():
		return -1
	case a.CompletedAt.Before(b.CompletedAt):
		return -1
	case a.CompletedAt.After(b.CompletedAt):
		return 1
	}
	return 0
}

func compareCreatedAt(a, b Issue) int {
	switch {
	case a.CreatedAt.Before(b.CreatedAt):
		return -1
	case a.CreatedAt.After(b.CreatedAt):
		return 1
	}
	return 0
}
