package main

import (
	"reflect"
	"testing"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestNormalizeIssueFullRecord(t *testing.T) {
	raw := RawIssue{
		Identifier:  "ENG-42",
		Title:       "Ship the thing",
		URL:         "https://linear.app/team/issue/ENG-42",
		Estimate:    float64Ptr(3),
		Priority:    float64Ptr(2),
		CreatedAt:   "2026-08-20T10:00:00.000Z",
		CompletedAt: "2026-08-21T16:00:00.000Z",
		State:       &RawState{Name: "Done"},
	}

	issue, err := NormalizeIssue(raw)
	if err != nil {
		t.Fatalf("NormalizeIssue failed: %v", err)
	}
	if issue.Estimate == nil || *issue.Estimate != 3 {
		t.Fatalf("expected estimate 3, got %v", issue.Estimate)
	}
	if issue.Priority != 2 {
		t.Fatalf("expected priority 2, got %d", issue.Priority)
	}
	if issue.CompletedAt.IsZero() || issue.CreatedAt.IsZero() {
		t.Fatalf("timestamps should have parsed: %+v", issue)
	}
	if issue.StatePosition != 0 || issue.StateSymbol != "white_check_mark" {
		t.Fatalf("Done should map to position 0 / done marker, got %d / %q", issue.StatePosition, issue.StateSymbol)
	}
}

func TestNormalizeIssueMissingPriority(t *testing.T) {
	_, err := NormalizeIssue(RawIssue{Identifier: "ENG-1", Priority: nil})
	if err == nil {
		t.Fatal("expected an error for a record with no priority")
	}
}

func TestNormalizeIssueMalformedTimestampsRecovered(t *testing.T) {
	issue, err := NormalizeIssue(RawIssue{
		Identifier:  "ENG-2",
		Priority:    float64Ptr(1),
		CreatedAt:   "not-a-date",
		CompletedAt: "",
	})
	if err != nil {
		t.Fatalf("malformed timestamps must not fail the record: %v", err)
	}
	if !issue.CreatedAt.IsZero() || !issue.CompletedAt.IsZero() {
		t.Fatalf("unparseable timestamps should normalize to zero, got %+v", issue)
	}
}

func TestNormalizeIssueUnknownState(t *testing.T) {
	issue, err := NormalizeIssue(RawIssue{
		Identifier: "ENG-3",
		Priority:   float64Ptr(0),
		State:      &RawState{Name: "Blocked On Vendor"},
	})
	if err != nil {
		t.Fatalf("NormalizeIssue failed: %v", err)
	}
	if issue.StatePosition != 100 {
		t.Fatalf("unknown states rank 100, got %d", issue.StatePosition)
	}
	if issue.StateSymbol != "" {
		t.Fatalf("unknown states carry no symbol, got %q", issue.StateSymbol)
	}
}

func TestNormalizeIssueNoStateObject(t *testing.T) {
	issue, err := NormalizeIssue(RawIssue{Identifier: "ENG-4", Priority: float64Ptr(4)})
	if err != nil {
		t.Fatalf("NormalizeIssue failed: %v", err)
	}
	if issue.StateName != "" || issue.StatePosition != 100 {
		t.Fatalf("missing state should default to empty name / 100, got %+v", issue)
	}
	if issue.Estimate != nil {
		t.Fatalf("missing estimate should stay nil, got %v", issue.Estimate)
	}
}

func TestNormalizeIssuesDeterministic(t *testing.T) {
	raws := []RawIssue{
		{Identifier: "ENG-5", Priority: float64Ptr(1), Estimate: float64Ptr(2), CreatedAt: "2026-08-01T00:00:00Z", State: &RawState{Name: "In Review"}},
		{Identifier: "ENG-6", Priority: float64Ptr(3), CompletedAt: "garbage"},
	}
	first, err := NormalizeIssues(raws)
	if err != nil {
		t.Fatalf("NormalizeIssues failed: %v", err)
	}
	second, err := NormalizeIssues(raws)
	if err != nil {
		t.Fatalf("NormalizeIssues failed on second pass: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization should be pure:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestStateLookupTables(t *testing.T) {
	expected := map[string]int{
		"Done": 0, "In Review": 1, "In Progress": 2, "Pending": 3, "Todo": 4,
		"Backlog": 5, "Triage": 6, "Canceled": 8, "Duplicate": 9,
	}
	for name, pos := range expected {
		if got := StatePosition(name); got != pos {
			t.Fatalf("StatePosition(%q) = %d, expected %d", name, got, pos)
		}
	}
	// Lookup is case sensitive.
	if got := StatePosition("done"); got != 100 {
		t.Fatalf("lowercase state name should not match, got %d", got)
	}
	if StateSymbol("In Progress") != "hourglass_flowing_sand" || StateSymbol("Pending") != "no_entry" {
		t.Fatalf("symbol table mismatch: %q %q", StateSymbol("In Progress"), StateSymbol("Pending"))
	}
	if StateSymbol("Backlog") != "" {
		t.Fatalf("Backlog has no symbol, got %q", StateSymbol("Backlog"))
	}
}
