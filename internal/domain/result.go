package domain

import (
	"strings"
	"time"
)

// HookStatus is the outcome of one hook in a run
type HookStatus string

const (
	StatusFailed  HookStatus = "failed"
	StatusPassed  HookStatus = "passed"
	StatusSkipped HookStatus = "skipped"
)

// Label returns the word printed at the end of a result line
func (s HookStatus) Label() string {
	switch s {
	case StatusFailed:
		return "Failed"
	case StatusPassed:
		return "Passed"
	default:
		return "Skipped"
	}
}

// Skip reasons printed before the status label
const (
	SkipNoFiles = "(no files to check)"
	SkipEnv     = ""
)

// ResultLineWidth is the width of a result line
const ResultLineWidth = 79

// HookResult is what running one hook produced
type HookResult struct {
	Duration      time.Duration
	ExitCode      int
	Files         int
	FilesModified bool
	Hook          ResolvedHook
	Output        []byte
	SkipReason    string
	Status        HookStatus
}

// RunSummary aggregates the results of a run
type RunSummary struct {
	Results []HookResult
	RunID   string
}

// Failed reports whether any hook failed
func (s *RunSummary) Failed() bool {
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Count returns the number of results with status
func (s *RunSummary) Count(status HookStatus) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// FormatResultLine pads name with dots so the line is width columns wide:
// "check yaml.....(no files to check)Skipped"
func FormatResultLine(name, postfix, label string, width int) string {
	dots := width - len(name) - len(postfix) - len(label)
	if dots < 1 {
		dots = 1
	}
	return name + strings.Repeat(".", dots) + postfix + label
}
