// Package snapshot builds the normalized view of a user's records that every
// decision component reads. A Snapshot is recomputed on each invocation and
// must never be reused across decisions.
package snapshot

import (
	"time"

	"jobtrack-backend/internal/records"
)

// CareerProfile is the role context taken from the newest career analysis.
type CareerProfile struct {
	Role      string `json:"role"`
	Level     string `json:"level"`
	Domain    string `json:"domain"`
	Objective string `json:"objective"`
}

// InterviewSummary condenses a user's mock-interview history.
type InterviewSummary struct {
	Sessions           int       `json:"sessions"`
	AverageScore       int       `json:"averageScore"`
	LastScore          int       `json:"lastScore"`
	LastRole           string    `json:"lastRole,omitempty"`
	LastCompletedAt    time.Time `json:"lastCompletedAt"`
	RecentStrengths    []string  `json:"recentStrengths,omitempty"`
	RecentImprovements []string  `json:"recentImprovements,omitempty"`
}

// PendingApplication is an application still waiting on a response, with its
// age relative to the snapshot time.
type PendingApplication struct {
	Application records.Application `json:"application"`
	DaysWaiting int                 `json:"daysWaiting"`
}

// Snapshot is the derived state all decision components operate on. It also
// carries the source application list so detectors can inspect statuses the
// derived counters collapse.
type Snapshot struct {
	Applications []records.Application `json:"applications,omitempty"`

	TotalApplications int `json:"totalApplications"`
	ConversionRate    int `json:"conversionRate"`
	ActiveProcesses   int `json:"activeProcesses"`
	PendingResponses  int `json:"pendingResponses"`
	OfferCount        int `json:"offerCount"`

	Newest        *records.Application `json:"newest,omitempty"`
	NewestAgeDays int                  `json:"newestAgeDays"`
	Pending       []PendingApplication `json:"pending,omitempty"`

	Analyses  []records.CareerAnalysis `json:"analyses,omitempty"`
	Profile   *CareerProfile           `json:"profile,omitempty"`
	Interview *InterviewSummary        `json:"interview,omitempty"`

	TakenAt time.Time `json:"takenAt"`
}

// HasAnalyses reports whether the user has any stored analyses.
func (s Snapshot) HasAnalyses() bool {
	return len(s.Analyses) > 0
}

// LatestAnalysis returns the newest analysis, if any.
func (s Snapshot) LatestAnalysis() (records.CareerAnalysis, bool) {
	if len(s.Analyses) == 0 {
		return records.CareerAnalysis{}, false
	}
	return s.Analyses[0], true
}

// DaysSinceLastAnalysis returns the age of the newest analysis in days, or -1
// when no analyses exist.
func (s Snapshot) DaysSinceLastAnalysis() int {
	latest, ok := s.LatestAnalysis()
	if !ok {
		return -1
	}
	return daysBetween(latest.CreatedAt, s.TakenAt)
}
