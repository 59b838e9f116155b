package snapshot

import (
	"math"
	"sort"
	"time"

	"jobtrack-backend/internal/records"
)

// Build derives a Snapshot from raw record collections. It is a pure
// transform: empty inputs produce a zeroed Snapshot, never an error. All day
// deltas are relative to now.
func Build(now time.Time, apps []records.Application, analyses []records.CareerAnalysis, interview *InterviewSummary) Snapshot {
	snap := Snapshot{TakenAt: now}

	snap.Applications = append([]records.Application(nil), apps...)
	snap.TotalApplications = len(apps)
	advanced := 0
	for i := range apps {
		switch apps[i].Status {
		case records.StatusInterview:
			advanced++
			snap.ActiveProcesses++
		case records.StatusOffer:
			advanced++
			snap.ActiveProcesses++
			snap.OfferCount++
		case records.StatusApplied, records.StatusInReview:
			snap.PendingResponses++
			snap.Pending = append(snap.Pending, PendingApplication{
				Application: apps[i],
				DaysWaiting: daysBetween(apps[i].AppliedAt, now),
			})
		}
		if snap.Newest == nil || apps[i].AppliedAt.After(snap.Newest.AppliedAt) {
			app := apps[i]
			snap.Newest = &app
		}
	}
	if snap.TotalApplications > 0 {
		snap.ConversionRate = int(math.Round(float64(advanced) / float64(snap.TotalApplications) * 100))
	}
	if snap.Newest != nil {
		snap.NewestAgeDays = daysBetween(snap.Newest.AppliedAt, now)
	}

	// Oldest pending first: the most urgent followup leads the list.
	sort.SliceStable(snap.Pending, func(i, j int) bool {
		return snap.Pending[i].DaysWaiting > snap.Pending[j].DaysWaiting
	})

	snap.Analyses = sortedNewestFirst(analyses)
	if len(snap.Analyses) > 0 {
		latest := snap.Analyses[0]
		snap.Profile = &CareerProfile{
			Role:      latest.Role,
			Level:     latest.Level,
			Domain:    latest.Domain,
			Objective: latest.Objective,
		}
	}

	snap.Interview = interview
	return snap
}

// SummarizeInterviews condenses raw sessions into an InterviewSummary.
// Sessions may arrive in any order; nil is returned when there are none.
func SummarizeInterviews(sessions []records.InterviewSession) *InterviewSummary {
	if len(sessions) == 0 {
		return nil
	}
	sorted := append([]records.InterviewSession(nil), sessions...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	total := 0
	for i := range sorted {
		total += sorted[i].Score
	}
	last := sorted[0]
	return &InterviewSummary{
		Sessions:           len(sorted),
		AverageScore:       int(math.Round(float64(total) / float64(len(sorted)))),
		LastScore:          last.Score,
		LastRole:           last.Role,
		LastCompletedAt:    last.CompletedAt,
		RecentStrengths:    last.Strengths,
		RecentImprovements: last.Improvements,
	}
}

func sortedNewestFirst(analyses []records.CareerAnalysis) []records.CareerAnalysis {
	if len(analyses) == 0 {
		return nil
	}
	out := append([]records.CareerAnalysis(nil), analyses...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func daysBetween(from, to time.Time) int {
	if from.IsZero() || !from.Before(to) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
