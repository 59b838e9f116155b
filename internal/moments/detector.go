package moments

import (
	"time"

	"jobtrack-backend/internal/records"
	"jobtrack-backend/internal/snapshot"
)

// Per-chain thresholds. The insight classifier keeps its own; they are not a
// shared tunable.
const (
	followupAfterDays    = 7
	staleAfterDays       = 14
	staleMinCount        = 3
	lowActivityAfterDays = 7
	feedbackFreshWindow  = 24 * time.Hour
)

// rule pairs a predicate with the moment it produces. Rules are evaluated in
// order and the first match wins; earlier rules represent higher-urgency
// situations and must dominate later ones.
type rule struct {
	name  string
	match func(snap snapshot.Snapshot, pendingAnalysis bool) (Moment, bool)
}

var rules = []rule{
	{"pending-analysis", matchPendingAnalysis},
	{"offer-received", matchOfferReceived},
	{"interview-upcoming", matchInterviewUpcoming},
	{"interview-feedback-fresh", matchInterviewFeedbackFresh},
	{"needs-followup", matchNeedsFollowup},
	{"multiple-stale", matchMultipleStale},
	{"low-activity", matchLowActivity},
	{"new-user", matchNewUser},
	{"general-summary", matchGeneralSummary},
}

// Detect returns exactly one Moment for the snapshot. The final rule matches
// unconditionally, so the function is total.
func Detect(snap snapshot.Snapshot, pendingAnalysis bool) Moment {
	for _, r := range rules {
		if m, ok := r.match(snap, pendingAnalysis); ok {
			return m
		}
	}
	// Unreachable: matchGeneralSummary always matches.
	return Moment{Kind: GeneralSummary}
}

func matchPendingAnalysis(snap snapshot.Snapshot, pendingAnalysis bool) (Moment, bool) {
	if !pendingAnalysis {
		return Moment{}, false
	}
	return Moment{Kind: PendingAnalysis}, true
}

func matchOfferReceived(snap snapshot.Snapshot, _ bool) (Moment, bool) {
	if app, ok := firstWithStatus(snap, records.StatusOffer); ok {
		return Moment{Kind: OfferReceived, Company: app.Company, Title: app.Title}, true
	}
	return Moment{}, false
}

func matchInterviewUpcoming(snap snapshot.Snapshot, _ bool) (Moment, bool) {
	if app, ok := firstWithStatus(snap, records.StatusInterview); ok {
		return Moment{Kind: InterviewUpcoming, Company: app.Company, Title: app.Title}, true
	}
	return Moment{}, false
}

func matchInterviewFeedbackFresh(snap snapshot.Snapshot, _ bool) (Moment, bool) {
	iv := snap.Interview
	if iv == nil || iv.Sessions == 0 || iv.LastCompletedAt.IsZero() {
		return Moment{}, false
	}
	if snap.TakenAt.Sub(iv.LastCompletedAt) >= feedbackFreshWindow {
		return Moment{}, false
	}
	return Moment{Kind: InterviewFeedbackFresh, Role: iv.LastRole}, true
}

func matchNeedsFollowup(snap snapshot.Snapshot, _ bool) (Moment, bool) {
	// Pending is ordered oldest first; the head is the single most urgent one.
	if len(snap.Pending) == 0 {
		return Moment{}, false
	}
	oldest := snap.Pending[0]
	if oldest.DaysWaiting < followupAfterDays {
		return Moment{}, false
	}
	return Moment{
		Kind:    NeedsFollowup,
		Company: oldest.Application.Company,
		Title:   oldest.Application.Title,
		Days:    oldest.DaysWaiting,
	}, true
}

func matchMultipleStale(snap snapshot.Snapshot, _ bool) (Moment, bool) {
	stale := 0
	for _, p := range snap.Pending {
		if p.DaysWaiting >= staleAfterDays {
			stale++
		}
	}
	if stale < staleMinCount {
		return Moment{}, false
	}
	return Moment{Kind: MultipleStale, Count: stale}, true
}

func matchLowActivity(snap snapshot.Snapshot, _ bool) (Moment, bool) {
	if snap.TotalApplications == 0 || snap.NewestAgeDays < lowActivityAfterDays {
		return Moment{}, false
	}
	return Moment{Kind: LowActivity, Days: snap.NewestAgeDays}, true
}

func matchNewUser(snap snapshot.Snapshot, _ bool) (Moment, bool) {
	if snap.TotalApplications != 0 || snap.HasAnalyses() {
		return Moment{}, false
	}
	return Moment{Kind: NewUser}, true
}

func matchGeneralSummary(snap snapshot.Snapshot, _ bool) (Moment, bool) {
	return Moment{Kind: GeneralSummary, Total: snap.TotalApplications, Active: snap.ActiveProcesses}, true
}

func firstWithStatus(snap snapshot.Snapshot, status string) (records.Application, bool) {
	for _, app := range snap.Applications {
		if app.Status == status {
			return app, true
		}
	}
	return records.Application{}, false
}
