// Package actions picks at most one follow-up action to offer alongside a
// chat answer.
package actions

import (
	"jobtrack-backend/internal/snapshot"
)

// Action types, a closed set.
const (
	TypeRunAnalysis       = "run-analysis"
	TypePracticeInterview = "practice-interview"
	TypeLogApplication    = "log-application"
)

// Thresholds for the metric-driven rules.
const (
	analysisFreshDays     = 30
	fewApplicationsBelow  = 3
	lowConversionBelow    = 10
	lowConversionMinTotal = 5
)

// Suggestion is the single action offered to the user, or nothing.
type Suggestion struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Target string `json:"target"`
	Reason string `json:"reason,omitempty"`
}

// suggestRule pairs a predicate with its suggestion. First match wins.
type suggestRule struct {
	name  string
	match func(in input) (Suggestion, bool)
}

type input struct {
	question        string
	snap            snapshot.Snapshot
	hasInterviewCtx bool
	hasAnalysisCtx  bool
}

var suggestRules = []suggestRule{
	{"first-analysis", matchFirstAnalysis},
	{"refresh-analysis", matchRefreshAnalysis},
	{"interview-prep", matchInterviewPrep},
	{"thin-pipeline", matchThinPipeline},
	{"low-conversion", matchLowConversion},
}

// Suggest inspects the question and snapshot and returns at most one action.
// Context flags suppress suggestions for flows the user is already inside.
func Suggest(question string, snap snapshot.Snapshot, hasInterviewCtx, hasAnalysisCtx bool) *Suggestion {
	in := input{
		question:        normalizeQuestion(question),
		snap:            snap,
		hasInterviewCtx: hasInterviewCtx,
		hasAnalysisCtx:  hasAnalysisCtx,
	}
	for _, r := range suggestRules {
		if s, ok := r.match(in); ok {
			return &s
		}
	}
	return nil
}

func matchFirstAnalysis(in input) (Suggestion, bool) {
	if in.snap.HasAnalyses() || in.hasAnalysisCtx {
		return Suggestion{}, false
	}
	return Suggestion{
		Type:   TypeRunAnalysis,
		Label:  "Run your first career analysis",
		Target: "/analysis",
		Reason: "no stored analysis to ground answers on",
	}, true
}

func matchRefreshAnalysis(in input) (Suggestion, bool) {
	if in.hasAnalysisCtx || !matchesAny(in.question, careerDirectionKeywords) {
		return Suggestion{}, false
	}
	days := in.snap.DaysSinceLastAnalysis()
	if days >= 0 && days <= analysisFreshDays {
		return Suggestion{}, false
	}
	return Suggestion{
		Type:   TypeRunAnalysis,
		Label:  "Update your career analysis",
		Target: "/analysis",
		Reason: "direction question with a stale analysis",
	}, true
}

func matchInterviewPrep(in input) (Suggestion, bool) {
	if in.hasInterviewCtx || !matchesAny(in.question, interviewPrepKeywords) {
		return Suggestion{}, false
	}
	return Suggestion{
		Type:   TypePracticeInterview,
		Label:  "Practice with a mock interview",
		Target: "/interviews/practice",
		Reason: "interview question without an active session",
	}, true
}

func matchThinPipeline(in input) (Suggestion, bool) {
	if !matchesAny(in.question, metricsKeywords) {
		return Suggestion{}, false
	}
	if in.snap.TotalApplications >= fewApplicationsBelow {
		return Suggestion{}, false
	}
	return Suggestion{
		Type:   TypeLogApplication,
		Label:  "Log an application",
		Target: "/applications/new",
		Reason: "too few applications to read the numbers",
	}, true
}

func matchLowConversion(in input) (Suggestion, bool) {
	if in.hasInterviewCtx || !matchesAny(in.question, metricsKeywords) {
		return Suggestion{}, false
	}
	if in.snap.TotalApplications < lowConversionMinTotal || in.snap.ConversionRate >= lowConversionBelow {
		return Suggestion{}, false
	}
	return Suggestion{
		Type:   TypePracticeInterview,
		Label:  "Practice with a mock interview",
		Target: "/interviews/practice",
		Reason: "volume is there but conversion is low",
	}, true
}
