package insights

import (
	"strconv"
	"strings"

	"jobtrack-backend/internal/shared/util"
)

// Urgency bounds local to this chain. The moment detector keeps its own day
// thresholds; they are deliberately not shared.
const (
	highUrgency = 4
	lowUrgency  = 2
)

// classifyRule is a conjunction of intake conditions tied to one archetype.
// Rules run in order, first match wins; later rules are broader partial
// matches with lower confidence, and the final rule is unconditional.
type classifyRule struct {
	name       string
	archetype  Archetype
	confidence Confidence
	match      func(in Intake) bool
}

var classifyRules = []classifyRule{
	{
		name:       "employed-stuck-urgent",
		archetype:  MovementVsProgress,
		confidence: ConfidenceHigh,
		match: func(in Intake) bool {
			return in.CurrentStatus == StatusEmployed && in.TimeInStatus == TimeOver1Year && in.Urgency >= highUrgency
		},
	},
	{
		name:       "interviews-unknown-bottleneck",
		archetype:  ConversionGap,
		confidence: ConfidenceHigh,
		match: func(in Intake) bool {
			return in.Objective == ObjectiveMoreInterviews && in.answer("bottleneck") == "unknown"
		},
	},
	{
		name:       "stuck-at-screening",
		archetype:  ConversionGap,
		confidence: ConfidenceHigh,
		match: func(in Intake) bool {
			return in.Objective == ObjectiveAdvanceProcess && in.answer("bottleneck") == "screening"
		},
	},
	{
		name:       "direction-change-unsure",
		archetype:  DirectionUnclear,
		confidence: ConfidenceHigh,
		match: func(in Intake) bool {
			clarity := in.answer("clarity")
			return in.Objective == ObjectiveChangeDirection && (clarity == "" || clarity == "unsure")
		},
	},
	{
		name:       "unemployed-urgent",
		archetype:  StalledPipeline,
		confidence: ConfidenceHigh,
		match: func(in Intake) bool {
			return in.CurrentStatus == StatusUnemployed && in.Urgency >= highUrgency
		},
	},
	{
		name:       "first-job",
		archetype:  FoundationBuilding,
		confidence: ConfidenceHigh,
		match: func(in Intake) bool {
			return in.Objective == ObjectiveFirstJob
		},
	},
	{
		name:       "direction-change-broad",
		archetype:  DirectionUnclear,
		confidence: ConfidenceMedium,
		match: func(in Intake) bool {
			return in.Objective == ObjectiveChangeDirection
		},
	},
	{
		name:       "slow-advance",
		archetype:  StalledPipeline,
		confidence: ConfidenceMedium,
		match: func(in Intake) bool {
			return in.Objective == ObjectiveAdvanceProcess &&
				(in.TimeInStatus == Time6To12Months || in.TimeInStatus == TimeOver1Year)
		},
	},
	{
		name:       "interviews-broad",
		archetype:  ConversionGap,
		confidence: ConfidenceMedium,
		match: func(in Intake) bool {
			return in.Objective == ObjectiveMoreInterviews
		},
	},
	{
		name:       "employed-long-tenure",
		archetype:  MovementVsProgress,
		confidence: ConfidenceMedium,
		match: func(in Intake) bool {
			return in.CurrentStatus == StatusEmployed && in.TimeInStatus == TimeOver1Year
		},
	},
	{
		name:       "student-or-patient",
		archetype:  FoundationBuilding,
		confidence: ConfidenceMedium,
		match: func(in Intake) bool {
			return in.CurrentStatus == StatusStudent || in.Urgency <= lowUrgency
		},
	},
	{
		name:       "default",
		archetype:  FoundationBuilding,
		confidence: ConfidenceLow,
		match: func(in Intake) bool {
			return true
		},
	},
}

// Classify produces exactly one Insight for any intake. The final rule is
// unconditional, so the function is total.
func Classify(in Intake) Insight {
	for _, r := range classifyRules {
		if !r.match(in) {
			continue
		}
		insight := renderInsight(r.archetype, in)
		insight.Confidence = r.confidence
		insight.ContentHash = contentHash(in)
		return insight
	}
	// Unreachable: the default rule always matches.
	insight := renderInsight(FoundationBuilding, in)
	insight.Confidence = ConfidenceLow
	insight.ContentHash = contentHash(in)
	return insight
}

// contentHash covers every field the rules read, so equal hashes mean the
// classification inputs did not change.
func contentHash(in Intake) string {
	return util.HashFields(
		strings.ToLower(in.Role),
		strings.ToLower(in.Level),
		strings.ToLower(in.Domain),
		in.CurrentStatus,
		in.TimeInStatus,
		strconv.Itoa(in.Urgency),
		in.Objective,
		in.answer("bottleneck"),
		in.answer("clarity"),
	)
}

func (in Intake) answer(key string) string {
	if in.Answers == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(in.Answers[key]))
}
