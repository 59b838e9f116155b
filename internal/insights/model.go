// Package insights classifies a structured intake questionnaire into one of
// five situation archetypes and renders a four-part diagnostic.
package insights

// Archetype is one of the five diagnostic categories.
type Archetype string

const (
	MovementVsProgress Archetype = "movement-vs-progress"
	ConversionGap      Archetype = "conversion-gap"
	DirectionUnclear   Archetype = "direction-unclear"
	StalledPipeline    Archetype = "stalled-pipeline"
	FoundationBuilding Archetype = "foundation-building"
)

// Confidence grades how specifically the intake matched a rule.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Current-status values as submitted by the intake form.
const (
	StatusEmployed   = "employed"
	StatusUnemployed = "unemployed"
	StatusStudent    = "student"
	StatusFreelance  = "freelance"
)

// Time-in-status buckets.
const (
	TimeUnder3Months = "under-3m"
	Time3To6Months   = "3-6m"
	Time6To12Months  = "6-12m"
	TimeOver1Year    = "over-1y"
)

// Objectives.
const (
	ObjectiveMoreInterviews  = "more-interviews"
	ObjectiveAdvanceProcess  = "advance-process"
	ObjectiveChangeDirection = "change-direction"
	ObjectiveFirstJob        = "first-job"
)

// Intake is the structured questionnaire the classifier reads. Answers holds
// objective-specific follow-ups, e.g. "bottleneck" for interview objectives
// or "clarity" for direction changes.
type Intake struct {
	Role          string            `json:"role"`
	Level         string            `json:"level"`
	Domain        string            `json:"domain"`
	CurrentStatus string            `json:"currentStatus"`
	TimeInStatus  string            `json:"timeInStatus"`
	Urgency       int               `json:"urgency"`
	Objective     string            `json:"objective"`
	Answers       map[string]string `json:"answers,omitempty"`
}

// Insight is the classified diagnostic.
type Insight struct {
	Archetype  Archetype  `json:"archetype"`
	Confidence Confidence `json:"confidence"`
	Diagnosis  string     `json:"diagnosis"`
	Pattern    string     `json:"pattern"`
	Risk       string     `json:"risk"`
	NextStep   string     `json:"nextStep"`
	// ContentHash covers the classification-relevant intake fields so
	// callers can detect unchanged answers and skip regeneration.
	ContentHash string `json:"contentHash"`
}
