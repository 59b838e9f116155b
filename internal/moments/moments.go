// Package moments selects the single situation archetype that matters most
// to a user right now.
package moments

// Kind is a moment label drawn from a closed set.
type Kind string

// All moment kinds, in no particular order. Selection order lives in the
// detector's rule chain.
const (
	PendingAnalysis        Kind = "pending-analysis"
	OfferReceived          Kind = "offer-received"
	InterviewUpcoming      Kind = "interview-upcoming"
	InterviewFeedbackFresh Kind = "interview-feedback-fresh"
	NeedsFollowup          Kind = "needs-followup"
	MultipleStale          Kind = "multiple-stale"
	LowActivity            Kind = "low-activity"
	NewUser                Kind = "new-user"
	GeneralSummary         Kind = "general-summary"
)

// Moment is the selected archetype plus the metadata of whatever record
// triggered it. Unused fields stay zero.
type Moment struct {
	Kind Kind `json:"kind"`

	Company string `json:"company,omitempty"`
	Title   string `json:"title,omitempty"`
	Role    string `json:"role,omitempty"`
	Days    int    `json:"days,omitempty"`
	Count   int    `json:"count,omitempty"`
	Total   int    `json:"total,omitempty"`
	Active  int    `json:"active,omitempty"`
}
