// Package queries classifies free-text questions and answers the factual
// ones straight from the snapshot, without any generation call.
package queries

import (
	"strings"

	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/snapshot"
)

// Route is the outcome of classifying one question.
type Route struct {
	// Direct is true when Answer was composed from stored facts.
	Direct bool `json:"direct"`
	// Answer is set only for direct routes.
	Answer string `json:"answer,omitempty"`
	// Matched is the phrase key that classified the question, for logging.
	Matched string `json:"matched,omitempty"`
}

// factKey pairs a normalized phrase with the responder that answers it. The
// list is ordered; the first substring match wins, so more specific phrases
// come before broader ones.
type factKey struct {
	phrase  string
	handler string
}

var factKeys = []factKey{
	{"conversion rate", "conversion"},
	{"response rate", "conversion"},
	{"how many applications", "totals"},
	{"how many jobs", "totals"},
	{"number of applications", "totals"},
	{"active processes", "active"},
	{"processes are active", "active"},
	{"pending response", "pendingcount"},
	{"waiting to hear", "pendingcount"},
	{"waiting for a response", "pendingcount"},
	{"how many offers", "offers"},
	{"any offers", "offers"},
	{"last analysis", "lastanalysis"},
	{"latest analysis", "lastanalysis"},
	{"previous analysis", "lastanalysis"},
	{"risks you identified", "risks"},
	{"risks you found", "risks"},
	{"what risks", "risks"},
	{"interview average", "interviewscore"},
	{"interview score", "interviewscore"},
	{"mock interview results", "interviewscore"},
	{"oldest application", "oldest"},
	{"longest waiting", "oldest"},
}

var factHandlers = map[string]func(snapshot.Snapshot) string{
	"conversion":     answerConversion,
	"totals":         answerTotals,
	"active":         answerActive,
	"pendingcount":   answerPendingCount,
	"offers":         answerOffers,
	"lastanalysis":   answerLastAnalysis,
	"risks":          answerRisks,
	"interviewscore": answerInterviewScore,
	"oldest":         answerOldest,
}

// RouteQuery classifies the question against the fact-key list. A matched key
// whose handler is missing falls through to needs-generation; it never errors.
func RouteQuery(question string, snap snapshot.Snapshot) Route {
	normalized := strings.ToLower(strings.TrimSpace(question))
	if normalized == "" {
		return Route{}
	}
	for _, key := range factKeys {
		if !strings.Contains(normalized, key.phrase) {
			continue
		}
		handler, ok := factHandlers[key.handler]
		if !ok {
			// Keys and handlers are kept in sync; a gap degrades to
			// generation rather than erroring.
			break
		}
		metrics.IncDirectAnswer()
		return Route{Direct: true, Answer: handler(snap), Matched: key.phrase}
	}
	return Route{}
}
