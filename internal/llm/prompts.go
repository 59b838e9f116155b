package llm

import _ "embed"

var (
	//go:embed prompts/moment_offer.txt
	promptMomentOffer string
	//go:embed prompts/moment_interview.txt
	promptMomentInterview string
	//go:embed prompts/moment_feedback.txt
	promptMomentFeedback string
	//go:embed prompts/moment_followup.txt
	promptMomentFollowup string
	//go:embed prompts/moment_summary.txt
	promptMomentSummary string
)

// PromptTemplate returns the instruction template for a moment name and
// whether the name was recognized.
func PromptTemplate(name string) (string, bool) {
	switch name {
	case "offer-received":
		return promptMomentOffer, true
	case "interview-upcoming":
		return promptMomentInterview, true
	case "interview-feedback-fresh":
		return promptMomentFeedback, true
	case "needs-followup":
		return promptMomentFollowup, true
	case "general-summary":
		return promptMomentSummary, true
	default:
		return "", false
	}
}
