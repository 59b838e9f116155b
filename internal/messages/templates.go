package messages

import (
	"fmt"

	"jobtrack-backend/internal/moments"
)

// Static moments carry context-free copy and never touch the provider.
func staticMessage(m moments.Moment) (Message, bool) {
	switch m.Kind {
	case moments.PendingAnalysis:
		return Message{
			Title:   "Your analysis is almost ready",
			Body:    "You started a career analysis that isn't saved yet. Finish it to unlock tailored guidance.",
			Primary: Action{Label: "Finish analysis", Target: "/analysis"},
		}, true
	case moments.MultipleStale:
		return Message{
			Title: "Several applications have gone quiet",
			Body: fmt.Sprintf("%d of your applications have been waiting more than two weeks. Decide which are worth chasing and let the rest go.",
				m.Count),
			Primary:   Action{Label: "Review pipeline", Target: "/applications"},
			Secondary: &Action{Label: "Log a new application", Target: "/applications/new"},
		}, true
	case moments.LowActivity:
		return Message{
			Title: "Your search has slowed down",
			Body: fmt.Sprintf("Your last application was %d days ago. A steady pace keeps options open, even one or two a week.",
				m.Days),
			Primary: Action{Label: "Log an application", Target: "/applications/new"},
		}, true
	case moments.NewUser:
		return Message{
			Title:     "Welcome, let's get you set up",
			Body:      "Start by logging the applications you already have in flight, or run a career analysis to get your bearings.",
			Primary:   Action{Label: "Log an application", Target: "/applications/new"},
			Secondary: &Action{Label: "Run career analysis", Target: "/analysis"},
		}, true
	}
	return Message{}, false
}

// fallbackMessage is the fixed copy used when generation fails or is not
// configured. Every generative moment has one; provider errors never reach
// the user.
func fallbackMessage(m moments.Moment, tip string) Message {
	switch m.Kind {
	case moments.OfferReceived:
		return Message{
			Title: "You have an offer on the table",
			Body: fmt.Sprintf("Congratulations, %s made you an offer. Take a moment to weigh it against your other active processes before answering.",
				m.Company),
			Primary:   Action{Label: "Review offer", Target: "/applications"},
			Secondary: &Action{Label: "Compare processes", Target: "/dashboard"},
		}
	case moments.InterviewUpcoming:
		return Message{
			Title: "Interview in progress",
			Body: fmt.Sprintf("You're interviewing at %s. A focused practice session is the best use of the time before the next round.",
				m.Company),
			Primary:   Action{Label: "Practice interview", Target: "/interviews/practice"},
			Secondary: &Action{Label: "View application", Target: "/applications"},
		}
	case moments.InterviewFeedbackFresh:
		return Message{
			Title:   "Fresh interview feedback",
			Body:    "Your mock-interview feedback from the last day is waiting. Reviewing it while it's fresh is when it sticks.",
			Primary: Action{Label: "Review feedback", Target: "/interviews"},
		}
	case moments.NeedsFollowup:
		return Message{
			Title: "Time to follow up",
			Body: fmt.Sprintf("Your application at %s has been quiet for %d days. A short, polite follow-up often restarts the conversation.",
				m.Company, m.Days),
			Primary: Action{Label: "Draft follow-up", Target: "/chat"},
		}
	default:
		return Message{
			Title:   "Where you stand",
			Body:    tip,
			Primary: Action{Label: "Open dashboard", Target: "/dashboard"},
		}
	}
}

// generativeTitle pairs the cached provider body with the moment's fixed
// title and actions.
func generativeFrame(m moments.Moment) Message {
	frame := fallbackMessage(m, "")
	frame.Body = ""
	return frame
}
