package queries

import (
	"fmt"
	"strings"

	"jobtrack-backend/internal/snapshot"
)

// Fact responders compose answers purely from snapshot fields. Each one
// handles the zero-data case explicitly.

func answerConversion(snap snapshot.Snapshot) string {
	if snap.TotalApplications == 0 {
		return "You have no applications logged yet, so there's no conversion rate to report."
	}
	return fmt.Sprintf("Your conversion rate is %d%%: of %d applications, the ones that reached an interview or further.",
		snap.ConversionRate, snap.TotalApplications)
}

func answerTotals(snap snapshot.Snapshot) string {
	if snap.TotalApplications == 0 {
		return "You haven't logged any applications yet."
	}
	return fmt.Sprintf("You're tracking %d applications: %d active, %d waiting on a response.",
		snap.TotalApplications, snap.ActiveProcesses, snap.PendingResponses)
}

func answerActive(snap snapshot.Snapshot) string {
	if snap.ActiveProcesses == 0 {
		return "You have no active processes right now, nothing at the interview or offer stage."
	}
	return fmt.Sprintf("You have %d active processes at the interview or offer stage.", snap.ActiveProcesses)
}

func answerPendingCount(snap snapshot.Snapshot) string {
	if snap.PendingResponses == 0 {
		return "You're not waiting on any responses right now."
	}
	oldest := snap.Pending[0]
	return fmt.Sprintf("You're waiting on %d responses. The oldest is %s (%d days).",
		snap.PendingResponses, oldest.Application.Company, oldest.DaysWaiting)
}

func answerOffers(snap snapshot.Snapshot) string {
	if snap.OfferCount == 0 {
		return "No offers yet. Keep the pipeline moving."
	}
	return fmt.Sprintf("You have %d offer(s) on the table.", snap.OfferCount)
}

func answerLastAnalysis(snap snapshot.Snapshot) string {
	latest, ok := snap.LatestAnalysis()
	if !ok {
		return "You haven't run a career analysis yet."
	}
	days := snap.DaysSinceLastAnalysis()
	when := "today"
	if days == 1 {
		when = "yesterday"
	} else if days > 1 {
		when = fmt.Sprintf("%d days ago", days)
	}
	return fmt.Sprintf("Your last analysis was %s. Its recommendation: %s", when, latest.Recommendation)
}

func answerRisks(snap snapshot.Snapshot) string {
	latest, ok := snap.LatestAnalysis()
	if !ok || len(latest.Reasons) == 0 {
		return "There's no stored analysis with identified risks yet. Run an analysis to get one."
	}
	return fmt.Sprintf("The risks identified in your last analysis: %s.", strings.Join(latest.Reasons, "; "))
}

func answerInterviewScore(snap snapshot.Snapshot) string {
	iv := snap.Interview
	if iv == nil || iv.Sessions == 0 {
		return "You haven't completed any mock interviews yet."
	}
	return fmt.Sprintf("Across %d mock interviews your average score is %d; your last one scored %d.",
		iv.Sessions, iv.AverageScore, iv.LastScore)
}

func answerOldest(snap snapshot.Snapshot) string {
	if len(snap.Pending) == 0 {
		return "You have no applications waiting on a response."
	}
	oldest := snap.Pending[0]
	return fmt.Sprintf("Your oldest pending application is %s (%s), waiting %d days.",
		oldest.Application.Company, oldest.Application.Title, oldest.DaysWaiting)
}
