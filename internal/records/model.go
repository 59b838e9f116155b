package records

import "time"

// Application status values as stored.
const (
	StatusApplied   = "applied"
	StatusInReview  = "in_review"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
)

// Application is a tracked job application. Owned by storage; the decision
// engine only reads these.
type Application struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Company   string    `json:"company"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CareerAnalysis is a stored career analysis result, newest-first when listed.
type CareerAnalysis struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Recommendation string    `json:"recommendation"`
	Reasons        []string  `json:"reasons,omitempty"`
	Role           string    `json:"role,omitempty"`
	Level          string    `json:"level,omitempty"`
	Domain         string    `json:"domain,omitempty"`
	Objective      string    `json:"objective,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// InterviewSession is a completed mock-interview session.
type InterviewSession struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Role         string    `json:"role"`
	Score        int       `json:"score"`
	Feedback     string    `json:"feedback,omitempty"`
	Strengths    []string  `json:"strengths,omitempty"`
	Improvements []string  `json:"improvements,omitempty"`
	CompletedAt  time.Time `json:"completedAt"`
}

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusInReview, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}
