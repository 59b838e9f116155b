package records

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Repo defines persistence operations for the record collections the
// decision engine reads.
type Repo interface {
	CreateApplication(ctx context.Context, app Application) error
	UpdateApplicationStatus(ctx context.Context, userID, appID, status string) error
	ListApplicationsByUser(ctx context.Context, userID string) ([]Application, error)

	CreateAnalysis(ctx context.Context, analysis CareerAnalysis) error
	ListAnalysesByUser(ctx context.Context, userID string) ([]CareerAnalysis, error)

	CreateInterviewSession(ctx context.Context, session InterviewSession) error
	ListInterviewSessionsByUser(ctx context.Context, userID string) ([]InterviewSession, error)
}
