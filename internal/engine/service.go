// Package engine wires the decision components behind the call shapes the
// rest of the product consumes.
package engine

import (
	"context"
	"time"

	"jobtrack-backend/internal/actions"
	"jobtrack-backend/internal/insights"
	"jobtrack-backend/internal/messages"
	"jobtrack-backend/internal/moments"
	"jobtrack-backend/internal/queries"
	"jobtrack-backend/internal/records"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/telemetry"
	"jobtrack-backend/internal/snapshot"
)

// Service runs one-shot decisions over a user's records. Everything except
// the renderer's cache is stateless.
type Service struct {
	Repo     records.Repo
	Renderer *messages.Renderer
	Now      func() time.Time
}

// NewService constructs a Service. A nil clock falls back to time.Now.
func NewService(repo records.Repo, renderer *messages.Renderer, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{Repo: repo, Renderer: renderer, Now: now}
}

// Briefing is the moment plus its rendered message for the home surface.
type Briefing struct {
	Moment  moments.Moment  `json:"moment"`
	Message messages.Message `json:"message"`
}

// QueryResult is the outcome of one chat question: a direct answer or a
// delegation signal, plus at most one suggested action.
type QueryResult struct {
	Direct          bool               `json:"direct"`
	Answer          string             `json:"answer,omitempty"`
	NeedsGeneration bool               `json:"needsGeneration"`
	Snapshot        *snapshot.Snapshot `json:"snapshot,omitempty"`
	Question        string             `json:"question,omitempty"`
	Action          *actions.Suggestion `json:"action,omitempty"`
}

// BuildSnapshot recomputes the user's snapshot from storage. It is never
// cached across decisions.
func (s *Service) BuildSnapshot(ctx context.Context, userID string) (snapshot.Snapshot, error) {
	apps, err := s.Repo.ListApplicationsByUser(ctx, userID)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	analyses, err := s.Repo.ListAnalysesByUser(ctx, userID)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	sessions, err := s.Repo.ListInterviewSessionsByUser(ctx, userID)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	return snapshot.Build(s.Now(), apps, analyses, snapshot.SummarizeInterviews(sessions)), nil
}

// Brief selects the user's current moment and renders its message.
func (s *Service) Brief(ctx context.Context, userID string, pendingAnalysis bool) (Briefing, error) {
	snap, err := s.BuildSnapshot(ctx, userID)
	if err != nil {
		return Briefing{}, err
	}
	moment := moments.Detect(snap, pendingAnalysis)
	metrics.IncMomentDetected()
	telemetry.Info("engine.moment", map[string]any{
		"user_id": userID,
		"moment":  string(moment.Kind),
	})
	return Briefing{
		Moment:  moment,
		Message: s.Renderer.Render(ctx, moment),
	}, nil
}

// Query routes a free-text question and attaches at most one suggestion.
// Direct answers never touch the generation provider; everything else is
// delegated to the caller with the fresh snapshot attached.
func (s *Service) Query(ctx context.Context, userID, question string, hasInterviewCtx, hasAnalysisCtx bool) (QueryResult, error) {
	snap, err := s.BuildSnapshot(ctx, userID)
	if err != nil {
		return QueryResult{}, err
	}

	result := QueryResult{
		Action: actions.Suggest(question, snap, hasInterviewCtx, hasAnalysisCtx),
	}

	route := queries.RouteQuery(question, snap)
	if route.Direct {
		result.Direct = true
		result.Answer = route.Answer
		return result, nil
	}

	result.NeedsGeneration = true
	result.Snapshot = &snap
	result.Question = question
	return result, nil
}

// ClassifyInsight classifies the intake questionnaire. Pure passthrough; it
// lives on the service so callers have one entry point.
func (s *Service) ClassifyInsight(intake insights.Intake) insights.Insight {
	return insights.Classify(intake)
}
