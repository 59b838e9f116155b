package records

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu         sync.RWMutex
	apps       map[string][]Application
	analyses   map[string][]CareerAnalysis
	interviews map[string][]InterviewSession
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		apps:       make(map[string][]Application),
		analyses:   make(map[string][]CareerAnalysis),
		interviews: make(map[string][]InterviewSession),
	}
}

// CreateApplication stores the application.
func (r *MemoryRepo) CreateApplication(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.UserID] = append(r.apps[app.UserID], app)
	return nil
}

// UpdateApplicationStatus updates the status of one application.
func (r *MemoryRepo) UpdateApplicationStatus(ctx context.Context, userID, appID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	apps := r.apps[userID]
	for i := range apps {
		if apps[i].ID == appID {
			apps[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// ListApplicationsByUser returns the user's applications, newest first.
func (r *MemoryRepo) ListApplicationsByUser(ctx context.Context, userID string) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Application(nil), r.apps[userID]...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out, nil
}

// CreateAnalysis stores the analysis.
func (r *MemoryRepo) CreateAnalysis(ctx context.Context, analysis CareerAnalysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses[analysis.UserID] = append(r.analyses[analysis.UserID], analysis)
	return nil
}

// ListAnalysesByUser returns the user's analyses, newest first.
func (r *MemoryRepo) ListAnalysesByUser(ctx context.Context, userID string) ([]CareerAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]CareerAnalysis(nil), r.analyses[userID]...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CreateInterviewSession stores the session.
func (r *MemoryRepo) CreateInterviewSession(ctx context.Context, session InterviewSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interviews[session.UserID] = append(r.interviews[session.UserID], session)
	return nil
}

// ListInterviewSessionsByUser returns the user's sessions, newest first.
func (r *MemoryRepo) ListInterviewSessionsByUser(ctx context.Context, userID string) ([]InterviewSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]InterviewSession(nil), r.interviews[userID]...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out, nil
}
