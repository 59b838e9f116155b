package engine

import (
	"context"
	"testing"
	"time"

	"jobtrack-backend/internal/insights"
	"jobtrack-backend/internal/llm"
	"jobtrack-backend/internal/messages"
	"jobtrack-backend/internal/moments"
	"jobtrack-backend/internal/records"
)

var svcNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type countingLLM struct {
	calls int
	out   string
}

func (c *countingLLM) Generate(ctx context.Context, prompt string) (string, error) {
	c.calls++
	return c.out, nil
}

var _ llm.Client = (*countingLLM)(nil)

func newTestService(t *testing.T, client llm.Client) (*Service, *records.MemoryRepo) {
	t.Helper()
	repo := records.NewMemoryRepo()
	clock := func() time.Time { return svcNow }
	renderer := messages.NewRenderer(client, messages.NewCache(messages.DefaultTTL, clock), clock)
	return NewService(repo, renderer, clock), repo
}

func seedApplications(t *testing.T, repo *records.MemoryRepo, apps ...records.Application) {
	t.Helper()
	for _, app := range apps {
		if err := repo.CreateApplication(context.Background(), app); err != nil {
			t.Fatalf("CreateApplication: %v", err)
		}
	}
}

func TestBriefNewUser(t *testing.T) {
	svc, _ := newTestService(t, nil)

	briefing, err := svc.Brief(context.Background(), "user-1", false)
	if err != nil {
		t.Fatalf("Brief: %v", err)
	}
	if briefing.Moment.Kind != moments.NewUser {
		t.Fatalf("expected new-user moment, got %s", briefing.Moment.Kind)
	}
	if briefing.Message.Title == "" || briefing.Message.Body == "" {
		t.Fatalf("expected rendered message, got %+v", briefing.Message)
	}
}

func TestBriefOfferUsesGeneratedBody(t *testing.T) {
	client := &countingLLM{out: "Take a breath before you answer Acme."}
	svc, repo := newTestService(t, client)
	seedApplications(t, repo, records.Application{
		ID: "a1", UserID: "user-1", Company: "Acme", Title: "Backend Engineer",
		Status: records.StatusOffer, AppliedAt: svcNow.AddDate(0, 0, -3),
	})

	briefing, err := svc.Brief(context.Background(), "user-1", false)
	if err != nil {
		t.Fatalf("Brief: %v", err)
	}
	if briefing.Moment.Kind != moments.OfferReceived {
		t.Fatalf("expected offer-received, got %s", briefing.Moment.Kind)
	}
	if briefing.Message.Body != client.out {
		t.Fatalf("expected generated body, got %q", briefing.Message.Body)
	}

	// A second briefing inside the TTL reuses the cached message.
	if _, err := svc.Brief(context.Background(), "user-1", false); err != nil {
		t.Fatalf("Brief: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", client.calls)
	}
}

func TestQueryDirectSkipsProvider(t *testing.T) {
	client := &countingLLM{out: "never used"}
	svc, repo := newTestService(t, client)
	seedApplications(t, repo,
		records.Application{ID: "a1", UserID: "user-1", Company: "Acme", Status: records.StatusApplied, AppliedAt: svcNow.AddDate(0, 0, -2)},
		records.Application{ID: "a2", UserID: "user-1", Company: "Globex", Status: records.StatusInterview, AppliedAt: svcNow.AddDate(0, 0, -5)},
	)

	result, err := svc.Query(context.Background(), "user-1", "what's my conversion rate?", false, false)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !result.Direct || result.Answer == "" {
		t.Fatalf("expected direct answer, got %+v", result)
	}
	if result.NeedsGeneration || result.Snapshot != nil {
		t.Fatalf("expected no delegation on direct route, got %+v", result)
	}
	if client.calls != 0 {
		t.Fatalf("expected 0 provider calls, got %d", client.calls)
	}
}

func TestQueryDelegatesWithSnapshot(t *testing.T) {
	svc, repo := newTestService(t, nil)
	seedApplications(t, repo, records.Application{
		ID: "a1", UserID: "user-1", Company: "Acme", Status: records.StatusApplied, AppliedAt: svcNow.AddDate(0, 0, -2),
	})

	result, err := svc.Query(context.Background(), "user-1", "should I accept a counteroffer?", false, false)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if result.Direct {
		t.Fatalf("expected delegation, got direct answer %q", result.Answer)
	}
	if !result.NeedsGeneration || result.Snapshot == nil {
		t.Fatalf("expected snapshot attached for generation, got %+v", result)
	}
	if result.Snapshot.TotalApplications != 1 {
		t.Fatalf("expected snapshot with 1 application, got %d", result.Snapshot.TotalApplications)
	}
	if result.Question != "should I accept a counteroffer?" {
		t.Fatalf("expected question carried, got %q", result.Question)
	}
}

func TestQueryAttachesSuggestion(t *testing.T) {
	svc, repo := newTestService(t, nil)
	seedApplications(t, repo, records.Application{
		ID: "a1", UserID: "user-1", Company: "Acme", Status: records.StatusApplied, AppliedAt: svcNow.AddDate(0, 0, -2),
	})

	// No stored analysis: the first-analysis suggestion rides along even on a
	// direct route.
	result, err := svc.Query(context.Background(), "user-1", "how many applications am I tracking?", false, false)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !result.Direct {
		t.Fatalf("expected direct answer")
	}
	if result.Action == nil || result.Action.Type != "run-analysis" {
		t.Fatalf("expected run-analysis suggestion, got %+v", result.Action)
	}
}

func intakeEmployedStuck() insights.Intake {
	return insights.Intake{
		Role:          "Backend Engineer",
		CurrentStatus: insights.StatusEmployed,
		TimeInStatus:  insights.TimeOver1Year,
		Urgency:       5,
		Objective:     insights.ObjectiveAdvanceProcess,
	}
}

func TestClassifyInsightPassthrough(t *testing.T) {
	svc, _ := newTestService(t, nil)

	got := svc.ClassifyInsight(intakeEmployedStuck())
	if got.Archetype != "movement-vs-progress" {
		t.Fatalf("expected movement-vs-progress, got %s", got.Archetype)
	}
	if got.Confidence != "high" {
		t.Fatalf("expected high confidence, got %s", got.Confidence)
	}
}
