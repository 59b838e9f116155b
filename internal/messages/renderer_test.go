package messages

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobtrack-backend/internal/moments"
)

var renderNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

// fakeClient counts provider calls and returns a scripted response.
type fakeClient struct {
	calls int
	out   string
	err   error
}

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.out, f.err
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestRenderStaticMomentsSkipProvider(t *testing.T) {
	client := &fakeClient{out: "should never appear"}
	r := NewRenderer(client, nil, fixedClock(renderNow))

	kinds := []moments.Kind{moments.PendingAnalysis, moments.MultipleStale, moments.LowActivity, moments.NewUser}
	for _, kind := range kinds {
		msg := r.Render(context.Background(), moments.Moment{Kind: kind, Count: 3, Days: 10})
		if msg.Title == "" || msg.Body == "" {
			t.Fatalf("%s: expected non-empty static copy, got %+v", kind, msg)
		}
		if msg.Primary.Label == "" || msg.Primary.Target == "" {
			t.Fatalf("%s: expected a primary action", kind)
		}
	}
	if client.calls != 0 {
		t.Fatalf("expected 0 provider calls for static moments, got %d", client.calls)
	}
}

func TestRenderGenerativeCachesWithinTTL(t *testing.T) {
	current := renderNow
	clock := func() time.Time { return current }
	client := &fakeClient{out: "Congratulations on the Acme offer."}
	r := NewRenderer(client, NewCache(DefaultTTL, clock), clock)

	m := moments.Moment{Kind: moments.OfferReceived, Company: "Acme", Title: "Backend Engineer"}

	first := r.Render(context.Background(), m)
	if first.Body != "Congratulations on the Acme offer." {
		t.Fatalf("expected generated body, got %q", first.Body)
	}
	if first.Title != "You have an offer on the table" {
		t.Fatalf("expected fixed title frame, got %q", first.Title)
	}

	// Repeated renders inside the TTL reuse the cached message.
	for i := 0; i < 4; i++ {
		current = current.Add(time.Hour)
		got := r.Render(context.Background(), m)
		if got != first {
			t.Fatalf("expected cached message, got %+v", got)
		}
	}
	if client.calls != 1 {
		t.Fatalf("expected exactly 1 provider call inside TTL, got %d", client.calls)
	}

	// Past the TTL the provider is consulted again.
	current = renderNow.Add(DefaultTTL)
	r.Render(context.Background(), m)
	if client.calls != 2 {
		t.Fatalf("expected regeneration after TTL, got %d calls", client.calls)
	}
}

func TestRenderCacheKeyedByMomentContext(t *testing.T) {
	client := &fakeClient{out: "generated"}
	r := NewRenderer(client, NewCache(DefaultTTL, fixedClock(renderNow)), fixedClock(renderNow))

	r.Render(context.Background(), moments.Moment{Kind: moments.NeedsFollowup, Company: "Acme", Days: 8})
	r.Render(context.Background(), moments.Moment{Kind: moments.NeedsFollowup, Company: "Globex", Days: 8})
	r.Render(context.Background(), moments.Moment{Kind: moments.NeedsFollowup, Company: "Acme", Days: 9})

	if client.calls != 3 {
		t.Fatalf("expected distinct contexts to generate separately, got %d calls", client.calls)
	}
}

func TestRenderFallbackOnProviderError(t *testing.T) {
	client := &fakeClient{err: errors.New("http status 503")}
	r := NewRenderer(client, nil, fixedClock(renderNow))

	m := moments.Moment{Kind: moments.NeedsFollowup, Company: "Acme", Days: 12}
	msg := r.Render(context.Background(), m)
	if msg.Title != "Time to follow up" || msg.Body == "" {
		t.Fatalf("expected fallback copy, got %+v", msg)
	}

	// Failures are not cached; the next render tries the provider again.
	r.Render(context.Background(), m)
	if client.calls != 2 {
		t.Fatalf("expected retry on next render after failure, got %d calls", client.calls)
	}
}

func TestRenderFallbackOnEmptyCompletion(t *testing.T) {
	client := &fakeClient{out: "   "}
	r := NewRenderer(client, nil, fixedClock(renderNow))

	msg := r.Render(context.Background(), moments.Moment{Kind: moments.OfferReceived, Company: "Acme"})
	if msg.Body == "" {
		t.Fatalf("expected non-empty fallback body")
	}
}

func TestRenderNilClientUsesFallback(t *testing.T) {
	r := NewRenderer(nil, nil, fixedClock(renderNow))

	kinds := []moments.Kind{
		moments.OfferReceived,
		moments.InterviewUpcoming,
		moments.InterviewFeedbackFresh,
		moments.NeedsFollowup,
		moments.GeneralSummary,
	}
	for _, kind := range kinds {
		msg := r.Render(context.Background(), moments.Moment{Kind: kind, Company: "Acme", Days: 10})
		if msg.Title == "" || msg.Body == "" {
			t.Fatalf("%s: expected complete fallback message, got %+v", kind, msg)
		}
	}
}

func TestFillPrompt(t *testing.T) {
	m := moments.Moment{Company: "Acme", Title: "Backend Engineer", Days: 12, Total: 5, Active: 2}
	got := fillPrompt("{{company}} / {{title}} / {{days}} / {{total}} / {{active}}", m)
	want := "Acme / Backend Engineer / 12 / 5 / 2"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCacheExpiry(t *testing.T) {
	current := renderNow
	c := NewCache(time.Hour, func() time.Time { return current })

	c.Put("k", Message{Title: "t"})
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	current = current.Add(time.Hour)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss at TTL boundary")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry evicted, len=%d", c.Len())
	}
}

func TestRotatingTipWindow(t *testing.T) {
	base := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	within := rotatingTip(base.Add(5 * time.Hour))
	if got := rotatingTip(base); got != within {
		t.Fatalf("expected same tip within window, got %q vs %q", got, within)
	}
	if got := rotatingTip(base.Add(6 * time.Hour)); got == within {
		t.Fatalf("expected tip to rotate after window")
	}

	// A full cycle comes back to the start.
	cycle := time.Duration(len(rotatingTips)) * tipRotationWindow
	if got := rotatingTip(base.Add(cycle)); got != rotatingTip(base) {
		t.Fatalf("expected cycle to wrap to the same tip")
	}
}
