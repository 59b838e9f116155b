package messages

import (
	"context"
	"strconv"
	"strings"
	"time"

	"jobtrack-backend/internal/llm"
	"jobtrack-backend/internal/moments"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/telemetry"
)

// Renderer renders moments into messages. The cache is the only shared
// mutable state; everything else is read-only.
type Renderer struct {
	llm   llm.Client
	cache *Cache
	now   func() time.Time
}

// NewRenderer constructs a Renderer. client may be nil, in which case every
// generative moment renders its fallback. A nil clock falls back to time.Now.
func NewRenderer(client llm.Client, cache *Cache, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	if cache == nil {
		cache = NewCache(DefaultTTL, now)
	}
	return &Renderer{llm: client, cache: cache, now: now}
}

// Render produces the message for a moment. Static moments never touch the
// provider; generative ones go through the cache and fall back to fixed copy
// on any provider failure.
func (r *Renderer) Render(ctx context.Context, m moments.Moment) Message {
	if msg, ok := staticMessage(m); ok {
		return msg
	}

	key := cacheKey(m)
	if msg, ok := r.cache.Get(key); ok {
		metrics.IncMessageCacheHit()
		return msg
	}
	metrics.IncMessageCacheMiss()

	body, err := r.generateBody(ctx, m)
	if err != nil || strings.TrimSpace(body) == "" {
		if err != nil {
			telemetry.Error("messages.generate_failed", map[string]any{
				"moment": string(m.Kind),
				"error":  err.Error(),
			})
		}
		metrics.IncGenerationFallback()
		return r.fallback(m)
	}

	msg := generativeFrame(m)
	msg.Body = strings.TrimSpace(body)
	r.cache.Put(key, msg)
	return msg
}

func (r *Renderer) generateBody(ctx context.Context, m moments.Moment) (string, error) {
	if r.llm == nil {
		return "", nil
	}
	template, ok := llm.PromptTemplate(string(m.Kind))
	if !ok {
		return "", nil
	}

	start := r.now()
	out, err := r.llm.Generate(ctx, fillPrompt(template, m))
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.IncGenerationCall()
	return out, err
}

func (r *Renderer) fallback(m moments.Moment) Message {
	return fallbackMessage(m, rotatingTip(r.now()))
}

func fillPrompt(template string, m moments.Moment) string {
	replacer := strings.NewReplacer(
		"{{company}}", m.Company,
		"{{title}}", m.Title,
		"{{role}}", m.Role,
		"{{days}}", strconv.Itoa(m.Days),
		"{{total}}", strconv.Itoa(m.Total),
		"{{active}}", strconv.Itoa(m.Active),
	)
	return replacer.Replace(template)
}

func cacheKey(m moments.Moment) string {
	parts := []string{string(m.Kind)}
	if m.Company != "" {
		parts = append(parts, m.Company)
	}
	if m.Role != "" {
		parts = append(parts, m.Role)
	}
	if m.Days > 0 {
		parts = append(parts, strconv.Itoa(m.Days))
	}
	if m.Kind == moments.GeneralSummary {
		parts = append(parts, strconv.Itoa(m.Total), strconv.Itoa(m.Active))
	}
	return strings.Join(parts, "|")
}
