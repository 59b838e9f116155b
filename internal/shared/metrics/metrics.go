package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	momentDetectedTotal     atomic.Uint64
	directAnswersTotal      atomic.Uint64
	generationCallsTotal    atomic.Uint64
	generationFallbackTotal atomic.Uint64
	messageCacheHitTotal    atomic.Uint64
	messageCacheMissTotal   atomic.Uint64

	generationDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncMomentDetected increments the moments counter.
func IncMomentDetected() {
	momentDetectedTotal.Add(1)
}

// IncDirectAnswer increments the direct-answer counter.
func IncDirectAnswer() {
	directAnswersTotal.Add(1)
}

// IncGenerationCall increments the provider-call counter.
func IncGenerationCall() {
	generationCallsTotal.Add(1)
}

// IncGenerationFallback increments the fallback counter.
func IncGenerationFallback() {
	generationFallbackTotal.Add(1)
}

// IncMessageCacheHit increments the cache-hit counter.
func IncMessageCacheHit() {
	messageCacheHitTotal.Add(1)
}

// IncMessageCacheMiss increments the cache-miss counter.
func IncMessageCacheMiss() {
	messageCacheMissTotal.Add(1)
}

// ObserveGenerationDurationMs records one provider call duration in milliseconds.
func ObserveGenerationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generationDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "moment_detected_total", "Total moments detected", momentDetectedTotal.Load())
	writeCounter(&buf, "direct_answers_total", "Total questions answered from stored facts", directAnswersTotal.Load())
	writeCounter(&buf, "generation_calls_total", "Total text-generation provider calls", generationCallsTotal.Load())
	writeCounter(&buf, "generation_fallback_total", "Total fallbacks after failed or empty generation", generationFallbackTotal.Load())
	writeCounter(&buf, "message_cache_hit_total", "Total rendered-message cache hits", messageCacheHitTotal.Load())
	writeCounter(&buf, "message_cache_miss_total", "Total rendered-message cache misses", messageCacheMissTotal.Load())
	writeHistogram(&buf, "generation_duration_ms", "Provider call duration in milliseconds", generationDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
