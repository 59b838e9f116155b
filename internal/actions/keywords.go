package actions

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Keyword lists are stored pre-normalized (lowercase, accents stripped).
// Matching is substring over the normalized question, so "résumé review"
// matches "resume".

var careerDirectionKeywords = []string{
	"career path",
	"career change",
	"change careers",
	"right career",
	"switch fields",
	"pivot",
	"direction",
	"what should i do next",
	"where is my career going",
}

var interviewPrepKeywords = []string{
	"interview",
	"prepare for",
	"practice questions",
	"mock session",
	"behavioral questions",
	"technical screen",
}

var metricsKeywords = []string{
	"conversion",
	"response rate",
	"how am i doing",
	"my numbers",
	"my stats",
	"progress",
	"pipeline",
	"success rate",
}

func matchesAny(normalizedQuestion string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(normalizedQuestion, kw) {
			return true
		}
	}
	return false
}

// normalizeQuestion lowercases and strips combining accents so matching is
// accent-insensitive. The transformer chain is per-call; chains carry state
// and are not safe to share.
func normalizeQuestion(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, lowered)
	if err != nil {
		return lowered
	}
	return out
}
