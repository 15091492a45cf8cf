package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// metrics tracks operational counters across the server.
var metrics struct {
	MatchCalls           atomic.Int64
	QuickScoreCalls      atomic.Int64
	SuggestedSkillsCalls atomic.Int64
	ExtractCalls         atomic.Int64
	FetchRequests        atomic.Int64
	FetchErrors          atomic.Int64
	HistoryWrites        atomic.Int64
	ProfileReads         atomic.Int64
}

var metricKeys = []string{
	"match_calls", "quick_score_calls", "suggested_skills_calls", "extract_calls",
	"fetch_requests", "fetch_errors",
	"history_writes", "profile_reads",
	"cache_hits", "cache_misses",
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"match_calls":            metrics.MatchCalls.Load(),
		"quick_score_calls":      metrics.QuickScoreCalls.Load(),
		"suggested_skills_calls": metrics.SuggestedSkillsCalls.Load(),
		"extract_calls":          metrics.ExtractCalls.Load(),
		"fetch_requests":         metrics.FetchRequests.Load(),
		"fetch_errors":           metrics.FetchErrors.Load(),
		"history_writes":         metrics.HistoryWrites.Load(),
		"profile_reads":          metrics.ProfileReads.Load(),
		"cache_hits":             hits,
		"cache_misses":           misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for jobserver tools and store.
func IncrMatchCalls()           { metrics.MatchCalls.Add(1) }
func IncrQuickScoreCalls()      { metrics.QuickScoreCalls.Add(1) }
func IncrSuggestedSkillsCalls() { metrics.SuggestedSkillsCalls.Add(1) }
func IncrExtractCalls()         { metrics.ExtractCalls.Add(1) }
func IncrHistoryWrites()        { metrics.HistoryWrites.Add(1) }
func IncrProfileReads()         { metrics.ProfileReads.Add(1) }
