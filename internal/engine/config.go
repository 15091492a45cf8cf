package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	MaxJobTextChars      int           // postings longer than this are truncated before matching
	MaxContentChars      int           // cap on text extracted from a fetched posting page
	FetchTimeout         time.Duration // per-URL fetch deadline
	FetchRatePerSec      float64       // outbound posting fetches per second; <= 0 disables limiting
	FetchBurst           int
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HistoryDBPath        string // SQLite match history; empty = $HOME/.go_jdmatch/history.db
	DatabaseURL          string // Postgres profile store; empty = profile tools disabled
	HTTPClient           *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (store, toolutil).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.MaxJobTextChars <= 0 {
		c.MaxJobTextChars = 50000
	}
	if c.MaxContentChars <= 0 {
		c.MaxContentChars = 20000
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 10 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = newFetchClient()
	}
	cfg = c
	Cfg = &cfg
	initFetchLimiter(c.FetchRatePerSec, c.FetchBurst)
}
