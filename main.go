// go_jdmatch is a job-description matching MCP server.
//
// Exposes jd_match, jd_quick_score, jd_suggested_skills and jd_extract_requirements,
// plus match history (SQLite) and, with DATABASE_URL, candidate profile tools (Postgres).
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_jdmatch/internal/engine"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/store"
	"github.com/anatolykoptev/go_jdmatch/internal/jobserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_jdmatch",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_jdmatch",
		Version: version,
	}, nil)

	n := jobserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", n))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_jdmatch",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		MaxJobTextChars:      env.Int("MAX_JOB_TEXT_CHARS", 50000),
		MaxContentChars:      env.Int("MAX_CONTENT_CHARS", 20000),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		FetchRatePerSec:      env.Float("FETCH_RATE_PER_SEC", 2),
		FetchBurst:           env.Int("FETCH_BURST", 4),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HistoryDBPath:        env.Str("HISTORY_DB_PATH", ""),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
	}
	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	// Match history (SQLite). Failure only disables history tools at call time.
	if _, err := store.OpenHistory(); err != nil {
		slog.Warn("history DB init failed", slog.Any("error", err))
	} else {
		slog.Info("history DB initialized")
	}

	// Profile store (PostgreSQL)
	if c.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		pdb, err := store.ConnectProfileDB(ctx, c.DatabaseURL)
		if err != nil {
			slog.Warn("profile DB init failed", slog.Any("error", err))
		} else {
			store.SetProfileDB(pdb)
			slog.Info("profile DB initialized")
		}
	}
}
