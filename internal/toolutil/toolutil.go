// Package toolutil provides shared helper functions for go_jdmatch MCP tools.
package toolutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_jdmatch/internal/engine"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/store"
)

// ResolvePosting returns the posting for a tool call: inline text wins, else the
// URL is served from cache or fetched. Inline text is capped at MaxJobTextChars.
func ResolvePosting(ctx context.Context, text, jobURL string) (*engine.Posting, error) {
	jobURL = strings.TrimSpace(jobURL)
	if strings.TrimSpace(text) != "" {
		return &engine.Posting{
			URL:  jobURL,
			Text: engine.TruncateRunes(text, engine.Cfg.MaxJobTextChars, ""),
		}, nil
	}
	if jobURL == "" {
		return nil, errors.New("job_description or job_url is required")
	}

	if cached, ok := engine.CacheGetPosting(ctx, jobURL); ok {
		slog.Debug("posting cache hit", slog.String("url", jobURL))
		return &cached, nil
	}

	p, err := engine.FetchPosting(ctx, jobURL)
	if err != nil {
		return nil, err
	}
	engine.CacheSetPosting(ctx, *p)
	return p, nil
}

// ResolveProfile returns the inline profile, or loads the saved one by id.
func ResolveProfile(ctx context.Context, p *jdmatch.Profile, id int64) (*jdmatch.Profile, error) {
	if p != nil {
		return p, nil
	}
	if id <= 0 {
		return nil, errors.New("profile or profile_id is required")
	}
	db := store.GetProfileDB()
	if db == nil {
		return nil, errors.New("profile_id requires DATABASE_URL to be configured")
	}
	sp, err := db.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return sp.Profile, nil
}

// ClampLimit returns def for a non-positive n and caps n at hi.
func ClampLimit(n, def, hi int) int {
	switch {
	case n <= 0:
		return def
	case n > hi:
		return hi
	}
	return n
}
