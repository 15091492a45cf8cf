package jobserver

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_jdmatch/internal/engine"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/store"
	"github.com/anatolykoptev/go_jdmatch/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerMatch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "jd_match",
		Description: "Match a candidate CV against a job description. Extracts hard/soft skills, keywords, experience and education requirements from the posting (text or URL) and returns a 0-100 score, letter grade, per-component breakdown, matched/missing skills and keywords, experience and education assessments, up to 8 prioritized actions, and insights. Set save=true to record the result in match history.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.MatchInput) (*mcp.CallToolResult, engine.MatchOutput, error) {
		out, err := handleMatch(ctx, input)
		if err != nil {
			return nil, engine.MatchOutput{}, err
		}
		return nil, out, nil
	})
}

func handleMatch(ctx context.Context, input engine.MatchInput) (engine.MatchOutput, error) {
	profile, err := toolutil.ResolveProfile(ctx, input.Profile, input.ProfileID)
	if err != nil {
		return engine.MatchOutput{}, err
	}
	posting, err := toolutil.ResolvePosting(ctx, input.JobDescription, input.JobURL)
	if err != nil {
		return engine.MatchOutput{}, err
	}

	engine.IncrMatchCalls()
	r := jdmatch.Match(profile, posting.Text)
	out := engine.MatchOutput{
		PostingTitle: engine.PostingTitle(posting.Title, posting.Text),
		Result:       r,
	}

	if input.Save {
		id, err := store.SaveMatch(ctx, profile.Name, posting, r)
		if err != nil {
			slog.Warn("jd_match: history save failed", slog.Any("error", err))
		} else {
			out.HistoryID = id
		}
	}

	slog.Debug("jd_match", slog.Int("score", r.Score), slog.String("grade", r.Grade),
		slog.Int("missing_skills", len(r.MissingSkills)))
	return out, nil
}
