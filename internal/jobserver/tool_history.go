package jobserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_jdmatch/internal/engine/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerMatchHistoryList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_history_list",
		Description: "List matches saved with jd_match save=true, newest first. Each entry has the candidate, posting title/URL, score, grade and missing skills. Optionally filter by min_score.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input store.MatchHistoryListInput) (*mcp.CallToolResult, *store.MatchHistoryListOutput, error) {
		if input.MinScore < 0 || input.MinScore > 100 {
			return nil, nil, errors.New("min_score must be between 0 and 100")
		}
		entries, total, err := store.ListMatches(ctx, store.HistoryFilter{Limit: input.Limit, MinScore: input.MinScore})
		if err != nil {
			return nil, nil, err
		}
		return nil, &store.MatchHistoryListOutput{Matches: entries, Total: total}, nil
	})
}

func registerMatchHistoryGet(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_history_get",
		Description: "Get one saved match by ID, including the full match result (breakdown, actions, insights). Get IDs from match_history_list.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input store.MatchHistoryGetInput) (*mcp.CallToolResult, *store.HistoryRecord, error) {
		if input.ID <= 0 {
			return nil, nil, errors.New("id is required")
		}
		rec, err := store.GetMatch(ctx, input.ID)
		if err != nil {
			return nil, nil, err
		}
		return nil, rec, nil
	})
}
