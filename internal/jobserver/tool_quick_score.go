package jobserver

import (
	"context"

	"github.com/anatolykoptev/go_jdmatch/internal/engine"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"
	"github.com/anatolykoptev/go_jdmatch/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxSuggestedSkills caps jd_suggested_skills.
const maxSuggestedSkills = 5

func registerQuickScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "jd_quick_score",
		Description: "Quick compatibility check between a candidate CV and a job description (text or URL). Returns only the 0-100 score, letter grade (A-F) and grade label.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.QuickScoreInput) (*mcp.CallToolResult, engine.QuickScoreOutput, error) {
		out, err := handleQuickScore(ctx, input)
		if err != nil {
			return nil, engine.QuickScoreOutput{}, err
		}
		return nil, out, nil
	})
}

func handleQuickScore(ctx context.Context, input engine.QuickScoreInput) (engine.QuickScoreOutput, error) {
	profile, err := toolutil.ResolveProfile(ctx, input.Profile, input.ProfileID)
	if err != nil {
		return engine.QuickScoreOutput{}, err
	}
	posting, err := toolutil.ResolvePosting(ctx, input.JobDescription, input.JobURL)
	if err != nil {
		return engine.QuickScoreOutput{}, err
	}

	engine.IncrQuickScoreCalls()
	score := jdmatch.QuickMatchScore(profile, posting.Text)
	grade, label := jdmatch.Grade(score)
	return engine.QuickScoreOutput{Score: score, Grade: grade, GradeLabel: label}, nil
}

func registerSuggestedSkills(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "jd_suggested_skills",
		Description: "List up to 5 skills the job description asks for that the candidate CV does not mention, in catalog order (hard skills first). Use to decide what to add to a CV before applying.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SuggestedSkillsInput) (*mcp.CallToolResult, engine.SuggestedSkillsOutput, error) {
		out, err := handleSuggestedSkills(ctx, input)
		if err != nil {
			return nil, engine.SuggestedSkillsOutput{}, err
		}
		return nil, out, nil
	})
}

func handleSuggestedSkills(ctx context.Context, input engine.SuggestedSkillsInput) (engine.SuggestedSkillsOutput, error) {
	profile, err := toolutil.ResolveProfile(ctx, input.Profile, input.ProfileID)
	if err != nil {
		return engine.SuggestedSkillsOutput{}, err
	}
	posting, err := toolutil.ResolvePosting(ctx, input.JobDescription, input.JobURL)
	if err != nil {
		return engine.SuggestedSkillsOutput{}, err
	}

	engine.IncrSuggestedSkillsCalls()
	skills := jdmatch.SuggestedSkills(profile, posting.Text)
	if limit := toolutil.ClampLimit(input.Limit, maxSuggestedSkills, maxSuggestedSkills); len(skills) > limit {
		skills = skills[:limit]
	}
	return engine.SuggestedSkillsOutput{Skills: skills}, nil
}
