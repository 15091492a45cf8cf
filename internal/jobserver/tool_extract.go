package jobserver

import (
	"context"

	"github.com/anatolykoptev/go_jdmatch/internal/engine"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"
	"github.com/anatolykoptev/go_jdmatch/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerExtractRequirements(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "jd_extract_requirements",
		Description: "Extract structured requirements from a job description (text or URL) without a candidate: hard skills, soft skills, experience markers, required years, education terms, certifications, tools, and the top frequent keywords.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ExtractInput) (*mcp.CallToolResult, engine.ExtractOutput, error) {
		out, err := handleExtract(ctx, input)
		if err != nil {
			return nil, engine.ExtractOutput{}, err
		}
		return nil, out, nil
	})
}

func handleExtract(ctx context.Context, input engine.ExtractInput) (engine.ExtractOutput, error) {
	posting, err := toolutil.ResolvePosting(ctx, input.JobDescription, input.JobURL)
	if err != nil {
		return engine.ExtractOutput{}, err
	}

	engine.IncrExtractCalls()
	return engine.ExtractOutput{
		PostingTitle:  engine.PostingTitle(posting.Title, posting.Text),
		RequiredYears: jdmatch.RequiredYears(posting.Text),
		Requirements:  jdmatch.ExtractRequirements(posting.Text),
	}, nil
}
