package jobserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_jdmatch/internal/engine/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerProfileSave(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_save",
		Description: "Save a candidate CV to the profile store (PostgreSQL). Pass id to overwrite an existing profile. The returned ID can be used as profile_id in jd_match, jd_quick_score and jd_suggested_skills.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input store.ProfileSaveInput) (*mcp.CallToolResult, *store.ProfileSaveOutput, error) {
		if input.Profile == nil {
			return nil, nil, errors.New("profile is required")
		}
		id, err := store.GetProfileDB().SaveProfile(ctx, input.ID, input.Profile)
		if err != nil {
			return nil, nil, err
		}
		return nil, &store.ProfileSaveOutput{
			ID:      id,
			Message: fmt.Sprintf("Profile '%s' saved (id=%d)", input.Profile.Name, id),
		}, nil
	})
}

func registerProfileGet(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_get",
		Description: "Get a saved candidate profile by ID.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input store.ProfileGetInput) (*mcp.CallToolResult, *store.StoredProfile, error) {
		if input.ID <= 0 {
			return nil, nil, errors.New("id is required")
		}
		sp, err := store.GetProfileDB().GetProfile(ctx, input.ID)
		if err != nil {
			return nil, nil, err
		}
		return nil, sp, nil
	})
}

func registerProfileList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_list",
		Description: "List saved candidate profiles (id, name, profession), most recently updated first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input store.ProfileListInput) (*mcp.CallToolResult, *store.ProfileListOutput, error) {
		profiles, err := store.GetProfileDB().ListProfiles(ctx, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, &store.ProfileListOutput{Profiles: profiles}, nil
	})
}
