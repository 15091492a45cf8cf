package jobserver

import (
	"github.com/anatolykoptev/go_jdmatch/internal/engine/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the matching and history tools on the given MCP server.
// Profile tools are added only when a profile store is configured.
// Returns the number of tools registered.
func RegisterTools(server *mcp.Server) int {
	registerMatch(server)
	registerQuickScore(server)
	registerSuggestedSkills(server)
	registerExtractRequirements(server)
	registerMatchHistoryList(server)
	registerMatchHistoryGet(server)
	n := 6

	if store.GetProfileDB() != nil {
		registerProfileSave(server)
		registerProfileGet(server)
		registerProfileList(server)
		n += 3
	}
	return n
}
