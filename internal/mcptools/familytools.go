package mcptools

import (
	"github.com/dusk-indust/pedigree/internal/graph"
	"github.com/dusk-indust/pedigree/internal/model"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// LoadGedcomInput is the input for the load_gedcom MCP tool.
type LoadGedcomInput struct {
	Path string `json:"path" jsonschema:"the absolute path to the GEDCOM file to load"`
}

// LoadGedcomOutput is the result of the load_gedcom MCP tool.
type LoadGedcomOutput struct {
	Source string      `json:"source"`
	Stats  graph.Stats `json:"stats"`
}

// GetAncestorsInput is the input for the get_ancestors MCP tool.
type GetAncestorsInput struct {
	ProfileID      string `json:"profileId" jsonschema:"cross-reference id of the start individual, e.g. @I1@"`
	MaxGenerations int    `json:"maxGenerations,omitempty" jsonschema:"generation bound; 0 returns only the start individual (default: 5)"`
}

// GetAncestorsOutput is the result of the get_ancestors MCP tool.
type GetAncestorsOutput struct {
	Profiles []model.Profile `json:"profiles"`
	Total    int             `json:"total"`
}

// GetDescendantsInput is the input for the get_descendants MCP tool.
type GetDescendantsInput struct {
	ProfileID      string `json:"profileId" jsonschema:"cross-reference id of the start individual"`
	MaxGenerations int    `json:"maxGenerations,omitempty" jsonschema:"generation bound; 0 returns only the start individual (default: 5)"`
}

// GetDescendantsOutput is the result of the get_descendants MCP tool.
type GetDescendantsOutput struct {
	Profiles []model.Profile `json:"profiles"`
	Total    int             `json:"total"`
}

// ImmediateFamilyInput is the input for the immediate_family MCP tool.
type ImmediateFamilyInput struct {
	ProfileID string `json:"profileId" jsonschema:"cross-reference id of the individual"`
}

// ImmediateFamilyOutput is the result of the immediate_family MCP tool.
type ImmediateFamilyOutput struct {
	Circle graph.FamilyCircle `json:"circle"`
}

// QueryProfilesInput is the input for the query_profiles MCP tool.
type QueryProfilesInput struct {
	Query string `json:"query" jsonschema:"search query matched against full names (substring, case-insensitive)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default: 20)"`
}

// QueryProfilesOutput is the result of the query_profiles MCP tool.
type QueryProfilesOutput struct {
	Profiles []model.Profile `json:"profiles"`
	Total    int             `json:"total"`
}

// GraphStatsInput is the input for the graph_stats MCP tool.
type GraphStatsInput struct{}

// GraphStatsOutput is the result of the graph_stats MCP tool.
type GraphStatsOutput struct {
	Source string      `json:"source,omitempty"`
	Stats  graph.Stats `json:"stats"`
}
