package mcptools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dusk-indust/pedigree/internal/gedcom"
	"github.com/dusk-indust/pedigree/internal/graph"
	"github.com/dusk-indust/pedigree/internal/model"
)

// defaultGenerations bounds traversal when the caller does not specify one.
const defaultGenerations = 5

// FamilyService holds the loaded family model and its relationship graph
// for the MCP tool handlers. The HTTP handler serves tools concurrently,
// so the model/graph swap in LoadGedcom is guarded by a RWMutex; a built
// graph itself is read-only.
type FamilyService struct {
	mu     sync.RWMutex
	source string
	graph  *graph.Graph
}

// NewFamilyService creates an empty FamilyService; load_gedcom populates it.
func NewFamilyService() *FamilyService {
	return &FamilyService{}
}

// SetModel installs a pre-loaded model (the CLI path) and builds its graph.
func (s *FamilyService) SetModel(m *model.FamilyModel) error {
	if err := m.Validate(); err != nil {
		return err
	}
	g := graph.Build(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = m.Provenance.Source
	s.graph = g
	return nil
}

// snapshot returns the current graph, or an error when nothing is loaded.
func (s *FamilyService) snapshot() (*graph.Graph, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return nil, "", fmt.Errorf("no family data loaded; call load_gedcom first")
	}
	return s.graph, s.source, nil
}

// LoadGedcom parses a GEDCOM file, builds the relationship graph, and
// replaces any previously loaded data.
func (s *FamilyService) LoadGedcom(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LoadGedcomInput,
) (*mcp.CallToolResult, LoadGedcomOutput, error) {
	if input.Path == "" {
		return nil, LoadGedcomOutput{}, fmt.Errorf("path is required")
	}

	m, err := gedcom.LoadFile(input.Path)
	if err != nil {
		return nil, LoadGedcomOutput{}, fmt.Errorf("load gedcom: %w", err)
	}
	if err := s.SetModel(m); err != nil {
		return nil, LoadGedcomOutput{}, fmt.Errorf("load gedcom: %w", err)
	}

	g, source, _ := s.snapshot()
	return nil, LoadGedcomOutput{Source: source, Stats: *g.Stats()}, nil
}

// GetAncestors walks upward from an individual up to the generation bound.
func (s *FamilyService) GetAncestors(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetAncestorsInput,
) (*mcp.CallToolResult, GetAncestorsOutput, error) {
	g, _, err := s.snapshot()
	if err != nil {
		return nil, GetAncestorsOutput{}, err
	}
	if input.ProfileID == "" {
		return nil, GetAncestorsOutput{}, fmt.Errorf("profileId is required")
	}

	maxGen := input.MaxGenerations
	if maxGen <= 0 {
		maxGen = defaultGenerations
	}

	profiles := graph.Ancestors(g, input.ProfileID, maxGen)
	return nil, GetAncestorsOutput{Profiles: profiles, Total: len(profiles)}, nil
}

// GetDescendants walks downward from an individual up to the generation bound.
func (s *FamilyService) GetDescendants(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetDescendantsInput,
) (*mcp.CallToolResult, GetDescendantsOutput, error) {
	g, _, err := s.snapshot()
	if err != nil {
		return nil, GetDescendantsOutput{}, err
	}
	if input.ProfileID == "" {
		return nil, GetDescendantsOutput{}, fmt.Errorf("profileId is required")
	}

	maxGen := input.MaxGenerations
	if maxGen <= 0 {
		maxGen = defaultGenerations
	}

	profiles := graph.Descendants(g, input.ProfileID, maxGen)
	return nil, GetDescendantsOutput{Profiles: profiles, Total: len(profiles)}, nil
}

// ImmediateFamily returns the one-hop family circle of an individual.
func (s *FamilyService) ImmediateFamily(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ImmediateFamilyInput,
) (*mcp.CallToolResult, ImmediateFamilyOutput, error) {
	g, _, err := s.snapshot()
	if err != nil {
		return nil, ImmediateFamilyOutput{}, err
	}
	if input.ProfileID == "" {
		return nil, ImmediateFamilyOutput{}, fmt.Errorf("profileId is required")
	}

	fc := graph.ImmediateFamily(g, input.ProfileID)
	if fc == nil {
		return nil, ImmediateFamilyOutput{}, fmt.Errorf("unknown profile id: %s", input.ProfileID)
	}
	return nil, ImmediateFamilyOutput{Circle: *fc}, nil
}

// QueryProfiles searches loaded profiles by name substring.
func (s *FamilyService) QueryProfiles(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input QueryProfilesInput,
) (*mcp.CallToolResult, QueryProfilesOutput, error) {
	g, _, err := s.snapshot()
	if err != nil {
		return nil, QueryProfilesOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	lowerQuery := strings.ToLower(input.Query)
	var results []model.Profile
	for _, id := range g.ProfileIDs() {
		p := g.Profile(id)
		if strings.Contains(strings.ToLower(p.FullName()), lowerQuery) {
			results = append(results, *p)
			if len(results) >= limit {
				break
			}
		}
	}

	return nil, QueryProfilesOutput{Profiles: results, Total: len(results)}, nil
}

// GraphStats returns counts for the loaded graph.
func (s *FamilyService) GraphStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ GraphStatsInput,
) (*mcp.CallToolResult, GraphStatsOutput, error) {
	g, source, err := s.snapshot()
	if err != nil {
		return nil, GraphStatsOutput{}, err
	}
	return nil, GraphStatsOutput{Source: source, Stats: *g.Stats()}, nil
}
