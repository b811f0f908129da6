// Package export builds serializable snapshots of a loaded family model
// and its relationship graph.
package export

import (
	"time"

	"github.com/dusk-indust/pedigree/internal/graph"
	"github.com/dusk-indust/pedigree/internal/model"
)

// FamilyExport is the top-level JSON export structure.
type FamilyExport struct {
	Source     string              `json:"source,omitempty"`
	ExportedAt string              `json:"exportedAt"`
	Stats      graph.Stats         `json:"stats"`
	Profiles   []model.Profile     `json:"profiles"`
	Families   []model.Family      `json:"families"`
	Nodes      []graph.ProfileNode `json:"nodes"`
}

// ExportModel builds a FamilyExport from a model and its built graph.
// Profiles, families, and nodes appear in model order.
func ExportModel(m *model.FamilyModel, g *graph.Graph) *FamilyExport {
	out := &FamilyExport{
		Source:     m.Provenance.Source,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Stats:      *g.Stats(),
		Profiles:   m.Profiles,
		Families:   m.Families,
	}

	for _, id := range g.ProfileIDs() {
		out.Nodes = append(out.Nodes, *g.Node(id))
	}

	return out
}
