package graph

import (
	"github.com/dusk-indust/pedigree/internal/model"
)

// Graph is the built relationship graph: profile and family lookups plus
// one ProfileNode of resolved relationships per individual. It copies the
// model's data into its own maps at build time, so it stays valid after
// the caller drops the source model. Read-only once built; rebuild from a
// fresh model when the input changes.
type Graph struct {
	profiles map[string]model.Profile
	families map[string]model.Family
	nodes    map[string]*ProfileNode
	order    []string // profile ids in model order
}

// Build constructs the relationship graph from a normalized model in two
// passes: one node per individual, then pointer resolution. Any famc/fams
// pointer that does not resolve to a known family is treated as absent;
// dangling data never fails the build. Deterministic: relationship lists
// preserve the order pointers and children appeared in the model.
func Build(m *model.FamilyModel) *Graph {
	g := &Graph{
		profiles: make(map[string]model.Profile, len(m.Profiles)),
		families: make(map[string]model.Family, len(m.Families)),
		nodes:    make(map[string]*ProfileNode, len(m.Profiles)),
		order:    make([]string, 0, len(m.Profiles)),
	}

	for _, f := range m.Families {
		g.families[f.ID] = f
	}

	// Pass 1: one empty node per individual, in model order.
	for _, p := range m.Profiles {
		g.profiles[p.ID] = p
		g.nodes[p.ID] = &ProfileNode{ID: p.ID}
		g.order = append(g.order, p.ID)
	}

	// Pass 2: resolve pointers.
	for _, p := range m.Profiles {
		node := g.nodes[p.ID]

		if fam, ok := g.families[p.FamilyAsChild]; ok && p.FamilyAsChild != "" {
			if fam.HusbandID != "" {
				node.ParentIDs = append(node.ParentIDs, fam.HusbandID)
			}
			if fam.WifeID != "" {
				node.ParentIDs = append(node.ParentIDs, fam.WifeID)
			}
			for _, childID := range fam.ChildIDs {
				if childID == p.ID {
					continue
				}
				node.Siblings = append(node.Siblings, SiblingLink{
					SiblingID: childID,
					Kind:      RelationFull,
				})
			}
		}

		for _, famID := range p.FamiliesAsSpouse {
			fam, ok := g.families[famID]
			if !ok {
				continue
			}
			spouseID := fam.WifeID
			if p.ID == fam.WifeID {
				spouseID = fam.HusbandID
			}
			if spouseID != "" {
				node.Spouses = append(node.Spouses, SpouseLink{
					SpouseID: spouseID,
					FamilyID: famID,
				})
			}
			for _, childID := range fam.ChildIDs {
				node.Children = append(node.Children, ChildLink{
					ChildID:  childID,
					FamilyID: famID,
				})
			}
		}
	}

	return g
}

// Profile returns the profile for the given id, or nil if not found.
func (g *Graph) Profile(id string) *model.Profile {
	p, ok := g.profiles[id]
	if !ok {
		return nil
	}
	return &p
}

// Family returns the family for the given id, or nil if not found.
func (g *Graph) Family(id string) *model.Family {
	f, ok := g.families[id]
	if !ok {
		return nil
	}
	return &f
}

// Node returns the relationship node for the given id, or nil if not found.
func (g *Graph) Node(id string) *ProfileNode {
	return g.nodes[id]
}

// ProfileIDs returns all profile ids in model order.
func (g *Graph) ProfileIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// FamilyIDs returns all family ids. Order is unspecified.
func (g *Graph) FamilyIDs() []string {
	out := make([]string, 0, len(g.families))
	for id := range g.families {
		out = append(out, id)
	}
	return out
}

// Stats returns counts of nodes and resolved relationship links.
func (g *Graph) Stats() *Stats {
	s := &Stats{
		ProfileCount: len(g.profiles),
		FamilyCount:  len(g.families),
	}
	for _, n := range g.nodes {
		s.SpouseLinks += len(n.Spouses)
		s.ChildLinks += len(n.Children)
	}
	return s
}
