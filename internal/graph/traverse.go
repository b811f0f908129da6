package graph

import "github.com/dusk-indust/pedigree/internal/model"

// Ancestors walks upward from startID through resolved parent pairs, up to
// maxGenerations hops. Generation 0 is the start individual itself, so the
// result always contains the start profile first (when it resolves). A
// visited set guarantees each id appears at most once and that traversal
// terminates even on cyclic data.
func Ancestors(g *Graph, startID string, maxGenerations int) []model.Profile {
	return traverse(g, startID, maxGenerations, func(n *ProfileNode) []string {
		return n.ParentIDs
	})
}

// Descendants walks downward from startID through resolved child links,
// symmetric to Ancestors.
func Descendants(g *Graph, startID string, maxGenerations int) []model.Profile {
	return traverse(g, startID, maxGenerations, func(n *ProfileNode) []string {
		ids := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			ids = append(ids, c.ChildID)
		}
		return ids
	})
}

// Relatives walks from startID in the given direction, dispatching to
// Ancestors or Descendants.
func Relatives(g *Graph, startID string, dir Direction, maxGenerations int) []model.Profile {
	if dir == DirectionDescendants {
		return Descendants(g, startID, maxGenerations)
	}
	return Ancestors(g, startID, maxGenerations)
}

// traverse is a breadth-first walk over neighbor ids with a visited set and
// a generation bound. Unknown ids are skipped silently.
func traverse(g *Graph, startID string, maxGenerations int, neighbors func(*ProfileNode) []string) []model.Profile {
	start := g.Node(startID)
	if start == nil {
		return nil
	}

	visited := map[string]bool{startID: true}
	var result []model.Profile
	if p := g.Profile(startID); p != nil {
		result = append(result, *p)
	}

	queue := []string{startID}
	for depth := 0; depth < maxGenerations && len(queue) > 0; depth++ {
		var next []string
		for _, id := range queue {
			node := g.Node(id)
			if node == nil {
				continue
			}
			for _, nb := range neighbors(node) {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				if p := g.Profile(nb); p != nil {
					result = append(result, *p)
				}
				next = append(next, nb)
			}
		}
		queue = next
	}

	return result
}

// ImmediateFamily resolves the one-hop neighborhood of startID: parents,
// spouses, children, and siblings as full profiles. Ids not present in the
// graph are omitted, never an error. Returns nil for an unknown start id.
func ImmediateFamily(g *Graph, startID string) *FamilyCircle {
	node := g.Node(startID)
	if node == nil {
		return nil
	}

	fc := &FamilyCircle{}
	for _, id := range node.ParentIDs {
		if p := g.Profile(id); p != nil {
			fc.Parents = append(fc.Parents, *p)
		}
	}
	for _, s := range node.Spouses {
		if p := g.Profile(s.SpouseID); p != nil {
			fc.Spouses = append(fc.Spouses, *p)
		}
	}
	for _, c := range node.Children {
		if p := g.Profile(c.ChildID); p != nil {
			fc.Children = append(fc.Children, *p)
		}
	}
	for _, s := range node.Siblings {
		if p := g.Profile(s.SiblingID); p != nil {
			fc.Siblings = append(fc.Siblings, *p)
		}
	}
	return fc
}
