// Package graph derives a navigable relationship graph from a normalized
// family model and answers generation-bounded traversal queries over it.
package graph

import "github.com/dusk-indust/pedigree/internal/model"

// --- Enums ---

// RelationKind classifies a sibling relationship. The builder currently
// records every sibling derived from the shared child-family as full; half
// and step detection would require pairwise parent comparison across all
// families, which the design deliberately does not attempt.
type RelationKind string

const (
	RelationFull RelationKind = "full"
)

// Direction selects which way a traversal walks the graph.
type Direction string

const (
	DirectionAncestors   Direction = "ancestors"   // upward through parents
	DirectionDescendants Direction = "descendants" // downward through children
)

// --- Models ---

// SpouseLink ties a spouse to the family that joins them.
type SpouseLink struct {
	SpouseID string `json:"spouseId"`
	FamilyID string `json:"familyId"`
}

// ChildLink ties a child to the family it belongs to.
type ChildLink struct {
	ChildID  string `json:"childId"`
	FamilyID string `json:"familyId"`
}

// SiblingLink ties a sibling to the kind of relationship.
type SiblingLink struct {
	SiblingID string       `json:"siblingId"`
	Kind      RelationKind `json:"kind"`
}

// ProfileNode is the per-individual derived record of resolved
// relationships. ParentIDs holds 0, 1, or 2 entries; a partial pair is
// valid when one parent is unknown. List order follows source order.
type ProfileNode struct {
	ID        string        `json:"id"`
	ParentIDs []string      `json:"parentIds,omitempty"`
	Spouses   []SpouseLink  `json:"spouses,omitempty"`
	Children  []ChildLink   `json:"children,omitempty"`
	Siblings  []SiblingLink `json:"siblings,omitempty"`
}

// Stats summarizes a built relationship graph.
type Stats struct {
	ProfileCount int `json:"profileCount"`
	FamilyCount  int `json:"familyCount"`
	SpouseLinks  int `json:"spouseLinks"`
	ChildLinks   int `json:"childLinks"`
}

// FamilyCircle is the one-hop neighborhood of an individual, resolved to
// full profiles. IDs that do not resolve in the graph are omitted.
type FamilyCircle struct {
	Parents  []model.Profile `json:"parents,omitempty"`
	Spouses  []model.Profile `json:"spouses,omitempty"`
	Children []model.Profile `json:"children,omitempty"`
	Siblings []model.Profile `json:"siblings,omitempty"`
}
