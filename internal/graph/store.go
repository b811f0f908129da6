package graph

import (
	"context"
	"io"

	"github.com/dusk-indust/pedigree/internal/model"
)

// Store is a sink for persisting a built relationship graph outside the
// process. Implementations: KuzuStore (graph database export), MemStore
// (testing). The in-memory Graph itself is the authoritative query
// structure; a Store only receives a copy of it.
type Store interface {
	io.Closer

	// Schema setup — called once before any data is inserted.
	InitSchema(ctx context.Context) error

	// Write operations.
	AddProfile(ctx context.Context, p model.Profile) error
	AddFamily(ctx context.Context, f model.Family) error
	AddRelation(ctx context.Context, rel Relation) error

	// Stats.
	Stats(ctx context.Context) (*StoreStats, error)
}

// RelationKindEdge classifies persisted graph edges.
type RelationKindEdge string

const (
	EdgeChildOf  RelationKindEdge = "CHILD_OF"  // child profile -> parent profile
	EdgeSpouseOf RelationKindEdge = "SPOUSE_OF" // profile -> profile, via family
	EdgeChildIn  RelationKindEdge = "CHILD_IN"  // child profile -> family
)

// Relation is one persisted edge between two records.
type Relation struct {
	SourceID string           `json:"sourceId"`
	TargetID string           `json:"targetId"`
	Kind     RelationKindEdge `json:"kind"`
	FamilyID string           `json:"familyId,omitempty"`
}

// StoreStats counts persisted records.
type StoreStats struct {
	ProfileCount  int `json:"profileCount"`
	FamilyCount   int `json:"familyCount"`
	RelationCount int `json:"relationCount"`
}

// Persist writes every profile, family, and resolved relationship of a
// built graph into the store. Spouse edges are written once per family
// from the husband's side to avoid duplicates.
func Persist(ctx context.Context, st Store, g *Graph) error {
	if err := st.InitSchema(ctx); err != nil {
		return err
	}

	for _, id := range g.ProfileIDs() {
		if err := st.AddProfile(ctx, *g.Profile(id)); err != nil {
			return err
		}
	}
	for _, id := range g.FamilyIDs() {
		if err := st.AddFamily(ctx, *g.Family(id)); err != nil {
			return err
		}
	}

	for _, id := range g.ProfileIDs() {
		node := g.Node(id)
		for _, parentID := range node.ParentIDs {
			rel := Relation{SourceID: id, TargetID: parentID, Kind: EdgeChildOf}
			if err := st.AddRelation(ctx, rel); err != nil {
				return err
			}
		}
		for _, s := range node.Spouses {
			fam := g.Family(s.FamilyID)
			if fam != nil && fam.WifeID == id {
				continue // written from the other spouse's side
			}
			rel := Relation{SourceID: id, TargetID: s.SpouseID, Kind: EdgeSpouseOf, FamilyID: s.FamilyID}
			if err := st.AddRelation(ctx, rel); err != nil {
				return err
			}
		}
	}

	for _, famID := range g.FamilyIDs() {
		for _, childID := range g.Family(famID).ChildIDs {
			if g.Node(childID) == nil {
				continue // dangling child pointer, nothing to link
			}
			rel := Relation{SourceID: childID, TargetID: famID, Kind: EdgeChildIn, FamilyID: famID}
			if err := st.AddRelation(ctx, rel); err != nil {
				return err
			}
		}
	}

	return nil
}
