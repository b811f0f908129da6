// Package adapter defines the boundary contract for alternative family
// data sources. Any adapter produces the same normalized model as the
// GEDCOM decoder, honoring its id-uniqueness invariant, so the
// relationship graph consumes either unmodified.
package adapter

import (
	"context"

	"github.com/dusk-indust/pedigree/internal/model"
)

// Source fetches family data from a non-GEDCOM origin. Implementations
// own the conversion of source-specific identifiers, gender vocabularies,
// and date representations into the normalized shape. A record the source
// refuses to disclose must still appear as a placeholder profile carrying
// only its id and the restricted marker, so pointers referencing it
// resolve in the graph.
type Source interface {
	// Fetch retrieves the family tree around rootID, up to the given
	// number of generations in each direction.
	Fetch(ctx context.Context, rootID string, generations int) (*model.FamilyModel, error)

	// Name identifies the source for provenance metadata.
	Name() string
}
