package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/pedigree/internal/graph"
	"github.com/dusk-indust/pedigree/internal/model"
)

func TestExportModel(t *testing.T) {
	m := &model.FamilyModel{
		Profiles: []model.Profile{
			{ID: "@I1@", GivenName: "John", FamiliesAsSpouse: []string{"@F1@"}},
			{ID: "@I2@", FamilyAsChild: "@F1@"},
		},
		Families: []model.Family{
			{ID: "@F1@", HusbandID: "@I1@", ChildIDs: []string{"@I2@"}},
		},
		Provenance: model.Provenance{Source: "unit.ged"},
	}
	g := graph.Build(m)

	out := ExportModel(m, g)

	assert.Equal(t, "unit.ged", out.Source)
	assert.NotEmpty(t, out.ExportedAt)
	assert.Equal(t, 2, out.Stats.ProfileCount)
	require.Len(t, out.Nodes, 2)
	assert.Equal(t, "@I1@", out.Nodes[0].ID)

	// The export must serialize cleanly.
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"@F1@"`)
}
