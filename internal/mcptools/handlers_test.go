package mcptools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/pedigree/internal/model"
)

// testModel is the canonical couple-with-children tree used across handler tests.
func testModel() *model.FamilyModel {
	return &model.FamilyModel{
		Profiles: []model.Profile{
			{ID: "@I1@", GivenName: "John", Surname: "Doe", FamiliesAsSpouse: []string{"@F1@"}},
			{ID: "@I2@", GivenName: "Jane", Surname: "Roe", FamiliesAsSpouse: []string{"@F1@"}},
			{ID: "@I3@", GivenName: "Jimmy", Surname: "Doe", FamilyAsChild: "@F1@"},
		},
		Families: []model.Family{
			{ID: "@F1@", HusbandID: "@I1@", WifeID: "@I2@", ChildIDs: []string{"@I3@"}},
		},
		Provenance: model.Provenance{Source: "test"},
	}
}

func newLoadedService(t *testing.T) *FamilyService {
	t.Helper()
	svc := NewFamilyService()
	require.NoError(t, svc.SetModel(testModel()))
	return svc
}

func TestHandlers_RequireLoadedData(t *testing.T) {
	svc := NewFamilyService()
	ctx := context.Background()

	_, _, err := svc.GetAncestors(ctx, nil, GetAncestorsInput{ProfileID: "@I1@"})
	assert.Error(t, err)

	_, _, err = svc.GraphStats(ctx, nil, GraphStatsInput{})
	assert.Error(t, err)
}

func TestLoadGedcom(t *testing.T) {
	svc := NewFamilyService()

	_, out, err := svc.LoadGedcom(context.Background(), nil, LoadGedcomInput{
		Path: "../../testdata/family.ged",
	})
	require.NoError(t, err)

	assert.Equal(t, "family.ged", out.Source)
	assert.Equal(t, 4, out.Stats.ProfileCount)
	assert.Equal(t, 1, out.Stats.FamilyCount)
}

func TestLoadGedcom_MissingPath(t *testing.T) {
	svc := NewFamilyService()

	_, _, err := svc.LoadGedcom(context.Background(), nil, LoadGedcomInput{})
	assert.Error(t, err)
}

func TestGetAncestors(t *testing.T) {
	svc := newLoadedService(t)

	_, out, err := svc.GetAncestors(context.Background(), nil, GetAncestorsInput{
		ProfileID:      "@I3@",
		MaxGenerations: 1,
	})
	require.NoError(t, err)

	require.Equal(t, 3, out.Total)
	assert.Equal(t, "@I3@", out.Profiles[0].ID)
}

func TestGetDescendants(t *testing.T) {
	svc := newLoadedService(t)

	_, out, err := svc.GetDescendants(context.Background(), nil, GetDescendantsInput{
		ProfileID: "@I1@",
	})
	require.NoError(t, err)

	require.Equal(t, 2, out.Total)
	assert.Equal(t, "@I1@", out.Profiles[0].ID)
	assert.Equal(t, "@I3@", out.Profiles[1].ID)
}

func TestImmediateFamily(t *testing.T) {
	svc := newLoadedService(t)

	_, out, err := svc.ImmediateFamily(context.Background(), nil, ImmediateFamilyInput{
		ProfileID: "@I1@",
	})
	require.NoError(t, err)

	require.Len(t, out.Circle.Spouses, 1)
	assert.Equal(t, "@I2@", out.Circle.Spouses[0].ID)
	require.Len(t, out.Circle.Children, 1)
	assert.Equal(t, "@I3@", out.Circle.Children[0].ID)
}

func TestImmediateFamily_UnknownID(t *testing.T) {
	svc := newLoadedService(t)

	_, _, err := svc.ImmediateFamily(context.Background(), nil, ImmediateFamilyInput{
		ProfileID: "@NOPE@",
	})
	assert.Error(t, err)
}

func TestQueryProfiles(t *testing.T) {
	svc := newLoadedService(t)

	_, out, err := svc.QueryProfiles(context.Background(), nil, QueryProfilesInput{
		Query: "doe",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	_, out, err = svc.QueryProfiles(context.Background(), nil, QueryProfilesInput{
		Query: "doe",
		Limit: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
}

func TestGraphStats(t *testing.T) {
	svc := newLoadedService(t)

	_, out, err := svc.GraphStats(context.Background(), nil, GraphStatsInput{})
	require.NoError(t, err)

	assert.Equal(t, "test", out.Source)
	assert.Equal(t, 3, out.Stats.ProfileCount)
}

func TestSetModel_RejectsDuplicateIDs(t *testing.T) {
	m := testModel()
	m.Profiles = append(m.Profiles, model.Profile{ID: "@I1@"})

	svc := NewFamilyService()
	assert.Error(t, svc.SetModel(m))
}
