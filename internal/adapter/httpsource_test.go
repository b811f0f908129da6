package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/pedigree/internal/graph"
	"github.com/dusk-indust/pedigree/internal/model"
)

const treeResponse = `{
  "persons": [
    {"id": "P-1", "givenName": "John", "surname": "Doe", "gender": "male",
     "birthDate": "1950-01-02", "birthPlace": "Springfield",
     "spouseIn": ["U-1"]},
    {"id": "P-2", "givenName": "Jane", "surname": "Roe", "gender": "female",
     "birthDate": "1952", "spouseIn": ["U-1"]},
    {"id": "P-3", "restricted": true, "childOf": "U-1"}
  ],
  "unions": [
    {"id": "U-1", "partner1": "P-1", "partner2": "P-2",
     "children": ["P-3"], "marriedDate": "1948-06-12"}
  ]
}`

func newTestSource(t *testing.T, handler http.HandlerFunc) *HTTPSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPSource(srv.URL)
}

func TestFetch_Normalizes(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tree", r.URL.Path)
		assert.Equal(t, "P-1", r.URL.Query().Get("root"))
		assert.Equal(t, "3", r.URL.Query().Get("generations"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(treeResponse))
	})

	m, err := src.Fetch(context.Background(), "P-1", 3)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.Len(t, m.Profiles, 3)
	john := m.Profiles[0]
	assert.Equal(t, model.SexMale, john.Sex)
	require.NotNil(t, john.Birth)
	require.NotNil(t, john.Birth.Date)
	assert.Equal(t, 1950, john.Birth.Date.Year)
	assert.Equal(t, 1, john.Birth.Date.Month)
	assert.Equal(t, 2, john.Birth.Date.Day)
	assert.Equal(t, "Springfield", john.Birth.Place)

	jane := m.Profiles[1]
	require.NotNil(t, jane.Birth.Date)
	assert.Equal(t, 1952, jane.Birth.Date.Year)
	assert.Zero(t, jane.Birth.Date.Month)

	require.Len(t, m.Families, 1)
	fam := m.Families[0]
	assert.Equal(t, "P-1", fam.HusbandID)
	assert.Equal(t, []string{"P-3"}, fam.ChildIDs)
	require.NotNil(t, fam.Marriage)
	assert.Equal(t, 1948, fam.Marriage.Date.Year)
}

func TestFetch_RestrictedPlaceholderResolvesInGraph(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(treeResponse))
	})

	m, err := src.Fetch(context.Background(), "P-1", 3)
	require.NoError(t, err)

	restricted := m.Profiles[2]
	assert.True(t, restricted.Restricted)
	assert.Equal(t, "P-3", restricted.ID)
	assert.Empty(t, restricted.GivenName, "restricted profiles carry only their id")

	// Pointers to the placeholder must resolve in a built graph.
	g := graph.Build(m)
	fc := graph.ImmediateFamily(g, "P-1")
	require.NotNil(t, fc)
	require.Len(t, fc.Children, 1)
	assert.Equal(t, "P-3", fc.Children[0].ID)
}

func TestFetch_HTTPError(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such person", http.StatusNotFound)
	})

	_, err := src.Fetch(context.Background(), "P-404", 1)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestFetch_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"persons": [], "unions": []}`))
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL, WithToken("secret"))
	_, err := src.Fetch(context.Background(), "P-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		in   string
		want model.Sex
	}{
		{"male", model.SexMale},
		{"M", model.SexMale},
		{"Female", model.SexFemale},
		{"nonbinary", model.SexOther},
		{"unknown", model.SexUnspecified},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeGender(tt.in), "gender %q", tt.in)
	}
}
