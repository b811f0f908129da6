//go:build cgo

package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKuzu(t *testing.T) *KuzuStore {
	t.Helper()
	store, err := NewKuzuStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.InitSchema(context.Background()))
	return store
}

func TestKuzuStore_PersistRoundTrip(t *testing.T) {
	store := newTestKuzu(t)
	g := Build(coupleWithChild())

	require.NoError(t, Persist(context.Background(), store, g))

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ProfileCount)
	assert.Equal(t, 1, stats.FamilyCount)
	// 2 CHILD_OF + 1 SPOUSE_OF + 1 CHILD_IN.
	assert.Equal(t, 4, stats.RelationCount)
}

func TestKuzuStore_InitSchemaIdempotent(t *testing.T) {
	store := newTestKuzu(t)
	require.NoError(t, store.InitSchema(context.Background()))
}

func TestKuzuStore_UnsupportedRelationKind(t *testing.T) {
	store := newTestKuzu(t)

	err := store.AddRelation(context.Background(), Relation{
		SourceID: "@A@",
		TargetID: "@B@",
		Kind:     RelationKindEdge("BOGUS"),
	})
	assert.Error(t, err)
}
