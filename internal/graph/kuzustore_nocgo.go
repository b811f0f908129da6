//go:build !cgo

package graph

import (
	"context"
	"errors"

	"github.com/dusk-indust/pedigree/internal/model"
)

// KuzuStore requires CGO because the go-kuzu driver wraps KuzuDB's C
// library. This stub keeps CGO-less builds compiling; its constructors
// always fail, so none of the Store methods are ever reached.
type KuzuStore struct{}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

var errKuzuRequiresCgo = errors.New("kuzu store unavailable: binary was built without cgo")

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	return nil, errKuzuRequiresCgo
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at
// the given directory path.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	return nil, errKuzuRequiresCgo
}

func (s *KuzuStore) Close() error { return errKuzuRequiresCgo }

func (s *KuzuStore) InitSchema(_ context.Context) error { return errKuzuRequiresCgo }

func (s *KuzuStore) AddProfile(_ context.Context, _ model.Profile) error {
	return errKuzuRequiresCgo
}

func (s *KuzuStore) AddFamily(_ context.Context, _ model.Family) error {
	return errKuzuRequiresCgo
}

func (s *KuzuStore) AddRelation(_ context.Context, _ Relation) error {
	return errKuzuRequiresCgo
}

func (s *KuzuStore) Stats(_ context.Context) (*StoreStats, error) {
	return nil, errKuzuRequiresCgo
}
