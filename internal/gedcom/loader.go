package gedcom

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/pedigree/internal/model"
)

// LoadFile parses a single GEDCOM file into a family model.
func LoadFile(path string) (*model.FamilyModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	d := &Decoder{Source: filepath.Base(path)}
	return d.Decode(f)
}

// LoadFiles parses several GEDCOM files in parallel, one model per file,
// in the same order as paths. The first failure cancels the derived
// context and is returned; partial results are discarded.
func LoadFiles(ctx context.Context, paths []string) ([]*model.FamilyModel, error) {
	models := make([]*model.FamilyModel, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := LoadFile(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			models[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models, nil
}
