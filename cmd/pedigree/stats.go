package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dusk-indust/pedigree/internal/gedcom"
	"github.com/dusk-indust/pedigree/internal/graph"
)

// fileStats pairs one input file with its graph statistics.
type fileStats struct {
	Source string      `json:"source"`
	Stats  graph.Stats `json:"stats"`
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("pedigree stats", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("usage: pedigree stats <file.ged> [more files...]")
	}

	models, err := gedcom.LoadFiles(context.Background(), paths)
	if err != nil {
		return err
	}

	var all []fileStats
	for _, m := range models {
		if err := m.Validate(); err != nil {
			return err
		}
		g := graph.Build(m)
		all = append(all, fileStats{
			Source: m.Provenance.Source,
			Stats:  *g.Stats(),
		})
	}

	out, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
