package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dusk-indust/pedigree/internal/export"
	"github.com/dusk-indust/pedigree/internal/gedcom"
	"github.com/dusk-indust/pedigree/internal/graph"
)

func runExport(args []string) error {
	fs := flag.NewFlagSet("pedigree export", flag.ContinueOnError)
	file := fs.String("file", "", "path to the GEDCOM file")
	kuzuPath := fs.String("kuzu", "", "directory for a KuzuDB export instead of JSON on stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("usage: pedigree export -file <file.ged> [-kuzu <dir>]")
	}

	m, err := gedcom.LoadFile(*file)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	g := graph.Build(m)

	if *kuzuPath != "" {
		// Remove old database to avoid stale data.
		os.RemoveAll(*kuzuPath)

		st, err := graph.NewKuzuFileStore(*kuzuPath)
		if err != nil {
			return fmt.Errorf("open kuzu store: %w", err)
		}
		defer st.Close()

		if err := graph.Persist(context.Background(), st, g); err != nil {
			return fmt.Errorf("persist graph: %w", err)
		}

		stats, err := st.Stats(context.Background())
		if err != nil {
			return fmt.Errorf("store stats: %w", err)
		}
		fmt.Printf("exported %d profiles, %d families, %d relations to %s\n",
			stats.ProfileCount, stats.FamilyCount, stats.RelationCount, *kuzuPath)
		return nil
	}

	data := export.ExportModel(m, g)
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
