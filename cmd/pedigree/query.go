package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dusk-indust/pedigree/internal/config"
	"github.com/dusk-indust/pedigree/internal/gedcom"
	"github.com/dusk-indust/pedigree/internal/graph"
)

func runQuery(args []string) error {
	fs := flag.NewFlagSet("pedigree query", flag.ContinueOnError)
	file := fs.String("file", "", "path to the GEDCOM file")
	id := fs.String("id", "", "cross-reference id of the start individual, e.g. @I1@")
	kind := fs.String("kind", "family", "query kind: ancestors, descendants, or family")
	generations := fs.Int("generations", 0, "generation bound for ancestors/descendants (0 uses the configured default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *file == "" {
		*file = cfg.DefaultFile
	}
	if *file == "" || *id == "" {
		return fmt.Errorf("usage: pedigree query -file <file.ged> -id <@Ixx@> [-kind ancestors|descendants|family] [-generations N]")
	}

	maxGen := *generations
	if maxGen <= 0 {
		maxGen = cfg.MaxGenerations
	}
	if maxGen <= 0 {
		maxGen = 5
	}

	m, err := gedcom.LoadFile(*file)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	g := graph.Build(m)
	if g.Node(*id) == nil {
		return fmt.Errorf("unknown profile id: %s", *id)
	}

	var result any
	switch *kind {
	case "ancestors", "descendants":
		result = graph.Relatives(g, *id, graph.Direction(*kind), maxGen)
	case "family":
		result = graph.ImmediateFamily(g, *id)
	default:
		return fmt.Errorf("unknown query kind: %s", *kind)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
