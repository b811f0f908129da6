package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/pedigree/internal/config"
	"github.com/dusk-indust/pedigree/internal/gedcom"
	"github.com/dusk-indust/pedigree/internal/mcptools"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("pedigree serve", flag.ContinueOnError)
	addr := fs.String("addr", "", "listen address for the MCP server (default :8371)")
	file := fs.String("file", "", "GEDCOM file to preload before serving")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *addr == "" {
		*addr = cfg.MCPAddr
	}
	if *addr == "" {
		*addr = ":8371"
	}
	if *file == "" {
		*file = cfg.DefaultFile
	}

	svc := mcptools.NewFamilyService()
	if *file != "" {
		m, err := gedcom.LoadFile(*file)
		if err != nil {
			return err
		}
		if err := svc.SetModel(m); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "preloaded %s\n", *file)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "serving family MCP tools on %s\n", *addr)
	return mcptools.RunMCPServer(ctx, svc, *addr)
}
