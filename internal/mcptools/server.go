package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewFamilyMCPServer creates an MCP server with all 6 family tools registered.
func NewFamilyMCPServer(svc *FamilyService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "pedigree-family",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_gedcom",
		Description: "Parse a GEDCOM file into the normalized family model and build the relationship graph. Replaces any previously loaded data.",
	}, svc.LoadGedcom)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_ancestors",
		Description: "Walk upward from an individual through resolved parent pairs, up to the given generation bound. Generation 0 is the individual itself.",
	}, svc.GetAncestors)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_descendants",
		Description: "Walk downward from an individual through resolved child links, up to the given generation bound.",
	}, svc.GetDescendants)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "immediate_family",
		Description: "Return the one-hop family circle of an individual: parents, spouses, children, and siblings as resolved profiles.",
	}, svc.ImmediateFamily)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_profiles",
		Description: "Search loaded individuals by name substring match, with an optional result limit.",
	}, svc.QueryProfiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "graph_stats",
		Description: "Return counts of profiles, families, and resolved relationship links in the loaded graph.",
	}, svc.GraphStats)

	return server
}

// RunMCPServer starts an HTTP server exposing the family MCP tools.
func RunMCPServer(ctx context.Context, svc *FamilyService, addr string) error {
	server := NewFamilyMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
