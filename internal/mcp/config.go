package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/illumination-k/lifesci-mcp/internal/clients"
	"github.com/illumination-k/lifesci-mcp/internal/config"
	"github.com/illumination-k/lifesci-mcp/internal/logging"
	"github.com/illumination-k/lifesci-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.New(logging.DefaultLogger(config.LogLevel(), config.LogDev()))

	set, err := clients.Default(baseLogger)
	if err != nil {
		log.Fatalf("failed to build upstream clients: %v", err)
	}

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"cellosaurus_search":        &tools.CellosaurusSearchHandler{Service: set.Cellosaurus},
			"cellosaurus_get_cell_line": &tools.CellosaurusGetHandler{Service: set.Cellosaurus},
			"pubmed_search":             &tools.PubMedSearchHandler{Service: set.PubMed},
			"pubmed_fetch_articles":     &tools.PubMedFetchHandler{Service: set.PubMed},
			"pubmed_fetch_fulltext":     &tools.PubMedFullTextHandler{Service: set.PubMed},
			"pubtator_annotate":         &tools.PubTatorAnnotateHandler{Service: set.PubTator},
			"pubtator_autocomplete":     &tools.PubTatorAutocompleteHandler{Service: set.PubTator},
			"pubchem_search_compounds":  &tools.PubChemSearchHandler{Service: set.PubChem},
			"pubchem_get_compound":      &tools.PubChemGetHandler{Service: set.PubChem},
			"entrez_links":              &tools.EntrezLinksHandler{Service: set.Entrez},
			"entrez_fetch":              &tools.EntrezFetchHandler{Service: set.Entrez},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
