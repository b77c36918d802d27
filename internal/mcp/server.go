package mcp

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"lifesci-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"cellosaurus_search": mcp.NewTool("cellosaurus_search",
			mcp.WithDescription("Search the Cellosaurus cell-line registry. The query uses Cellosaurus search syntax, e.g. 'ox:sapiens' (human cell lines), 'di:Hepatoblastoma', 'derived-from-site:liver'."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query in Cellosaurus syntax (e.g., 'name:HeLa')"),
			),
			mcp.WithArray("fields",
				mcp.Description("Optional: restrict returned record fields to this set (the accession is always included)"),
			),
			mcp.WithNumber("page",
				mcp.Description("1-based result page (default: 1)"),
			),
			mcp.WithNumber("page_size",
				mcp.Description("Results per page, maximum 100 (default: 10)"),
			),
		),
		"cellosaurus_get_cell_line": mcp.NewTool("cellosaurus_get_cell_line",
			mcp.WithDescription("Retrieve one cell line by its Cellosaurus accession, including STR profile, diseases, sequence variations, and publications."),
			mcp.WithString("accession",
				mcp.Required(),
				mcp.Description("Cellosaurus accession (e.g., 'CVCL_0030')"),
			),
			mcp.WithArray("fields",
				mcp.Description("Optional: restrict returned record fields to this set"),
			),
		),
		"pubmed_search": mcp.NewTool("pubmed_search",
			mcp.WithDescription("Search PubMed for articles by keyword and return their metadata (title, abstract, journal, authors). Supports publication-date, MeSH-term, and open-access filters."),
			mcp.WithString("keyword",
				mcp.Required(),
				mcp.Description("Search term to query PubMed"),
			),
			mcp.WithNumber("retmax",
				mcp.Description("Maximum number of results, up to 200 (default: 30)"),
			),
			mcp.WithString("date_start",
				mcp.Description("Optional: publication date range start, YYYY/MM/DD"),
			),
			mcp.WithString("date_end",
				mcp.Description("Optional: publication date range end, YYYY/MM/DD"),
			),
			mcp.WithArray("mesh_terms",
				mcp.Description("Optional: MeSH terms to filter by, AND-combined"),
			),
			mcp.WithBoolean("open_access",
				mcp.Description("Only return open-access articles (default: false)"),
			),
		),
		"pubmed_fetch_articles": mcp.NewTool("pubmed_fetch_articles",
			mcp.WithDescription("Fetch article metadata for known PubMed IDs."),
			mcp.WithArray("pmids",
				mcp.Required(),
				mcp.Description("PubMed IDs to fetch"),
			),
		),
		"pubmed_fetch_fulltext": mcp.NewTool("pubmed_fetch_fulltext",
			mcp.WithDescription("Fetch the open-access full text of a PubMed article through PubMed Central. Fails with not-found when the article has no PMC deposit."),
			mcp.WithString("pmid",
				mcp.Required(),
				mcp.Description("PubMed ID of the article"),
			),
		),
		"pubtator_annotate": mcp.NewTool("pubtator_annotate",
			mcp.WithDescription("Extract normalized gene, disease, and chemical annotations from PubMed articles using PubTator3."),
			mcp.WithArray("pmids",
				mcp.Required(),
				mcp.Description("PubMed IDs to annotate"),
			),
		),
		"pubtator_autocomplete": mcp.NewTool("pubtator_autocomplete",
			mcp.WithDescription("Resolve a free-text biomedical keyword to its normalized concept identifier using PubTator3."),
			mcp.WithString("keyword",
				mcp.Required(),
				mcp.Description("Keyword to normalize (e.g., 'BRCA1')"),
			),
			mcp.WithString("concept",
				mcp.Description("Optional: restrict the match to a concept type"),
				mcp.Enum("gene", "disease", "chemical"),
			),
		),
		"pubchem_search_compounds": mcp.NewTool("pubchem_search_compounds",
			mcp.WithDescription("Search PubChem compounds by name and return their CIDs."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Compound name (e.g., 'aspirin')"),
			),
			mcp.WithNumber("offset",
				mcp.Description("Result offset (default: 0)"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of CIDs, up to 100 (default: 10)"),
			),
		),
		"pubchem_get_compound": mcp.NewTool("pubchem_get_compound",
			mcp.WithDescription("Retrieve compound properties (molecular formula and weight, canonical SMILES, InChIKey, IUPAC name) by PubChem CID."),
			mcp.WithNumber("cid",
				mcp.Required(),
				mcp.Description("PubChem compound ID (e.g., 2244)"),
			),
		),
		"entrez_links": mcp.NewTool("entrez_links",
			mcp.WithDescription("Discover links between NCBI database records, e.g. the genes referenced by a PubMed article."),
			mcp.WithArray("ids",
				mcp.Required(),
				mcp.Description("Record IDs in the source database"),
			),
			mcp.WithString("db_from",
				mcp.Required(),
				mcp.Description("Source database (e.g., 'pubmed')"),
			),
			mcp.WithString("db_to",
				mcp.Required(),
				mcp.Description("Target database (e.g., 'gene')"),
			),
		),
		"entrez_fetch": mcp.NewTool("entrez_fetch",
			mcp.WithDescription("Fetch raw records from an NCBI Entrez database, e.g. a FASTA sequence from nucleotide. The payload is returned untouched."),
			mcp.WithArray("ids",
				mcp.Required(),
				mcp.Description("Record IDs to fetch"),
			),
			mcp.WithString("db",
				mcp.Required(),
				mcp.Description("Database to fetch from (e.g., 'nucleotide')"),
			),
			mcp.WithString("retmode",
				mcp.Description("Response format (default: 'xml')"),
			),
			mcp.WithString("rettype",
				mcp.Description("Record type (e.g., 'fasta')"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Mount("/", httpServer)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: router,
	}
}
