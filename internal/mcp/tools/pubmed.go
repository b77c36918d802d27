package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/illumination-k/lifesci-mcp/internal/upstream/pubmed"
)

type ArticleService interface {
	SearchArticles(ctx context.Context, opts pubmed.SearchOptions) (pubmed.ArticleResult, error)
	FetchArticles(ctx context.Context, pmids []string) (pubmed.ArticleResult, error)
	FetchFullText(ctx context.Context, pmid string) (string, error)
}

type PubMedSearchHandler struct {
	Service ArticleService
}

func (h *PubMedSearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	keyword := stringArg(args, "keyword")
	if strings.TrimSpace(keyword) == "" {
		return mcp.NewToolResultError("keyword parameter is required"), nil
	}

	result, err := h.Service.SearchArticles(ctx, pubmed.SearchOptions{
		Keyword:    keyword,
		RetMax:     intArg(args, "retmax", 0),
		DateStart:  stringArg(args, "date_start"),
		DateEnd:    stringArg(args, "date_end"),
		MeshTerms:  stringSliceArg(args, "mesh_terms"),
		OpenAccess: boolArg(args, "open_access"),
	})
	return resultOrError(result, err)
}

type PubMedFetchHandler struct {
	Service ArticleService
}

func (h *PubMedFetchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pmids := stringSliceArg(req.GetArguments(), "pmids")
	if len(pmids) == 0 {
		return mcp.NewToolResultError("pmids parameter is required"), nil
	}

	result, err := h.Service.FetchArticles(ctx, pmids)
	return resultOrError(result, err)
}

type PubMedFullTextHandler struct {
	Service ArticleService
}

func (h *PubMedFullTextHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pmid := stringArg(req.GetArguments(), "pmid")
	if pmid == "" {
		return mcp.NewToolResultError("pmid parameter is required"), nil
	}

	text, err := h.Service.FetchFullText(ctx, pmid)
	if err != nil {
		return resultOrError(nil, err)
	}
	return mcp.NewToolResultText(text), nil
}
