package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/illumination-k/lifesci-mcp/internal/upstream/cellosaurus"
)

type CellLineService interface {
	Search(ctx context.Context, q cellosaurus.SearchQuery) (cellosaurus.SearchResult, error)
	GetCellLine(ctx context.Context, accession string, fields []string) (cellosaurus.CellLine, error)
}

type CellosaurusSearchHandler struct {
	Service CellLineService
}

func (h *CellosaurusSearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := stringArg(args, "query")
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	result, err := h.Service.Search(ctx, cellosaurus.SearchQuery{
		Query:    query,
		Fields:   stringSliceArg(args, "fields"),
		Page:     intArg(args, "page", 0),
		PageSize: intArg(args, "page_size", 0),
	})
	return resultOrError(result, err)
}

type CellosaurusGetHandler struct {
	Service CellLineService
}

func (h *CellosaurusGetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	accession := stringArg(args, "accession")
	if accession == "" {
		return mcp.NewToolResultError("accession parameter is required"), nil
	}

	line, err := h.Service.GetCellLine(ctx, accession, stringSliceArg(args, "fields"))
	return resultOrError(line, err)
}
