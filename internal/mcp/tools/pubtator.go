package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/illumination-k/lifesci-mcp/internal/upstream/pubtator"
)

type AnnotationService interface {
	Annotate(ctx context.Context, pmids []string) ([]pubtator.AnnotationResult, error)
	Autocomplete(ctx context.Context, keyword, concept string) (pubtator.Match, error)
}

type PubTatorAnnotateHandler struct {
	Service AnnotationService
}

func (h *PubTatorAnnotateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pmids := stringSliceArg(req.GetArguments(), "pmids")
	if len(pmids) == 0 {
		return mcp.NewToolResultError("pmids parameter is required"), nil
	}

	results, err := h.Service.Annotate(ctx, pmids)
	return resultOrError(results, err)
}

type PubTatorAutocompleteHandler struct {
	Service AnnotationService
}

func (h *PubTatorAutocompleteHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	keyword := stringArg(args, "keyword")
	if strings.TrimSpace(keyword) == "" {
		return mcp.NewToolResultError("keyword parameter is required"), nil
	}

	match, err := h.Service.Autocomplete(ctx, keyword, stringArg(args, "concept"))
	return resultOrError(match, err)
}
