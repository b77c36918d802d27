package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/illumination-k/lifesci-mcp/internal/upstream/entrez"
)

type LinkService interface {
	Links(ctx context.Context, ids []string, dbFrom, dbTo string) (entrez.LinkResult, error)
	Fetch(ctx context.Context, ids []string, db, retmode, rettype string) (string, error)
}

type EntrezLinksHandler struct {
	Service LinkService
}

func (h *EntrezLinksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	ids := stringSliceArg(args, "ids")
	if len(ids) == 0 {
		return mcp.NewToolResultError("ids parameter is required"), nil
	}
	dbFrom := stringArg(args, "db_from")
	dbTo := stringArg(args, "db_to")
	if dbFrom == "" || dbTo == "" {
		return mcp.NewToolResultError("db_from and db_to parameters are required"), nil
	}

	result, err := h.Service.Links(ctx, ids, dbFrom, dbTo)
	return resultOrError(result, err)
}

type EntrezFetchHandler struct {
	Service LinkService
}

func (h *EntrezFetchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	ids := stringSliceArg(args, "ids")
	if len(ids) == 0 {
		return mcp.NewToolResultError("ids parameter is required"), nil
	}
	db := stringArg(args, "db")
	if db == "" {
		return mcp.NewToolResultError("db parameter is required"), nil
	}

	raw, err := h.Service.Fetch(ctx, ids, db, stringArg(args, "retmode"), stringArg(args, "rettype"))
	if err != nil {
		return resultOrError(nil, err)
	}
	return mcp.NewToolResultText(raw), nil
}
