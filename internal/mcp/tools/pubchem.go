package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
	"github.com/illumination-k/lifesci-mcp/internal/upstream/pubchem"
)

type CompoundService interface {
	SearchCompounds(ctx context.Context, name string, page upstream.Page) (pubchem.CIDList, error)
	GetCompound(ctx context.Context, cid int) (pubchem.Compound, error)
}

type PubChemSearchHandler struct {
	Service CompoundService
}

func (h *PubChemSearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name := stringArg(args, "name")
	if strings.TrimSpace(name) == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	page := upstream.Page{
		Offset: intArg(args, "offset", 0),
		Limit:  intArg(args, "limit", 0),
	}
	result, err := h.Service.SearchCompounds(ctx, name, page)
	return resultOrError(result, err)
}

type PubChemGetHandler struct {
	Service CompoundService
}

func (h *PubChemGetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cid := intArg(req.GetArguments(), "cid", 0)
	if cid == 0 {
		return mcp.NewToolResultError("cid parameter is required"), nil
	}

	compound, err := h.Service.GetCompound(ctx, cid)
	return resultOrError(compound, err)
}
