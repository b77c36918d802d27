package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// resultOrError maps a client call outcome into a tool result. Domain
// failures (invalid argument, not found, data format) become tool errors so
// the caller sees them as structured failures; transport and internal
// errors propagate as Go errors for the MCP runtime to report.
func resultOrError(v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		if upstream.IsInvalidArgument(err) || upstream.IsNotFound(err) || upstream.IsDataFormat(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(v))), nil
}

func stringArg(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return value
}

func intArg(args map[string]any, key string, def int) int {
	if raw, ok := args[key].(float64); ok {
		return int(raw)
	}
	return def
}

func boolArg(args map[string]any, key string) bool {
	value, _ := args[key].(bool)
	return value
}

// stringSliceArg accepts both a JSON array of strings and a single string.
func stringSliceArg(args map[string]any, key string) []string {
	switch raw := args[key].(type) {
	case []any:
		var values []string
		for _, item := range raw {
			if s, ok := item.(string); ok && s != "" {
				values = append(values, s)
			}
		}
		return values
	case string:
		if raw == "" {
			return nil
		}
		return []string{raw}
	}
	return nil
}
