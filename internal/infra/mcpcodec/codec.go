// Package mcpcodec converts between domain types and the MCP SDK's wire
// types. The domain never imports the SDK directly.
package mcpcodec

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"timemcp/internal/domain"
)

// ToolToMCP builds the wire tool for a catalog descriptor. Parameter schemas
// are always string-typed objects with additionalProperties disabled.
func ToolToMCP(desc domain.ToolDescriptor) *mcp.Tool {
	properties := make(map[string]any, len(desc.Parameters))
	for _, p := range desc.Parameters {
		prop := map[string]any{
			"type":        p.Kind,
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			values := make([]any, len(p.Enum))
			for i, v := range p.Enum {
				values[i] = v
			}
			prop["enum"] = values
		}
		if p.Default != "" {
			prop["default"] = p.Default
		}
		properties[p.Name] = prop
	}

	return &mcp.Tool{
		Name:        desc.Name,
		Description: desc.Description,
		InputSchema: map[string]any{
			"type":                 "object",
			"properties":           properties,
			"additionalProperties": false,
		},
	}
}

// EnvelopeToResult wraps an envelope into a call result with exactly one
// text content item.
func EnvelopeToResult(env domain.Envelope) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: env.Text}},
		IsError: env.IsError,
	}
}

// DecodeArguments parses the raw argument payload into the loose map the
// dispatcher validates. An empty payload decodes to an empty map.
func DecodeArguments(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, domain.E(domain.CodeInvalidArgument, "mcpcodec.DecodeArguments", fmt.Sprintf("decode arguments: %v", err), err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// MarshalTool encodes a descriptor as MCP tool JSON.
func MarshalTool(desc domain.ToolDescriptor) ([]byte, error) {
	return json.Marshal(ToolToMCP(desc))
}
