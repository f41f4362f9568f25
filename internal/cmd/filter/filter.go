// Package filter narrows tool listings for display.
package filter

import (
	"strings"

	"github.com/agentstation/aitools/pkg/catalogs"
)

// ToolFilter applies search and limit to tool lists. Category filtering is
// done by the client; this covers the free-text search box.
type ToolFilter struct {
	Search string // matched against name, category and description
	Limit  int    // zero means no limit
}

// Apply filters a slice of tools, keeping their order.
func (f *ToolFilter) Apply(tools []catalogs.Tool) []catalogs.Tool {
	if f == nil || f.isEmpty() {
		return tools
	}

	filtered := make([]catalogs.Tool, 0, len(tools))
	for _, tool := range tools {
		if f.Limit > 0 && len(filtered) == f.Limit {
			break
		}
		if f.matchesSearch(tool) {
			filtered = append(filtered, tool)
		}
	}

	return filtered
}

func (f *ToolFilter) isEmpty() bool {
	return strings.TrimSpace(f.Search) == "" && f.Limit <= 0
}

func (f *ToolFilter) matchesSearch(tool catalogs.Tool) bool {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(tool.Name), search) ||
		strings.Contains(strings.ToLower(tool.Category), search) ||
		strings.Contains(strings.ToLower(tool.Description), search)
}
