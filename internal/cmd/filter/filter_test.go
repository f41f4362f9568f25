package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/aitools/pkg/catalogs"
)

var tools = []catalogs.Tool{
	{ID: 1, Name: "ChatGPT", Category: "Conversational AI", Description: "Advanced conversational AI"},
	{ID: 3, Name: "GitHub Copilot", Category: "Code Assistant", Description: "AI pair programmer"},
	{ID: 5, Name: "Runway ML", Category: "Video Generation", Description: "AI-powered video editing"},
	{ID: 11, Name: "Replit Ghostwriter", Category: "Code Assistant", Description: "Code completion"},
}

func ids(tools []catalogs.Tool) []catalogs.ToolID {
	out := make([]catalogs.ToolID, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.ID)
	}
	return out
}

func TestToolFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter *ToolFilter
		want   []catalogs.ToolID
	}{
		{"nil filter", nil, []catalogs.ToolID{1, 3, 5, 11}},
		{"empty filter", &ToolFilter{}, []catalogs.ToolID{1, 3, 5, 11}},
		{"name", &ToolFilter{Search: "copilot"}, []catalogs.ToolID{3}},
		{"category", &ToolFilter{Search: "CODE ASSISTANT"}, []catalogs.ToolID{3, 11}},
		{"description", &ToolFilter{Search: "video"}, []catalogs.ToolID{5}},
		{"whitespace only", &ToolFilter{Search: "   "}, []catalogs.ToolID{1, 3, 5, 11}},
		{"limit", &ToolFilter{Limit: 2}, []catalogs.ToolID{1, 3}},
		{"search and limit", &ToolFilter{Search: "code", Limit: 1}, []catalogs.ToolID{3}},
		{"no match", &ToolFilter{Search: "robot"}, []catalogs.ToolID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(tools)))
		})
	}
}
