package catalogs

import (
	"slices"
	"strconv"

	"github.com/agentstation/aitools/pkg/errors"
)

// ToolID uniquely identifies a tool within a catalog.
type ToolID int

// String returns the decimal form of the id.
func (id ToolID) String() string {
	return strconv.Itoa(int(id))
}

// ParseToolID parses a decimal tool id. Malformed input yields a
// ValidationError.
func ParseToolID(s string) (ToolID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewValidationError("id", s, "must be an integer")
	}
	return ToolID(n), nil
}

// Tool is a single catalog entry.
type Tool struct {
	ID          ToolID   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Pricing     string   `json:"pricing,omitempty" yaml:"pricing,omitempty"`
	Features    []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// Copy returns a deep copy of the tool.
func (t Tool) Copy() Tool {
	t.Features = slices.Clone(t.Features)
	return t
}

// FeaturePreview returns at most the first n features. Features itself is
// never truncated.
func (t Tool) FeaturePreview(n int) []string {
	if n < 0 {
		n = 0
	}
	if len(t.Features) <= n {
		return slices.Clone(t.Features)
	}
	return slices.Clone(t.Features[:n])
}

// copyTools deep-copies a slice of tools. The result is never nil.
func copyTools(tools []Tool) []Tool {
	out := make([]Tool, len(tools))
	for i, t := range tools {
		out[i] = t.Copy()
	}
	return out
}
