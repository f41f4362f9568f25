// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strings"

	"github.com/agentstation/aitools/internal/cmd/emoji"
	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/constants"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// IsFavorite reports whether a tool id is a favorite. A nil IsFavorite
// omits the favorite column.
type IsFavorite func(catalogs.ToolID) bool

// ToolsToTableData converts tools to table format. The wide layout adds the
// description, URL and a feature preview.
func ToolsToTableData(tools []catalogs.Tool, favorite IsFavorite, wide bool) Data {
	headers := []string{"ID", "Name", "Category", "Pricing"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft}
	if favorite != nil {
		headers = append([]string{""}, headers...)
		align = append([]Align{AlignCenter}, align...)
	}
	if wide {
		headers = append(headers, "Features", "URL", "Description")
		align = append(align, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(tools))
	for _, tool := range tools {
		row := []string{
			tool.ID.String(),
			tool.Name,
			tool.Category,
			orDash(tool.Pricing),
		}
		if favorite != nil {
			mark := emoji.NotFavorite
			if favorite(tool.ID) {
				mark = emoji.Favorite
			}
			row = append([]string{mark}, row...)
		}
		if wide {
			row = append(row,
				BuildFeaturesString(tool),
				orDash(tool.URL),
				Truncate(tool.Description, constants.DescriptionWidth),
			)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// ToolDetailToTableData converts a single tool to a property/value table
// listing every feature.
func ToolDetailToTableData(tool catalogs.Tool) Data {
	features := "-"
	if len(tool.Features) > 0 {
		features = strings.Join(tool.Features, "\n")
	}
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", tool.ID.String()},
			{"Name", tool.Name},
			{"Category", tool.Category},
			{"Pricing", orDash(tool.Pricing)},
			{"URL", orDash(tool.URL)},
			{"Description", orDash(tool.Description)},
			{"Features", features},
		},
	}
}

// CategoriesToTableData converts category names to a one-column table.
func CategoriesToTableData(categories []string) Data {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c})
	}
	return Data{
		Headers: []string{"Category"},
		Rows:    rows,
	}
}

// CountsToTableData converts category counts to table format with each
// category's share of the total.
func CountsToTableData(counts []catalogs.CategoryCount) Data {
	total := catalogs.Total(counts)
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{
			c.Category,
			fmt.Sprintf("%d", c.Count),
			FormatShare(c.Count, total),
		})
	}

	return Data{
		Headers:         []string{"Category", "Tools", "Share"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight},
	}
}

// BuildFeaturesString joins the feature preview shown on a tool card, adding
// a "+N" marker for features left out.
func BuildFeaturesString(tool catalogs.Tool) string {
	preview := tool.FeaturePreview(constants.FeaturePreviewLength)
	if len(preview) == 0 {
		return "-"
	}
	s := strings.Join(preview, ", ")
	if extra := len(tool.Features) - len(preview); extra > 0 {
		s += fmt.Sprintf(" +%d", extra)
	}
	return s
}

// FormatShare renders count/total as a percentage with one decimal.
func FormatShare(count, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(count)*100/float64(total))
}

// Truncate shortens s to at most width runes, ending in "...".
func Truncate(s string, width int) string {
	if s == "" {
		return "-"
	}
	r := []rune(s)
	if width <= 3 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
