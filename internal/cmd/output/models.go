package output

import (
	"io"

	"github.com/agentstation/aitools/internal/cmd/table"
	"github.com/agentstation/aitools/pkg/catalogs"
)

// Printer renders directory data in one output format.
type Printer struct {
	w         io.Writer
	format    Format
	formatter Formatter
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:         w,
		format:    format,
		formatter: NewFormatter(format),
	}
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Tools prints a tool listing. favorite may be nil.
func (p *Printer) Tools(tools []catalogs.Tool, favorite table.IsFavorite) error {
	if !p.format.IsTable() {
		return p.formatter.Format(p.w, tools)
	}
	wide := p.format == FormatWide || p.format == FormatMarkdown
	return p.formatter.Format(p.w, table.ToolsToTableData(tools, favorite, wide))
}

// Tool prints a single tool in detail.
func (p *Printer) Tool(tool catalogs.Tool) error {
	if !p.format.IsTable() {
		return p.formatter.Format(p.w, tool)
	}
	return p.formatter.Format(p.w, table.ToolDetailToTableData(tool))
}

// Categories prints category names.
func (p *Printer) Categories(categories []string) error {
	if !p.format.IsTable() {
		return p.formatter.Format(p.w, categories)
	}
	return p.formatter.Format(p.w, table.CategoriesToTableData(categories))
}

// Counts prints per-category counts.
func (p *Printer) Counts(counts []catalogs.CategoryCount) error {
	if !p.format.IsTable() {
		return p.formatter.Format(p.w, counts)
	}
	return p.formatter.Format(p.w, table.CountsToTableData(counts))
}

// Any prints an arbitrary value.
func (p *Printer) Any(data any) error {
	return p.formatter.Format(p.w, data)
}
