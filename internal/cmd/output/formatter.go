// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	md "github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/aitools/internal/cmd/constants"
	"github.com/agentstation/aitools/internal/cmd/table"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = constants.FormatTable
	// FormatWide represents wide table output format.
	FormatWide Format = constants.FormatWide
	// FormatJSON represents JSON output format.
	FormatJSON Format = constants.FormatJSON
	// FormatYAML represents YAML output format.
	FormatYAML Format = constants.FormatYAML
	// FormatMarkdown represents a GitHub-flavored markdown table.
	FormatMarkdown Format = constants.FormatMarkdown
)

// IsTable reports whether the format renders table.Data rather than the raw
// value.
func (f Format) IsTable() bool {
	switch f {
	case FormatTable, FormatWide, FormatMarkdown, "":
		return true
	}
	return false
}

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct{}

// Format outputs data in table format. Values that are not table.Data fall
// back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	v, ok := data.(table.Data)
	if !ok {
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}

	config := tablewriter.Config{}
	if len(v.ColumnAlignment) > 0 {
		twAlign := make([]tw.Align, len(v.ColumnAlignment))
		for i, align := range v.ColumnAlignment {
			twAlign[i] = toTWAlign(align)
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: twAlign}
		config.Row.Alignment = tw.CellAlignment{PerColumn: twAlign}
	}

	tbl := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	if len(v.Headers) > 0 {
		tbl.Header(toAny(v.Headers)...)
	}

	for _, row := range v.Rows {
		if err := tbl.Append(toAny(row)...); err != nil {
			return err
		}
	}

	return tbl.Render()
}

// MarkdownFormatter outputs a markdown table, suitable for pasting into
// docs or issues.
type MarkdownFormatter struct{}

// Format outputs table.Data as a markdown table. Other values fall back to
// JSON in a fenced code block.
func (f *MarkdownFormatter) Format(w io.Writer, data any) error {
	v, ok := data.(table.Data)
	if !ok {
		var sb strings.Builder
		if err := (&JSONFormatter{Indent: "  "}).Format(&sb, data); err != nil {
			return err
		}
		return md.NewMarkdown(w).CodeBlocks(md.SyntaxHighlight("json"), strings.TrimSpace(sb.String())).Build()
	}

	headers := make([]string, len(v.Headers))
	caser := cases.Title(language.English)
	for i, h := range v.Headers {
		headers[i] = caser.String(h)
	}

	return md.NewMarkdown(w).
		Table(md.TableSet{Header: headers, Rows: v.Rows}).
		Build()
}

func toTWAlign(align table.Align) tw.Align {
	switch align {
	case table.AlignLeft:
		return tw.AlignLeft
	case table.AlignCenter:
		return tw.AlignCenter
	case table.AlignRight:
		return tw.AlignRight
	default:
		return tw.Skip
	}
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}

	// Default to JSON for pipes/redirects
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, FormatMarkdown, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, wide, json, yaml, markdown", s)
	}
}
