package alerts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/agentstation/aitools/internal/cmd/constants"
)

// FormatWriter writes alerts as plain lines, JSON or YAML, matching the
// output format chosen for the command's data.
type FormatWriter struct {
	writer io.Writer
	format string
	config WriterConfig
}

// WriterConfig configures plain output.
type WriterConfig struct {
	ShowDetails bool
	UseColor    bool
}

// NewFormatWriter creates a FormatWriter. Color is enabled when w is a terminal.
func NewFormatWriter(w io.Writer, format string) *FormatWriter {
	return &FormatWriter{
		writer: w,
		format: format,
		config: WriterConfig{
			ShowDetails: true,
			UseColor:    isTerminal(w),
		},
	}
}

// WithConfig replaces the writer configuration.
func (fw *FormatWriter) WithConfig(config WriterConfig) *FormatWriter {
	fw.config = config
	return fw
}

// WriteAlert writes an alert in the configured format.
func (fw *FormatWriter) WriteAlert(alert *Alert) error {
	switch fw.format {
	case constants.FormatJSON:
		return fw.writeJSON(alert)
	case constants.FormatYAML:
		return fw.writeYAML(alert)
	default:
		return fw.writePlain(alert)
	}
}

// alertData is the structured form of an alert.
type alertData struct {
	Level    Level    `json:"level" yaml:"level"`
	Message  string   `json:"message" yaml:"message"`
	ToolID   int      `json:"tool_id,omitempty" yaml:"tool_id,omitempty"`
	ToolName string   `json:"tool,omitempty" yaml:"tool,omitempty"`
	Details  []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func toAlertData(alert *Alert) alertData {
	data := alertData{
		Level:   alert.Level,
		Message: alert.Message,
		Details: alert.Details,
	}
	if alert.Subject != nil {
		data.ToolID = int(alert.Subject.ID)
		data.ToolName = alert.Subject.Name
	}
	if alert.Err != nil {
		data.Error = alert.Err.Error()
	}
	return data
}

func (fw *FormatWriter) writeJSON(alert *Alert) error {
	encoder := json.NewEncoder(fw.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toAlertData(alert))
}

func (fw *FormatWriter) writeYAML(alert *Alert) error {
	data, err := yaml.MarshalWithOptions(toAlertData(alert), yaml.Indent(2))
	if err != nil {
		return err
	}
	_, err = fw.writer.Write(data)
	return err
}

func (fw *FormatWriter) writePlain(alert *Alert) error {
	message := alert.String()
	if fw.config.UseColor {
		message = alert.Level.Color() + message + resetColor
	}

	if _, err := fmt.Fprintln(fw.writer, message); err != nil {
		return err
	}

	if !fw.config.ShowDetails {
		return nil
	}
	for _, detail := range alert.Details {
		if _, err := fmt.Fprintf(fw.writer, "   %s\n", detail); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
