// Package alerts formats the messages the CLI prints next to its data:
// favorite outcomes, empty results and command failures. Alerts go to
// stderr so stdout stays machine-readable.
package alerts

import (
	"fmt"
	"io"

	"github.com/agentstation/aitools/pkg/catalogs"
)

// Alert is one user-facing message, optionally about a specific tool.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
	Subject *Subject
}

// Subject identifies the tool an alert is about. Name is empty when the id
// is not in the catalog.
type Subject struct {
	ID   catalogs.ToolID
	Name string
}

// New creates an alert.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewError creates an error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewInfo creates an info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// WithError attaches the underlying error.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails appends hint lines shown under the message.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// About sets the tool the alert refers to.
func (a *Alert) About(id catalogs.ToolID, name string) *Alert {
	a.Subject = &Subject{ID: id, Name: name}
	return a
}

// IsError reports whether the alert describes a failure.
func (a *Alert) IsError() bool {
	return a.Level == LevelError
}

// String renders the alert as "icon message[: err]".
func (a *Alert) String() string {
	if a.Err != nil {
		return fmt.Sprintf("%s %s: %v", a.Level.Icon(), a.Message, a.Err)
	}
	return a.Level.Icon() + " " + a.Message
}

// Writer receives alerts.
type Writer interface {
	WriteAlert(alert *Alert) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(*Alert) error

// WriteAlert calls f.
func (f WriterFunc) WriteAlert(alert *Alert) error {
	return f(alert)
}

// Filter passes to w only the alerts keep accepts.
func Filter(w Writer, keep func(*Alert) bool) Writer {
	return WriterFunc(func(alert *Alert) error {
		if !keep(alert) {
			return nil
		}
		return w.WriteAlert(alert)
	})
}

// NewWriterTo writes each alert as one plain line.
func NewWriterTo(w io.Writer) Writer {
	return WriterFunc(func(alert *Alert) error {
		_, err := fmt.Fprintln(w, alert.String())
		return err
	})
}
