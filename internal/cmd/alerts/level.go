package alerts

import (
	"fmt"
	"strings"

	"github.com/agentstation/aitools/internal/cmd/emoji"
	"github.com/agentstation/aitools/pkg/errors"
)

// Level is the kind of an alert.
type Level uint8

const (
	// LevelInfo is a non-fatal notice, such as a duplicate favorite.
	LevelInfo Level = iota
	// LevelSuccess confirms a change, such as an added favorite.
	LevelSuccess
	// LevelError reports a failure that fails the command.
	LevelError
)

const resetColor = "\033[0m"

var levelInfo = [...]struct {
	name, icon, color string
}{
	LevelInfo:    {"info", emoji.Info, "\033[36m"},
	LevelSuccess: {"success", emoji.Success, "\033[32m"},
	LevelError:   {"error", emoji.Error, "\033[31m"},
}

func (l Level) valid() bool {
	return int(l) < len(levelInfo)
}

// String returns the level name.
func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("unknown(%d)", l)
	}
	return levelInfo[l].name
}

// Icon returns the symbol printed before plain alerts.
func (l Level) Icon() string {
	if !l.valid() {
		return "?"
	}
	return levelInfo[l].icon
}

// Color returns the ANSI color for plain alerts on a terminal.
func (l Level) Color() string {
	if !l.valid() {
		return resetColor
	}
	return levelInfo[l].color
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ParseLevel is the inverse of Level.String.
func ParseLevel(s string) (Level, error) {
	for i, info := range levelInfo {
		if strings.EqualFold(s, info.name) {
			return Level(i), nil
		}
	}
	return 0, errors.NewValidationError("level", s, "unknown alert level")
}
