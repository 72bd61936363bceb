package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/namelens/avail/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatConsole Format = "console"
	FormatTable   Format = "table"
)

// Options controls rendering.
type Options struct {
	Color bool
}

// Formatter renders a check report.
type Formatter interface {
	FormatReport(report *core.Report) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatConsole):
		return FormatConsole, nil
	case string(FormatTable):
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format, opts Options) Formatter {
	switch format {
	case FormatTable:
		return &TableFormatter{Color: opts.Color}
	default:
		return &ConsoleFormatter{Color: opts.Color}
	}
}

var (
	headerColors = text.Colors{text.FgHiWhite}
	statusColors = map[core.Availability]text.Colors{
		core.AvailabilityAvailable: {text.FgHiGreen},
		core.AvailabilityTaken:     {text.FgHiRed},
		core.AvailabilityError:     {text.FgHiYellow},
	}
)

// Symbol returns the single-letter status marker for an availability.
func Symbol(a core.Availability) string {
	switch a {
	case core.AvailabilityAvailable:
		return "Y"
	case core.AvailabilityTaken:
		return "N"
	default:
		return "?"
	}
}

func paint(enabled bool, colors text.Colors, s string) string {
	if !enabled || len(colors) == 0 {
		return s
	}
	return colors.Sprint(s)
}

func statusPaint(enabled bool, a core.Availability, s string) string {
	colors, ok := statusColors[a]
	if !ok {
		colors = statusColors[core.AvailabilityError]
	}
	return paint(enabled, colors, s)
}
