package output

import (
	"fmt"
	"strings"

	"github.com/namelens/avail/internal/core"
)

// ConsoleFormatter prints one header per category followed by a
// " - [Y] name" line per result.
type ConsoleFormatter struct {
	Color bool
}

// FormatReport renders results in report order. Results must already be
// sorted by category for the grouping to hold.
func (f *ConsoleFormatter) FormatReport(report *core.Report) (string, error) {
	if report == nil {
		return "", nil
	}

	var sb strings.Builder
	var last core.Category
	first := true
	for _, r := range report.Results {
		if r == nil {
			continue
		}
		if first || r.Category != last {
			sb.WriteString(paint(f.Color, headerColors, string(r.Category)))
			sb.WriteByte('\n')
			last = r.Category
			first = false
		}
		sb.WriteString(paint(f.Color, headerColors, " - "))
		sb.WriteString(statusPaint(f.Color, r.Available, fmt.Sprintf("[%s] %s", Symbol(r.Available), r.Name)))
		sb.WriteByte('\n')
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}
