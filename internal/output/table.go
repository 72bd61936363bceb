package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/namelens/avail/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct {
	Color bool
}

// FormatReport renders a report as a table.
func (f *TableFormatter) FormatReport(report *core.Report) (string, error) {
	if report == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Category", "Status", "Name", "Notes"})

	for _, r := range report.Results {
		if r == nil {
			continue
		}
		t.AppendRow(table.Row{
			string(r.Category),
			statusPaint(f.Color, r.Available, r.Available.String()),
			r.Name,
			r.Message,
		})
	}

	available, taken, failed := report.Counts()
	if total := available + taken; total > 0 || failed > 0 {
		summary := fmt.Sprintf("%d/%d available", available, total)
		if failed > 0 {
			summary += fmt.Sprintf(", %d unknown", failed)
		}
		t.AppendFooter(table.Row{"", summary, "", ""})
	}

	return t.Render(), nil
}
