package output

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/namelens/avail/internal/core/catalog"
)

// FormatCatalog lists catalog entries grouped by category, in the same order
// a check would report them.
func FormatCatalog(entries []catalog.Entry, opts Options) string {
	sorted := append([]catalog.Entry(nil), entries...)
	slices.SortStableFunc(sorted, func(a, b catalog.Entry) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	var sb strings.Builder
	for i, e := range sorted {
		if i == 0 || e.Category != sorted[i-1].Category {
			sb.WriteString(paint(opts.Color, headerColors, string(e.Category)))
			sb.WriteByte('\n')
		}
		line := fmt.Sprintf(" - %s (%s", e.Name, e.Kind)
		if e.Template != "" {
			line += " " + e.Template
		}
		sb.WriteString(line + ")\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
