package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/namelens/avail/internal/core"
	"github.com/namelens/avail/internal/core/catalog"
)

func sampleReport() *core.Report {
	return &core.Report{
		Target: "octocat",
		Results: []*core.CheckResult{
			{Category: core.CategoryDev, Name: "github", Available: core.AvailabilityTaken, Message: "HTTP 200"},
			{Category: core.CategoryDev, Name: "gitlab", Available: core.AvailabilityAvailable, Message: "HTTP 404"},
			{Category: core.CategoryWeb, Name: "octocat.com", Available: core.AvailabilityTaken},
			{Category: core.CategoryWeb, Name: "shorten", Available: core.AvailabilityError, Message: "i/o timeout"},
		},
		Failures: 1,
	}
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("table")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	format, err = ParseFormat("Console")
	require.NoError(t, err)
	require.Equal(t, FormatConsole, format)

	format, err = ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatConsole, format)

	_, err = ParseFormat("json")
	require.Error(t, err)
}

func TestConsoleFormatterPlain(t *testing.T) {
	rendered, err := NewFormatter(FormatConsole, Options{}).FormatReport(sampleReport())
	require.NoError(t, err)

	expected := strings.Join([]string{
		"dev",
		" - [N] github",
		" - [Y] gitlab",
		"web",
		" - [N] octocat.com",
		" - [?] shorten",
	}, "\n")
	require.Equal(t, expected, rendered)
}

func TestConsoleFormatterColor(t *testing.T) {
	rendered, err := NewFormatter(FormatConsole, Options{Color: true}).FormatReport(sampleReport())
	require.NoError(t, err)
	require.Contains(t, rendered, "[N] github")
	require.Contains(t, rendered, "[Y] gitlab")
	require.Contains(t, rendered, "[?] shorten")
	require.Equal(t, 6, len(strings.Split(rendered, "\n")))
}

func TestConsoleFormatterNil(t *testing.T) {
	rendered, err := (&ConsoleFormatter{}).FormatReport(nil)
	require.NoError(t, err)
	require.Empty(t, rendered)
}

func TestTableFormatter(t *testing.T) {
	rendered, err := NewFormatter(FormatTable, Options{}).FormatReport(sampleReport())
	require.NoError(t, err)
	require.Contains(t, rendered, "CATEGORY")
	require.Contains(t, rendered, "github")
	require.Contains(t, rendered, "available")
	require.Contains(t, strings.ToLower(rendered), "1/3 available, 1 unknown")
}

func TestSymbol(t *testing.T) {
	require.Equal(t, "Y", Symbol(core.AvailabilityAvailable))
	require.Equal(t, "N", Symbol(core.AvailabilityTaken))
	require.Equal(t, "?", Symbol(core.AvailabilityError))
	require.Equal(t, "?", Symbol(core.AvailabilityUnknown))
}

func TestFormatCatalog(t *testing.T) {
	entries := []catalog.Entry{
		{Category: core.CategoryWeb, Name: "shorten", Kind: core.CheckKindShorten},
		{Category: core.CategoryDev, Name: "github", Kind: core.CheckKindHTTP, Template: "https://github.com/%s"},
		{Category: core.CategoryWeb, Name: "*.com", Kind: core.CheckKindDNS, Template: "%s.com"},
	}

	rendered := FormatCatalog(entries, Options{})
	expected := strings.Join([]string{
		"dev",
		" - github (http https://github.com/%s)",
		"web",
		" - *.com (dns %s.com)",
		" - shorten (shorten)",
	}, "\n")
	require.Equal(t, expected, rendered)
}
