package checker

import (
	"context"
	"strings"

	"github.com/namelens/avail/internal/core"
)

// Placeholder is the substitution slot in URL and host templates.
const Placeholder = "%s"

// Checker is the interface all availability checkers implement.
type Checker interface {
	// Probe checks whether target is available on the checker's platform.
	Probe(ctx context.Context, target string) (Probe, error)

	// Category returns the catalog category of the checker.
	Category() core.Category

	// Name returns the catalog display name of the checker.
	Name() string

	// Kind returns how the checker probes.
	Kind() core.CheckKind
}

// Probe is the outcome of a single availability probe.
//
// Name is the display name to report. DNS based checkers set it to the host
// they resolved, even when the probe fails.
type Probe struct {
	Name       string
	Available  bool
	Server     string
	StatusCode int
}

type entry struct {
	category core.Category
	name     string
}

func (e entry) Category() core.Category { return e.category }

func (e entry) Name() string { return e.name }

func substitute(template, target string) string {
	return strings.Replace(template, Placeholder, target, 1)
}
