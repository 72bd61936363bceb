package core

import "time"

// Category groups catalog entries in the output.
type Category string

const (
	CategorySocial  Category = "social"
	CategoryDev     Category = "dev"
	CategoryPackage Category = "package"
	CategoryWeb     Category = "web"
)

// CheckKind identifies how a checker probes its target.
type CheckKind string

const (
	CheckKindHTTP    CheckKind = "http"
	CheckKindDNS     CheckKind = "dns"
	CheckKindShorten CheckKind = "shorten"
)

// Availability represents the availability state for a check.
type Availability int

const (
	AvailabilityUnknown   Availability = 0
	AvailabilityAvailable Availability = 1
	AvailabilityTaken     Availability = 2
	AvailabilityError     Availability = 3
)

// String returns a lowercase label for the availability state.
func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityTaken:
		return "taken"
	case AvailabilityError:
		return "error"
	default:
		return "unknown"
	}
}

// Provenance captures metadata about how a check was resolved.
type Provenance struct {
	CheckID     string
	RequestedAt time.Time
	ResolvedAt  time.Time
	Source      CheckKind
	Server      string
}

// CheckResult reports the outcome of a single checker for one target.
//
// Name is the display name after probing (e.g. the synthesized domain of a
// shortening check); CatalogName is the name the checker was sorted by.
type CheckResult struct {
	Category    Category
	CatalogName string
	Name        string
	Available   Availability
	Message     string
	Provenance  Provenance
}

// Report is the full outcome of a run for a target.
type Report struct {
	Target      string
	Results     []*CheckResult
	Failures    int
	StartedAt   time.Time
	CompletedAt time.Time
}

// Failed reports whether at least one checker raised an error.
func (r *Report) Failed() bool {
	return r != nil && r.Failures > 0
}

// Counts returns the number of available, taken, and errored results.
func (r *Report) Counts() (available, taken, failed int) {
	if r == nil {
		return 0, 0, 0
	}
	for _, result := range r.Results {
		if result == nil {
			continue
		}
		switch result.Available {
		case AvailabilityAvailable:
			available++
		case AvailabilityTaken:
			taken++
		case AvailabilityError:
			failed++
		}
	}
	return available, taken, failed
}
