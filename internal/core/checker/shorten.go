package checker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/namelens/avail/internal/core"
)

// ErrEmptyLabel is returned when the target is nothing but a suffix, so the
// candidate domain would start with a dot.
var ErrEmptyLabel = errors.New("empty label before top-level domain")

// ShortenChecker looks for a "domain hack": a target whose tail is a known
// top-level domain, such as exampleio -> example.io.
type ShortenChecker struct {
	entry
	Resolver Resolver

	// TLDs overrides the suffix table; nil uses TLDs.
	TLDs []string
}

// NewShortenChecker returns a ShortenChecker using the built-in TLD table.
func NewShortenChecker(category core.Category, name string, resolver Resolver) *ShortenChecker {
	return &ShortenChecker{
		entry:    entry{category: category, name: name},
		Resolver: resolver,
	}
}

// Kind returns the checker kind.
func (c *ShortenChecker) Kind() core.CheckKind {
	return core.CheckKindShorten
}

// Probe resolves the shortened candidate domain. Targets without a matching
// suffix are reported as taken and never reach the resolver. A target that
// equals a suffix (e.g. "io") yields ".io" and fails with ErrEmptyLabel.
func (c *ShortenChecker) Probe(ctx context.Context, target string) (Probe, error) {
	table := TLDs
	if c != nil && c.TLDs != nil {
		table = c.TLDs
	}

	domain, ok := ShortenCandidate(target, table)
	if !ok {
		name := ""
		if c != nil {
			name = c.name
		}
		return Probe{Name: name}, nil
	}

	if strings.HasPrefix(domain, ".") {
		return Probe{Name: domain, Server: domain}, fmt.Errorf("%s: %w", domain, ErrEmptyLabel)
	}

	var resolver Resolver
	if c != nil {
		resolver = c.Resolver
	}
	return resolveProbe(ctx, resolver, domain)
}

// ShortenCandidate splits target on the first suffix in table order it ends
// with. The first match wins even when a longer suffix also matches: with
// the built-in table "examplemobi" becomes "examplemo.bi", not "example.mobi".
//
// It returns false when nothing matches. When target equals the suffix the
// candidate has an empty first label, e.g. ".io".
func ShortenCandidate(target string, table []string) (string, bool) {
	for _, tld := range table {
		if tld == "" || !strings.HasSuffix(target, tld) {
			continue
		}
		return target[:len(target)-len(tld)] + "." + tld, true
	}
	return "", false
}
