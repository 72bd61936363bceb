package checker

import (
	"context"
	"errors"

	"github.com/namelens/avail/internal/core"
)

// DNSChecker treats a name as available when the substituted host does not
// resolve.
type DNSChecker struct {
	entry
	Host     string
	Resolver Resolver
}

// NewDNSChecker returns a DNSChecker for the given host template.
func NewDNSChecker(category core.Category, name, hostTemplate string, resolver Resolver) *DNSChecker {
	return &DNSChecker{
		entry:    entry{category: category, name: name},
		Host:     hostTemplate,
		Resolver: resolver,
	}
}

// Kind returns the checker kind.
func (c *DNSChecker) Kind() core.CheckKind {
	return core.CheckKindDNS
}

// Probe resolves the substituted host. The probe name is the host itself.
func (c *DNSChecker) Probe(ctx context.Context, target string) (Probe, error) {
	if c == nil || c.Host == "" {
		return Probe{}, errors.New("dns checker is not configured")
	}
	return resolveProbe(ctx, c.Resolver, substitute(c.Host, target))
}

func resolveProbe(ctx context.Context, resolver Resolver, host string) (Probe, error) {
	probe := Probe{Name: host, Server: host}
	if resolver == nil {
		resolver = &SystemResolver{}
	}

	_, err := resolver.LookupHost(ctx, host)
	switch {
	case err == nil:
		return probe, nil
	case errors.Is(err, ErrHostNotFound):
		probe.Available = true
		return probe, nil
	default:
		return probe, err
	}
}
