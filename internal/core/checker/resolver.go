package checker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DefaultDNSTimeout bounds a single lookup when no timeout is configured.
const DefaultDNSTimeout = 5 * time.Second

// ErrHostNotFound reports a definitive name resolution failure. Checkers turn
// it into an available verdict rather than an error.
var ErrHostNotFound = errors.New("host not found")

// Resolver resolves a hostname to its IPv4 addresses.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// NewResolver returns a ServerResolver when server is set, otherwise the
// system resolver.
func NewResolver(server, network string, timeout time.Duration) Resolver {
	if strings.TrimSpace(server) == "" {
		return &SystemResolver{Timeout: timeout}
	}
	return &ServerResolver{Server: server, Net: network, Timeout: timeout}
}

// SystemResolver resolves through the platform resolver.
type SystemResolver struct {
	Resolver *net.Resolver
	Timeout  time.Duration
}

// LookupHost resolves host to IPv4 addresses. Only an authoritative "no such
// host" (or no IPv4 address) maps to ErrHostNotFound; server failures, dial
// errors and cancellation are returned as errors.
func (r *SystemResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resolver := net.DefaultResolver
	timeout := DefaultDNSTimeout
	if r != nil {
		if r.Resolver != nil {
			resolver = r.Resolver
		}
		if r.Timeout > 0 {
			timeout = r.Timeout
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ips, err := resolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("resolve %s: %w", host, ctxErr)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("resolve %s: %w", host, err)
		}
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return nil, fmt.Errorf("%s: %w", host, ErrHostNotFound)
		}
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("%s: %w", host, ErrHostNotFound)
	}

	addrs := make([]string, 0, len(ips))
	for _, ip := range ips {
		addrs = append(addrs, ip.String())
	}
	return addrs, nil
}

// ServerResolver sends A queries straight to a configured nameserver.
type ServerResolver struct {
	Server  string
	Net     string
	Timeout time.Duration
}

// LookupHost queries the nameserver for A records of host. NXDOMAIN and
// empty answers count as not found; other response codes are errors.
func (r *ServerResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	if r == nil || strings.TrimSpace(r.Server) == "" {
		return nil, errors.New("dns server resolver is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultDNSTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := &dns.Client{Net: r.Net, Timeout: timeout}
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), dns.TypeA)

	resp, _, err := client.ExchangeContext(ctx, msg, serverAddr(r.Server))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, fmt.Errorf("%s: %w", host, ErrHostNotFound)
	default:
		return nil, fmt.Errorf("resolve %s: %s", host, dns.RcodeToString[resp.Rcode])
	}

	var addrs []string
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			addrs = append(addrs, a.A.String())
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%s: %w", host, ErrHostNotFound)
	}
	return addrs, nil
}

func serverAddr(server string) string {
	server = strings.TrimSpace(server)
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	return net.JoinHostPort(strings.Trim(server, "[]"), "53")
}
