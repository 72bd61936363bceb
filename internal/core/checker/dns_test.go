package checker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/namelens/avail/internal/core"
)

type stubResolver struct {
	addrs []string
	err   error
	seen  []string
}

func (s *stubResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	s.seen = append(s.seen, host)
	return s.addrs, s.err
}

func TestDNSCheckerNotFoundIsAvailable(t *testing.T) {
	resolver := &stubResolver{err: fmt.Errorf("octocat.io: %w", ErrHostNotFound)}
	checker := NewDNSChecker(core.CategoryWeb, "*.io", "%s.io", resolver)

	probe, err := checker.Probe(context.Background(), "octocat")
	require.NoError(t, err)
	require.True(t, probe.Available)
	require.Equal(t, "octocat.io", probe.Name)
	require.Equal(t, []string{"octocat.io"}, resolver.seen)
}

func TestDNSCheckerResolvedIsTaken(t *testing.T) {
	resolver := &stubResolver{addrs: []string{"192.0.2.10"}}
	checker := NewDNSChecker(core.CategoryWeb, "*.com", "%s.com", resolver)

	probe, err := checker.Probe(context.Background(), "octocat")
	require.NoError(t, err)
	require.False(t, probe.Available)
	require.Equal(t, "octocat.com", probe.Name)
}

func TestDNSCheckerOtherErrorsPropagate(t *testing.T) {
	resolver := &stubResolver{err: errors.New("i/o timeout")}
	checker := NewDNSChecker(core.CategoryWeb, "*.net", "%s.net", resolver)

	probe, err := checker.Probe(context.Background(), "octocat")
	require.Error(t, err)
	require.Equal(t, "octocat.net", probe.Name)
	require.Equal(t, "*.net", checker.Name())
}
