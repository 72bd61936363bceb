package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/namelens/avail/internal/core"
	"github.com/namelens/avail/internal/core/checker"
)

type stubChecker struct {
	category core.Category
	name     string
	probe    checker.Probe
	err      error
	panics   bool
	delay    time.Duration

	mu   sync.Mutex
	seen []string
}

func (s *stubChecker) Probe(ctx context.Context, target string) (checker.Probe, error) {
	s.mu.Lock()
	s.seen = append(s.seen, target)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return checker.Probe{}, ctx.Err()
		}
	}
	if s.panics {
		panic("unexpected")
	}
	return s.probe, s.err
}

func (s *stubChecker) Category() core.Category { return s.category }

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Kind() core.CheckKind { return core.CheckKindHTTP }

func stub(category core.Category, name string, available bool) *stubChecker {
	return &stubChecker{category: category, name: name, probe: checker.Probe{Available: available}}
}

func TestSortedGroupsByCategoryThenName(t *testing.T) {
	input := []checker.Checker{
		stub("web", "shorten", true),
		stub("dev", "gitlab", true),
		stub("social", "twitter", true),
		stub("dev", "github", true),
		nil,
		stub("web", "*.com", true),
	}

	ordered := Sorted(input)
	var got []string
	for _, c := range ordered {
		got = append(got, string(c.Category())+"/"+c.Name())
	}
	require.Equal(t, []string{"dev/github", "dev/gitlab", "social/twitter", "web/*.com", "web/shorten"}, got)
	require.Equal(t, "shorten", input[0].Name())
}

func TestCheckAllSucceed(t *testing.T) {
	github := stub("dev", "github", false)
	shorten := &stubChecker{category: "web", name: "shorten", probe: checker.Probe{Name: "octoc.at", Available: true}}

	o := &Orchestrator{Checkers: []checker.Checker{shorten, github}}
	report, err := o.Check(context.Background(), "octocat")
	require.NoError(t, err)
	require.False(t, report.Failed())
	require.Len(t, report.Results, 2)

	require.Equal(t, core.CategoryDev, report.Results[0].Category)
	require.Equal(t, "github", report.Results[0].Name)
	require.Equal(t, core.AvailabilityTaken, report.Results[0].Available)

	require.Equal(t, "octoc.at", report.Results[1].Name)
	require.Equal(t, "shorten", report.Results[1].CatalogName)
	require.Equal(t, core.AvailabilityAvailable, report.Results[1].Available)
	require.NotEmpty(t, report.Results[1].Provenance.CheckID)

	require.Equal(t, []string{"octocat"}, github.seen)
}

func TestCheckFailureDoesNotAbortRun(t *testing.T) {
	failing := &stubChecker{category: "dev", name: "bitbucket", err: errors.New("tls handshake timeout")}
	panicking := &stubChecker{category: "dev", name: "dockerhub", panics: true}
	ok := stub("package", "npm", true)

	o := &Orchestrator{Checkers: []checker.Checker{ok, panicking, failing}}
	report, err := o.Check(context.Background(), "octocat")
	require.NoError(t, err)
	require.True(t, report.Failed())
	require.Equal(t, 2, report.Failures)

	require.Equal(t, core.AvailabilityError, report.Results[0].Available)
	require.Contains(t, report.Results[0].Message, "tls handshake timeout")
	require.Equal(t, core.AvailabilityError, report.Results[1].Available)
	require.Contains(t, report.Results[1].Message, "panicked")
	require.Equal(t, core.AvailabilityAvailable, report.Results[2].Available)
	require.Equal(t, []string{"octocat"}, ok.seen)

	available, taken, failed := report.Counts()
	require.Equal(t, 1, available)
	require.Equal(t, 0, taken)
	require.Equal(t, 2, failed)
}

func TestCheckParallelKeepsSortedOrder(t *testing.T) {
	checkers := []checker.Checker{
		&stubChecker{category: "web", name: "*.com", delay: 5 * time.Millisecond},
		&stubChecker{category: "dev", name: "github", delay: 30 * time.Millisecond},
		&stubChecker{category: "social", name: "tumblr"},
		&stubChecker{category: "package", name: "cargo", delay: 10 * time.Millisecond},
	}

	o := &Orchestrator{Checkers: checkers, Workers: 4}
	report, err := o.Check(context.Background(), "octocat")
	require.NoError(t, err)

	var got []string
	for _, r := range report.Results {
		got = append(got, r.Name)
	}
	require.Equal(t, []string{"github", "cargo", "tumblr", "*.com"}, got)
}

func TestCheckTimeoutBecomesError(t *testing.T) {
	slow := &stubChecker{category: "dev", name: "github", delay: time.Second}
	o := &Orchestrator{Checkers: []checker.Checker{slow}, Timeout: 10 * time.Millisecond}

	report, err := o.Check(context.Background(), "octocat")
	require.NoError(t, err)
	require.Equal(t, 1, report.Failures)
	require.Equal(t, core.AvailabilityError, report.Results[0].Available)
}

func TestCheckRejectsEmptyTarget(t *testing.T) {
	github := stub("dev", "github", true)
	o := &Orchestrator{Checkers: []checker.Checker{github}}

	_, err := o.Check(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptyTarget)
	require.Empty(t, github.seen)
}

func TestCheckProbesTargetVerbatim(t *testing.T) {
	github := stub("dev", "github", true)
	o := &Orchestrator{Checkers: []checker.Checker{github}}

	report, err := o.Check(context.Background(), " octocat ")
	require.NoError(t, err)
	require.Equal(t, " octocat ", report.Target)
	require.Equal(t, []string{" octocat "}, github.seen)
}
