package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/namelens/avail/internal/core"
	"github.com/namelens/avail/internal/core/checker"
	apperrors "github.com/namelens/avail/internal/errors"
)

// ErrEmptyTarget is returned when the target is blank.
var ErrEmptyTarget = errors.New("target is required")

// Orchestrator runs every checker against one target and collects the
// results in (category, name) order.
type Orchestrator struct {
	Checkers []checker.Checker

	// Workers bounds how many probes run at once. Values below 2 run the
	// probes one after another.
	Workers int

	// Timeout bounds each probe. Zero leaves it to the checker's clients.
	Timeout time.Duration

	Logger *logging.Logger
	Clock  func() time.Time
}

// Sorted returns the checkers ordered by category, then catalog name. The
// input slice is left untouched.
func Sorted(checkers []checker.Checker) []checker.Checker {
	ordered := make([]checker.Checker, 0, len(checkers))
	for _, c := range checkers {
		if c != nil {
			ordered = append(ordered, c)
		}
	}
	slices.SortStableFunc(ordered, func(a, b checker.Checker) int {
		if c := cmp.Compare(a.Category(), b.Category()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name(), b.Name())
	})
	return ordered
}

// Check probes target with every checker. A failing checker never stops the
// run; it shows up as an AvailabilityError result and in Report.Failures.
func (o *Orchestrator) Check(ctx context.Context, target string) (*core.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if o == nil {
		return nil, errors.New("orchestrator is not configured")
	}

	if strings.TrimSpace(target) == "" {
		return nil, ErrEmptyTarget
	}

	ordered := Sorted(o.Checkers)
	report := &core.Report{
		Target:    target,
		Results:   make([]*core.CheckResult, len(ordered)),
		StartedAt: o.now(),
	}

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(ordered) && len(ordered) > 0 {
		workers = len(ordered)
	}

	pool := workerpool.New(workers)
	for i, c := range ordered {
		pool.Submit(func() {
			report.Results[i] = o.run(ctx, c, target)
		})
	}
	pool.StopWait()

	for _, result := range report.Results {
		if result.Available == core.AvailabilityError {
			report.Failures++
		}
	}
	report.CompletedAt = o.now()

	o.debug("Check completed",
		zap.String("target", target),
		zap.Int("checks", len(report.Results)),
		zap.Int("failures", report.Failures),
		zap.Duration("elapsed", report.CompletedAt.Sub(report.StartedAt)),
	)
	return report, nil
}

func (o *Orchestrator) run(ctx context.Context, c checker.Checker, target string) *core.CheckResult {
	requestedAt := o.now()
	result := &core.CheckResult{
		Category:    c.Category(),
		CatalogName: c.Name(),
		Name:        c.Name(),
		Provenance: core.Provenance{
			CheckID:     uuid.New().String(),
			RequestedAt: requestedAt,
			Source:      c.Kind(),
		},
	}

	probe, err := o.probe(ctx, c, target)
	result.Provenance.ResolvedAt = o.now()
	result.Provenance.Server = probe.Server
	if probe.Name != "" {
		result.Name = probe.Name
	}

	if err != nil {
		envelope := apperrors.WrapProbeFailure(ctx, err, string(c.Category()), c.Name(), target)
		result.Available = core.AvailabilityError
		result.Message = err.Error()
		o.debug("Probe failed",
			zap.String("checker", string(c.Category())+"/"+c.Name()),
			zap.String("error_code", envelope.Code),
			zap.String("correlation_id", envelope.CorrelationID),
			zap.Error(err),
		)
		return result
	}

	if probe.Available {
		result.Available = core.AvailabilityAvailable
	} else {
		result.Available = core.AvailabilityTaken
	}
	if probe.StatusCode != 0 {
		result.Message = fmt.Sprintf("HTTP %d", probe.StatusCode)
	}
	o.debug("Probe completed",
		zap.String("checker", string(c.Category())+"/"+c.Name()),
		zap.String("name", result.Name),
		zap.String("availability", result.Available.String()),
		zap.Duration("elapsed", result.Provenance.ResolvedAt.Sub(requestedAt)),
	)
	return result
}

func (o *Orchestrator) probe(ctx context.Context, c checker.Checker, target string) (probe checker.Probe, err error) {
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("checker panicked: %v", r)
		}
	}()

	return c.Probe(ctx, target)
}

func (o *Orchestrator) debug(msg string, fields ...zap.Field) {
	if o == nil || o.Logger == nil {
		return
	}
	o.Logger.Debug(msg, fields...)
}

func (o *Orchestrator) now() time.Time {
	if o != nil && o.Clock != nil {
		return o.Clock()
	}
	return time.Now().UTC()
}
