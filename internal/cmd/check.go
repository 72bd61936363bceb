package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/namelens/avail/internal/config"
	"github.com/namelens/avail/internal/core/catalog"
	"github.com/namelens/avail/internal/core/checker"
	"github.com/namelens/avail/internal/core/engine"
	apperrors "github.com/namelens/avail/internal/errors"
	"github.com/namelens/avail/internal/httpclient"
	"github.com/namelens/avail/internal/observability"
	"github.com/namelens/avail/internal/output"
)

// ErrProbeFailures is returned after the report is printed when at least one
// checker could not reach a verdict.
var ErrProbeFailures = errors.New("one or more checks could not complete")

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = apperrors.WithRunID(ctx, uuid.NewString())

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return apperrors.WrapConfigInvalid(ctx, err, fmt.Sprintf("invalid configuration: %v", err))
	}

	logger := observability.InitCLILogger(config.AppName, verbose, cfg.Logging.Level)

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return apperrors.WrapInvalidInput(ctx, err, err.Error())
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	opts := output.Options{Color: colorEnabled(cfg.Output.Color, noColor)}

	entries, err := loadEntries(cfg.Catalog)
	if err != nil {
		return apperrors.WrapCatalogInvalid(ctx, err, fmt.Sprintf("invalid catalog: %v", err))
	}

	if listCatalog {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), output.FormatCatalog(entries, opts))
		return err
	}

	deps := catalog.Deps{
		HTTPClient: httpclient.New(httpclient.Options{
			Timeout:   cfg.HTTP.Timeout,
			UserAgent: cfg.HTTP.UserAgent,
			Logger:    logger,
			Debug:     verbose,
		}),
		Resolver: checker.NewResolver(cfg.DNS.Server, cfg.DNS.Net, cfg.DNS.Timeout),
	}
	cat, err := catalog.Build(entries, deps)
	if err != nil {
		return apperrors.WrapCatalogInvalid(ctx, err, fmt.Sprintf("invalid catalog: %v", err))
	}

	logger.Debug("Starting check",
		zap.String("target", args[0]),
		zap.Int("checks", cat.Len()),
		zap.Int("workers", cfg.Workers),
		zap.String("run_id", apperrors.RunID(ctx)),
	)

	orch := &engine.Orchestrator{
		Checkers: cat.Checkers(),
		Workers:  cfg.Workers,
		Timeout:  cfg.ProbeTimeout(),
		Logger:   logger,
	}
	return checkTarget(ctx, cmd.OutOrStdout(), orch, args[0], output.NewFormatter(format, opts))
}

// checkTarget runs every checker, writes the report to w and returns
// ErrProbeFailures when any checker failed.
func checkTarget(ctx context.Context, w io.Writer, orch *engine.Orchestrator, target string, formatter output.Formatter) error {
	report, err := orch.Check(ctx, target)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyTarget) {
			return apperrors.WrapInvalidInput(ctx, err, "target must not be empty")
		}
		return err
	}

	rendered, err := formatter.FormatReport(report)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, rendered); err != nil {
		return err
	}

	if report.Failed() {
		return ErrProbeFailures
	}
	return nil
}

// loadEntries assembles the built-in catalog, the user's extra entries and
// the skip list.
func loadEntries(cfg config.CatalogConfig) ([]catalog.Entry, error) {
	entries, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	if cfg.File != "" {
		extra, err := catalog.LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		entries = append(entries, extra...)
	}

	if err := catalog.Validate(entries); err != nil {
		return nil, err
	}
	return catalog.Without(entries, cfg.Skip)
}

// colorEnabled honors --no-color and the NO_COLOR convention over config.
func colorEnabled(configured, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return configured
}
