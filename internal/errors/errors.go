package errors

import (
	"context"
	stderrors "errors"

	"github.com/fulmenhq/gofulmen/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Error codes used across avail.
const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeCatalogInvalid = "CATALOG_INVALID"
	CodeProbeFailed    = "PROBE_FAILED"
	CodeInternal       = "INTERNAL_ERROR"
)

type runIDKey struct{}

// WithRunID stores the run's correlation ID in ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the correlation ID stored by WithRunID, if any.
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

func WrapInvalidInput(ctx context.Context, err error, message string) *errors.ErrorEnvelope {
	return wrap(ctx, CodeInvalidInput, err, message, nil)
}

func WrapConfigInvalid(ctx context.Context, err error, message string) *errors.ErrorEnvelope {
	return wrap(ctx, CodeConfigInvalid, err, message, nil)
}

func WrapCatalogInvalid(ctx context.Context, err error, message string) *errors.ErrorEnvelope {
	return wrap(ctx, CodeCatalogInvalid, err, message, nil)
}

// WrapProbeFailure describes a checker that could not reach a verdict.
func WrapProbeFailure(ctx context.Context, err error, category, checker, target string) *errors.ErrorEnvelope {
	envelope := wrap(ctx, CodeProbeFailed, err, "probe failed", map[string]interface{}{
		"category": category,
		"checker":  checker,
		"target":   target,
	})
	if updated, sevErr := envelope.WithSeverity(errors.SeverityMedium); sevErr == nil {
		envelope = updated
	}
	return envelope
}

// EnsureEnvelope normalizes any error into a gofulmen ErrorEnvelope.
func EnsureEnvelope(err error) *errors.ErrorEnvelope {
	if err == nil {
		env := errors.NewErrorEnvelope(CodeInternal, "unexpected nil error")
		env, _ = env.WithSeverity(errors.SeverityCritical)
		return env
	}

	var envelope *errors.ErrorEnvelope
	if stderrors.As(err, &envelope) && envelope != nil {
		return envelope
	}

	env := errors.NewErrorEnvelope(CodeInternal, err.Error())
	env = withWrappedError(env, err)
	env, _ = env.WithSeverity(errors.SeverityHigh)
	return env
}

// Fields renders the envelope as zap fields for logging.
func Fields(envelope *errors.ErrorEnvelope) []zap.Field {
	if envelope == nil {
		return nil
	}

	fields := []zap.Field{
		zap.String("error_code", envelope.Code),
	}
	if envelope.Severity != "" {
		fields = append(fields, zap.String("severity", string(envelope.Severity)))
	}
	if envelope.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", envelope.CorrelationID))
	}
	for key, value := range envelope.Context {
		fields = append(fields, zap.Any(key, value))
	}
	return fields
}

func wrap(ctx context.Context, code string, err error, message string, extra map[string]interface{}) *errors.ErrorEnvelope {
	envelope := errors.NewErrorEnvelope(code, message)
	id := correlationID(ctx)
	envelope = envelope.WithCorrelationID(id)
	envelope = envelope.WithTraceID(id)

	contextData := make(map[string]interface{}, len(extra)+1)
	for key, value := range extra {
		contextData[key] = value
	}
	if err != nil {
		contextData["wrapped_error"] = err.Error()
	}
	if len(contextData) == 0 {
		return envelope
	}
	if updated, ctxErr := envelope.WithContext(contextData); ctxErr == nil {
		envelope = updated
	}
	return envelope
}

// correlationID returns the run ID from ctx or a fresh UUID.
func correlationID(ctx context.Context) string {
	if id := RunID(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}

func withWrappedError(envelope *errors.ErrorEnvelope, err error) *errors.ErrorEnvelope {
	if envelope == nil || err == nil {
		return envelope
	}

	updated, updateErr := envelope.WithContext(map[string]interface{}{
		"wrapped_error": err.Error(),
	})
	if updateErr != nil {
		return envelope
	}
	return updated
}
