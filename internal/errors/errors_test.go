package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapProbeFailureUsesRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")

	envelope := WrapProbeFailure(ctx, stderrors.New("dial tcp: refused"), "dev", "github", "octocat")
	require.Equal(t, CodeProbeFailed, envelope.Code)
	require.Equal(t, "run-123", envelope.CorrelationID)
	require.Equal(t, "github", envelope.Context["checker"])
	require.Equal(t, "octocat", envelope.Context["target"])
	require.Equal(t, "dial tcp: refused", envelope.Context["wrapped_error"])
}

func TestWrapGeneratesCorrelationID(t *testing.T) {
	envelope := WrapConfigInvalid(context.Background(), stderrors.New("bad"), "config rejected")
	require.Equal(t, CodeConfigInvalid, envelope.Code)
	require.NotEmpty(t, envelope.CorrelationID)
	require.Empty(t, RunID(context.Background()))
}

func TestEnsureEnvelope(t *testing.T) {
	original := WrapCatalogInvalid(context.Background(), stderrors.New("dup"), "duplicate entry")
	require.Same(t, original, EnsureEnvelope(original))
	require.Same(t, original, EnsureEnvelope(fmt.Errorf("load: %w", original)))

	wrapped := EnsureEnvelope(stderrors.New("boom"))
	require.Equal(t, CodeInternal, wrapped.Code)
	require.Equal(t, "boom", wrapped.Message)
	require.Equal(t, "boom", wrapped.Context["wrapped_error"])

	require.Equal(t, CodeInternal, EnsureEnvelope(nil).Code)
}

func TestFields(t *testing.T) {
	envelope := WrapProbeFailure(WithRunID(context.Background(), "abc"), stderrors.New("x"), "web", "*.io", "octocat")
	fields := Fields(envelope)
	require.NotEmpty(t, fields)
	require.Equal(t, "error_code", fields[0].Key)
	require.Nil(t, Fields(nil))
}
