package otel_test

import (
	"context"
	"errors"
	"reservas/infras/otel"
	"reservas/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "reservas.ListViews")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"query":  "SELECT 1",
		"rows":   3,
		"cached": true,
		"ids":    []string{"1", "2"},
		"other":  int64(7),
	})
	scope.AddEvent("loaded")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	ended := spans[0]
	assert.Equal(t, "reservas.ListViews", ended.Name())
	assert.Equal(t, codes.Error, ended.Status().Code)
	assert.Equal(t, "boom", ended.Status().Description)
	assert.Len(t, ended.Attributes(), 5)
	// AddEvent plus the exception event from RecordError
	assert.Len(t, ended.Events(), 2)
}

func TestScope_ClientErrorKeepsStatus(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "reservas.GetView")
	scope := otel.NewScope(span)

	scope.TraceError(failure.NotFound("reservation not found"))
	scope.SetAttribute("ids", []int64{1, 2})
	scope.End()

	ended := recorder.Ended()[0]
	assert.Equal(t, codes.Unset, ended.Status().Code)
	require.Len(t, ended.Events(), 1)
	assert.Equal(t, "client_error", ended.Events()[0].Name)
	assert.Len(t, ended.Attributes(), 1)
}
