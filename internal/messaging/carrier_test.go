package messaging

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestHeaderCarrier(t *testing.T) {
	msg := kafka.Message{Headers: []kafka.Header{{Key: "content-type", Value: []byte("application/json")}}}
	carrier := NewHeaderCarrier(&msg)

	assert.Equal(t, "application/json", carrier.Get("content-type"))
	assert.Empty(t, carrier.Get("missing"))

	carrier.Set("traceparent", "first")
	carrier.Set("traceparent", "second")

	assert.Equal(t, "second", carrier.Get("traceparent"))
	assert.ElementsMatch(t, []string{"content-type", "traceparent"}, carrier.Keys())
	require.Len(t, msg.Headers, 2)
}

func TestHeaderCarrier_PropagatesTraceContext(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	var msg kafka.Message
	propagator := propagation.TraceContext{}
	propagator.Inject(ctx, NewHeaderCarrier(&msg))

	extracted := trace.SpanContextFromContext(propagator.Extract(context.Background(), NewHeaderCarrier(&msg)))
	assert.Equal(t, traceID, extracted.TraceID())
	assert.Equal(t, spanID, extracted.SpanID())
	assert.True(t, extracted.IsRemote())
}
