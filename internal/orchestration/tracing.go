package orchestration

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/a079777/internal/sequence"
)

const tracerName = "github.com/agbru/a079777/internal/orchestration"

// startRunSpan opens the span covering one engine run. Without a configured
// TracerProvider the global no-op tracer is used.
func startRunSpan(ctx context.Context, key string, spec RunSpec) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "sequence.Run",
		trace.WithAttributes(
			attribute.String("engine", key),
			attribute.Int64("range.from", int64(spec.Range.From)),
			attribute.Int64("range.to", int64(spec.Range.To)),
			attribute.Int64("chunk.size", int64(spec.Options.ChunkSize)),
		),
	)
}

// checkpointEvent records a checkpoint on the run span.
func checkpointEvent(span trace.Span, stats sequence.ChunkStats) {
	span.AddEvent("checkpoint", trace.WithAttributes(
		attribute.Int64("chunk", int64(stats.Chunk)),
		attribute.Int64("index", int64(stats.To)),
		attribute.Int64("zeros", int64(stats.Zeros)),
	))
}

// endRunSpan records the outcome of the run and closes the span.
func endRunSpan(span trace.Span, res sequence.Result, err error) {
	span.SetAttributes(
		attribute.Int64("zeros", int64(res.Zeros)),
		attribute.Int64("processed", int64(res.Processed)),
		attribute.Int64("chunks", int64(res.Chunks)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run failed")
	}
	span.End()
}
