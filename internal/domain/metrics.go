package domain

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	m "snare.dev/pkg/snare/internal/model"
)

var (
	tracer = otel.Tracer("snare.engine")
	meter  = otel.Meter("snare.engine")
)

var (
	executionsTotal   metric.Int64Counter
	candidatesTotal   metric.Int64Counter
	phaseTimeouts     metric.Int64Counter
	recoveriesTotal   metric.Int64Counter
	executionDuration metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		if executionsTotal, err = meter.Int64Counter(
			"snare_executions_total",
			metric.WithDescription("Total number of verdict executions"),
		); err != nil {
			metricsErr = err
			return
		}

		if candidatesTotal, err = meter.Int64Counter(
			"snare_candidate_catches_total",
			metric.WithDescription("Executions that passed on original and failed on the mutant"),
		); err != nil {
			metricsErr = err
			return
		}

		if phaseTimeouts, err = meter.Int64Counter(
			"snare_phase_timeouts_total",
			metric.WithDescription("Build-and-test phases killed on timeout"),
		); err != nil {
			metricsErr = err
			return
		}

		if recoveriesTotal, err = meter.Int64Counter(
			"snare_recoveries_total",
			metric.WithDescription("Single-shot recovery attempts"),
		); err != nil {
			metricsErr = err
			return
		}

		if executionDuration, err = meter.Float64Histogram(
			"snare_execution_duration_seconds",
			metric.WithDescription("Wall-clock duration of verdict executions"),
			metric.WithUnit("s"),
		); err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func startExecutionSpan(ctx context.Context, executionID, mutantID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Engine.Execute",
		trace.WithAttributes(
			attribute.String("snare.execution_id", executionID),
			attribute.String("snare.mutant_id", mutantID),
		),
	)
}

// recordExecution finishes the span and bumps the execution instruments.
func recordExecution(ctx context.Context, span trace.Span, result m.ExecutionResult, elapsed time.Duration) {
	verdict := result.Verdict().String()

	span.SetAttributes(
		attribute.String("snare.verdict", verdict),
		attribute.Bool("snare.passes_on_original", result.PassesOnOriginal),
		attribute.Bool("snare.fails_on_mutant", result.FailsOnMutant),
	)

	if result.Verdict() == m.Error {
		span.SetStatus(codes.Error, result.ErrorMessage)
	}

	if err := initMetrics(); err != nil {
		slog.Debug("Metrics unavailable", "error", err)
		return
	}

	attrs := metric.WithAttributes(attribute.String("verdict", verdict))
	executionsTotal.Add(ctx, 1, attrs)
	executionDuration.Record(ctx, elapsed.Seconds(), attrs)

	if result.IsCandidateCatch {
		candidatesTotal.Add(ctx, 1)
	}

	if result.OriginalTimedOut {
		phaseTimeouts.Add(ctx, 1, metric.WithAttributes(attribute.String("phase", "original")))
	}

	if result.MutantTimedOut {
		phaseTimeouts.Add(ctx, 1, metric.WithAttributes(attribute.String("phase", "mutant")))
	}
}

func recordRecovery(ctx context.Context, outcome string) {
	if err := initMetrics(); err != nil {
		return
	}

	recoveriesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
