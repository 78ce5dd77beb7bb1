package middleware

import (
	"context"
	"time"

	"github.com/JaimeStill/function-api/pkg/router"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans and instruments produced by this package.
const InstrumentationName = "github.com/JaimeStill/function-api/pkg/middleware"

// Trace returns middleware that records one server span per dispatch.
// Matched requests are named "<METHOD> <path>"; unmatched requests keep the
// bare method name to bound span cardinality.
func Trace(tp trace.TracerProvider) router.Middleware {
	tracer := tp.Tracer(InstrumentationName)

	return func(next router.Handler) router.Handler {
		return func(ctx context.Context, req *router.Request) (*router.Response, error) {
			ctx, span := tracer.Start(ctx, req.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("url.path", req.Path),
				),
			)
			defer span.End()

			resp, err := next(ctx, req)
			status := statusOf(resp, err)

			if !router.IsNotFound(err) {
				span.SetName(req.Method + " " + req.Path)
			}
			span.SetAttributes(attribute.Int("http.response.status_code", status))

			if err != nil && !router.IsNotFound(err) {
				span.RecordError(err)
				span.SetStatus(codes.Error, "handler failure")
			}

			return resp, err
		}
	}
}

// Metrics returns middleware that counts dispatches and records their
// duration in seconds, both attributed by method and status.
func Metrics(mp metric.MeterProvider) (router.Middleware, error) {
	meter := mp.Meter(InstrumentationName)

	requests, err := meter.Int64Counter(
		"router.requests",
		metric.WithDescription("Number of dispatched requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"router.duration",
		metric.WithDescription("Dispatch duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return func(next router.Handler) router.Handler {
		return func(ctx context.Context, req *router.Request) (*router.Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.Int("http.response.status_code", statusOf(resp, err)),
			)
			requests.Add(ctx, 1, attrs)
			duration.Record(ctx, time.Since(start).Seconds(), attrs)

			return resp, err
		}
	}, nil
}
