package client

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// failing returns a dispatch function for clients built entirely from
// overrides: every route that reaches it fails with ErrNoResponder.
func failing[Route any]() dispatchFunc[Route] {
	return func(_ context.Context, route Route, _ authGetter) (Response, error) {
		return Response{}, fmt.Errorf("%w: %+v", ErrNoResponder, route)
	}
}

// WithLogging returns a new client that logs every dispatch outcome. A nil
// logger falls back to slog.Default.
func (c *Client[Route]) WithLogging(logger *slog.Logger) *Client[Route] {
	if logger == nil {
		logger = slog.Default()
	}
	prev := c.dispatch
	if prev == nil {
		prev = failing[Route]()
	}
	return &Client[Route]{
		dispatch: func(ctx context.Context, route Route, getAuth authGetter) (Response, error) {
			start := time.Now()
			resp, err := prev(ctx, route, getAuth)
			duration := time.Since(start)
			if err != nil {
				logger.Error("dispatch failed",
					slog.Any("route", route),
					slog.Duration("duration", duration),
					slog.String("error", err.Error()))
				return resp, err
			}
			logger.Debug("dispatched",
				slog.Any("route", route),
				slog.Int("status", resp.StatusCode),
				slog.Duration("duration", duration))
			return resp, nil
		},
		getAuth: c.getAuth,
		setAuth: c.setAuth,
	}
}

// Metrics holds Prometheus metrics for client dispatch.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec
}

// NewMetrics creates dispatch metrics registered on the default registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "httpcodec"
	}
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of dispatched requests",
			},
			[]string{"status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Dispatch duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		RequestErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "request_errors_total",
				Help:      "Total number of failed dispatches",
			},
			[]string{"reason"},
		),
	}
}

// Instrument returns a new client that records dispatch metrics.
func (c *Client[Route]) Instrument(m *Metrics) *Client[Route] {
	prev := c.dispatch
	if prev == nil {
		prev = failing[Route]()
	}
	return &Client[Route]{
		dispatch: func(ctx context.Context, route Route, getAuth authGetter) (Response, error) {
			start := time.Now()
			resp, err := prev(ctx, route, getAuth)
			duration := time.Since(start).Seconds()

			status := strconv.Itoa(resp.StatusCode)
			if err != nil {
				status = "error"
				m.RequestErrors.WithLabelValues("dispatch").Inc()
			}
			m.RequestsTotal.WithLabelValues(status).Inc()
			m.RequestDuration.WithLabelValues(status).Observe(duration)

			return resp, err
		},
		getAuth: c.getAuth,
		setAuth: c.setAuth,
	}
}
