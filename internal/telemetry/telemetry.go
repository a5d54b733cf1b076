// Package telemetry sets up the OpenTelemetry metrics SDK for the CLI.
//
// nolint: ireturn
package telemetry

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/zoobzio/debouncez/internal/metrics"
)

// Option is a function that configures the OTEL SDK.
type Option func(*options)

type options struct {
	stdout       bool
	registerer   prometheus.Registerer
	metricReader metric.Reader
}

// WithStdout periodically exports metrics to stdout.
func WithStdout() Option {
	return func(o *options) {
		o.stdout = true
	}
}

// WithPrometheus exposes metrics through the given Prometheus registerer.
func WithPrometheus(registerer prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = registerer
	}
}

// WithMetricReader adds a metric reader.
func WithMetricReader(reader metric.Reader) Option {
	return func(o *options) {
		o.metricReader = reader
	}
}

func applyOptions(opts []Option) *options {
	opt := &options{}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// SetupOTELSDK installs a meter provider globally and binds the debounce
// instruments to it. The returned shutdown flushes and releases exporters.
func SetupOTELSDK(
	ctx context.Context,
	opts ...Option,
) (
	shutdown func(context.Context) error,
	err error,
) {
	o := applyOptions(opts)
	var shutdownFuncs []func(context.Context) error

	// shutdown calls cleanup functions registered via shutdownFuncs.
	// The errors from the calls are joined.
	// Each registered cleanup will be invoked once.
	shutdown = func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}

	meterProvider, err := newMeterProvider(o)
	if err != nil {
		err = errors.Join(err, shutdown(ctx))
		return shutdown, err
	}
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	otel.SetMeterProvider(meterProvider)
	metrics.InitMetrics(meterProvider)

	return shutdown, nil
}

func newMeterProvider(o *options) (*metric.MeterProvider, error) {
	var opts []metric.Option
	if o.stdout {
		metricExporter, err := stdoutmetric.New()
		if err != nil {
			return nil, err
		}
		opts = append(opts, metric.WithReader(metric.NewPeriodicReader(metricExporter)))
	}
	if o.registerer != nil {
		exporter, err := otelprom.New(otelprom.WithRegisterer(o.registerer))
		if err != nil {
			return nil, err
		}
		opts = append(opts, metric.WithReader(exporter))
	}
	if o.metricReader != nil {
		opts = append(opts, metric.WithReader(o.metricReader))
	}
	return metric.NewMeterProvider(opts...), nil
}
