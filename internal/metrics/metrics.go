// Package metrics holds the OpenTelemetry instruments recorded by debouncers.
//
// Instruments are created from the global meter provider, which delegates to
// whatever provider is later installed with otel.SetMeterProvider. Until then
// recording is a no-op.
package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/zoobzio/debouncez"

// Debounce metrics
var Debounce struct {
	// Received is the number of items taken from upstream sequences.
	Received metric.Int64Counter
	// Superseded is the number of pending items dropped by a newer arrival.
	Superseded metric.Int64Counter
	// Emitted is the number of items handed to consumers.
	Emitted metric.Int64Counter
	// Latency is the time between an emitted item's arrival and its emission.
	Latency metric.Float64Histogram
}

func init() {
	InitMetrics(otel.GetMeterProvider())
}

// InitMetrics binds the instruments to provider. Call it before any debouncer
// runs; instruments are not safe to rebind concurrently with recording.
func InitMetrics(provider metric.MeterProvider) {
	meter := provider.Meter(meterName)

	var err error
	Debounce.Received, err = meter.Int64Counter(
		"debounce_items_received",
		metric.WithDescription("Number of items taken from the upstream sequence"),
	)
	if err != nil {
		panic(err)
	}
	Debounce.Superseded, err = meter.Int64Counter(
		"debounce_items_superseded",
		metric.WithDescription("Number of pending items dropped because a newer item arrived"),
	)
	if err != nil {
		panic(err)
	}
	Debounce.Emitted, err = meter.Int64Counter(
		"debounce_items_emitted",
		metric.WithDescription("Number of items emitted after a quiet period"),
	)
	if err != nil {
		panic(err)
	}
	Debounce.Latency, err = meter.Float64Histogram(
		"debounce_latency",
		metric.WithDescription("Time between the arrival of an emitted item and its emission"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}
