package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/zoobzio/debouncez/internal/config"
	"github.com/zoobzio/debouncez/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

// run executes pipeline next to the telemetry it is configured with. It
// returns when the pipeline ends, or when SIGINT/SIGTERM cancels it.
func run(parent context.Context, c config.Metrics, pipeline func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := zerolog.Ctx(ctx)

	var opts []telemetry.Option
	registry := prometheus.NewRegistry()
	if c.Listen != "" {
		opts = append(opts, telemetry.WithPrometheus(registry))
	}
	if c.Stdout {
		opts = append(opts, telemetry.WithStdout())
	}
	shutdown, err := telemetry.SetupOTELSDK(ctx, opts...)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Err(err).Msg("failed to shut down telemetry")
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		err := pipeline(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if c.Listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{
			Addr:              c.Listen,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		g.Go(func() error {
			log.Info().Str("listen", c.Listen).Msg("serving metrics")
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(ctx)
		})
	}

	return g.Wait()
}
