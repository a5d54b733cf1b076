package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/debouncez"
	"github.com/zoobzio/debouncez/internal/fswatch"
)

var watchCommand = &cli.Command{
	Name:      "watch",
	Usage:     "Watch paths and print one event per quiet period.",
	ArgsUsage: "PATH...",
	Action: func(cCtx *cli.Context) error {
		paths := cCtx.Args().Slice()
		if len(paths) == 0 {
			return errors.New("at least one path is required")
		}
		return run(cCtx.Context, cfg.Metrics, func(ctx context.Context) error {
			return watchPaths(ctx, paths, os.Stdout, cfg.Window, debouncez.RealClock)
		})
	},
}

// watchPaths prints the last filesystem event of each burst until ctx ends.
func watchPaths(ctx context.Context, paths []string, w io.Writer, window time.Duration, clock debouncez.Clock) error {
	events, err := fswatch.Watch(ctx, paths...)
	if err != nil {
		return err
	}

	d := debouncez.NewDebouncer(events, window, clock).WithName("watch")
	defer d.Close()

	for event := range d.All(ctx) {
		if err := printEvent(w, event); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func printEvent(w io.Writer, event fsnotify.Event) error {
	if _, err := emitColor.Fprintf(w, "%s %s\n", event.Op, event.Name); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}
