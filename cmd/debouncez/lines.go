package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/debouncez"
)

var linesCommand = &cli.Command{
	Name:  "lines",
	Usage: "Debounce lines read from stdin; print the last line of each burst.",
	Action: func(cCtx *cli.Context) error {
		return run(cCtx.Context, cfg.Metrics, func(ctx context.Context) error {
			return debounceLines(ctx, os.Stdin, os.Stdout, cfg.Window, debouncez.RealClock)
		})
	},
}

var emitColor = color.New(color.FgGreen, color.Bold)

// debounceLines reads r line by line and writes one line per quiet period to w.
// It returns once r is exhausted and the final line has been flushed.
// If ctx ends first it returns ctx.Err() at once; the reading goroutine stays
// blocked in r until r yields or is closed by its owner, then exits.
func debounceLines(ctx context.Context, r io.Reader, w io.Writer, window time.Duration, clock debouncez.Clock) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	d := debouncez.NewDebouncer(lines, window, clock).WithName("lines")
	defer d.Close()

	for {
		line, ok, err := d.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if _, err := emitColor.Fprintln(w, line); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}

	s := d.Stats()
	zerolog.Ctx(ctx).Info().
		Int64("received", s.Received).
		Int64("emitted", s.Emitted).
		Msg("input exhausted")

	if err := <-scanErr; err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
