// Command debouncez debounces line-oriented input or filesystem events from the
// command line.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/debouncez/internal/config"
)

var cfg = config.Default()

var app = &cli.App{
	Name:  "debouncez",
	Usage: "Emit only the last item of each burst, after a quiet period.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file path.",
			EnvVars: []string{"DEBOUNCEZ_CONFIG"},
		},
		&cli.DurationFlag{
			Name:    "window",
			Aliases: []string{"w"},
			Value:   config.DefaultWindow,
			Usage:   "Quiet period an item must survive before it is emitted.",
			EnvVars: []string{"DEBOUNCEZ_WINDOW"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (trace, debug, info, warn, error).",
			EnvVars: []string{"DEBOUNCEZ_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "console",
			Usage:   "Log format (console or json).",
			EnvVars: []string{"DEBOUNCEZ_LOG_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "Address serving Prometheus metrics on /metrics. Disabled when empty.",
			EnvVars: []string{"DEBOUNCEZ_METRICS_LISTEN"},
		},
		&cli.BoolFlag{
			Name:    "metrics-stdout",
			Usage:   "Periodically dump metrics to stdout.",
			EnvVars: []string{"DEBOUNCEZ_METRICS_STDOUT"},
		},
	},
	Before: func(cCtx *cli.Context) error {
		loaded, err := loadConfig(cCtx)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err := newLogger(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		log.Logger = logger
		zerolog.DefaultContextLogger = &log.Logger
		cCtx.Context = logger.WithContext(cCtx.Context)
		return nil
	},
	Commands: []*cli.Command{
		linesCommand,
		watchCommand,
	},
}

// loadConfig reads the config file, if any, then applies flags that were set
// explicitly on the command line or through the environment.
func loadConfig(cCtx *cli.Context) (*config.Config, error) {
	c := config.Default()
	if path := cCtx.String("config"); path != "" {
		var err error
		if c, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if cCtx.IsSet("window") {
		c.Window = cCtx.Duration("window")
	}
	if cCtx.IsSet("log-level") {
		c.Log.Level = cCtx.String("log-level")
	}
	if cCtx.IsSet("log-format") {
		c.Log.Format = cCtx.String("log-format")
	}
	if cCtx.IsSet("metrics-listen") {
		c.Metrics.Listen = cCtx.String("metrics-listen")
	}
	if cCtx.IsSet("metrics-stdout") {
		c.Metrics.Stdout = cCtx.Bool("metrics-stdout")
	}

	return c, c.Validate()
}

func main() {
	_ = godotenv.Load()

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("debouncez crashed")
	}
}
