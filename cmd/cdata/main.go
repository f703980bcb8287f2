// Command cdata converts game data tables between JSON and C source.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cdata",
		Usage: "convert game data tables between JSON and C initializers",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug events",
				EnvVars: []string{"CDATA_VERBOSE"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "log warnings and errors only",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			tablesCommand,
			buildCommand,
			extractCommand,
			allCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Err(err).Msg("cdata failed")
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	level := zerolog.InfoLevel
	switch {
	case c.Bool("verbose"):
		level = zerolog.DebugLevel
	case c.Bool("quiet"):
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	return nil
}
