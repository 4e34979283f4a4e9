// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/bayesearch/scenario"
	"github.com/poiesic/bayesearch/simulate"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "bayesearch",
		Usage:     "Bayesian search and rescue simulation",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Play an interactive search",
				Action: playCommand,
				Flags: append(scenarioFlags(),
					&cli.BoolFlag{
						Name:  "tui",
						Usage: "Draw the chart in a full-screen terminal UI",
					},
				),
			},
			{
				Name:   "simulate",
				Usage:  "Play many games under a fixed policy and report find rates",
				Action: simulateCommand,
				Flags: append(scenarioFlags(),
					&cli.IntFlag{
						Name:    "trials",
						Aliases: []string{"n"},
						Usage:   "Number of games to play",
						Value:   1000,
					},
					&cli.IntFlag{
						Name:  "max-rounds",
						Usage: "Give up on a game after this many rounds",
						Value: simulate.DefaultMaxRounds,
					},
					&cli.StringFlag{
						Name:  "policy",
						Usage: "Search policy (" + strings.Join(simulate.PolicyNames(), ", ") + ")",
						Value: simulate.PolicyHighest,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of games played concurrently (default NumCPU/2)",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N games (0 disables progress)",
						Value: 100,
					},
				),
			},
		},
	}
}

// scenarioFlags are shared by every command that builds a game.
func scenarioFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a TOML scenario file",
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "Random seed (0 seeds from the clock)",
		},
		&cli.StringFlag{
			Name:  "rule",
			Usage: "Belief revision rule (literal, search-theory)",
		},
	}
}

// loadConfig reads the scenario file, if any, and applies flag overrides.
func loadConfig(c *cli.Context) (*scenario.Config, error) {
	cfg := scenario.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = scenario.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("rule") {
		cfg.Rule = c.String("rule")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
