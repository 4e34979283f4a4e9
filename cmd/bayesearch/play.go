package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/poiesic/bayesearch"
	"github.com/poiesic/bayesearch/core"
	"github.com/urfave/cli/v2"
)

func playCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	game, err := bayesearch.NewGame(cfg, bayesearch.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	if c.Bool("tui") {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		return runTUI(game, screen)
	}
	return runSession(game, c.App.Reader, c.App.Writer)
}

// runSession plays game on a line-oriented terminal until the target is
// found, the player quits, or input ends.
func runSession(game *bayesearch.Game, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	printPriors(out, game.Round()-1, game.Priors())

	for {
		fmt.Fprint(out, "\n", game.Menu().String(), "Choice: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		report, err := game.PlayChoice(scanner.Text())
		if errors.Is(err, core.ErrUnrecognizedAction) {
			fmt.Fprintf(out, "\nUnrecognized choice %q, try again.\n", strings.TrimSpace(scanner.Text()))
			continue
		}
		if err != nil {
			return err
		}

		switch report.Action.Kind {
		case bayesearch.ActionQuit:
			fmt.Fprintln(out, "\nSearch abandoned.")
			return nil
		case bayesearch.ActionRestart:
			fmt.Fprintln(out, "\nStarting over with a new target.")
			printPriors(out, 0, report.Priors)
			continue
		}

		printRound(out, report)
		if report.Found {
			printFound(out, game, report)
			return nil
		}
	}
}

func printRound(out io.Writer, report *bayesearch.RoundReport) {
	fmt.Fprintf(out, "\nRound %d: %s\n", report.Round, report.Action)
	for _, result := range report.Results {
		fmt.Fprintf(out, "  area %d: %d coordinates searched\n", result.Area, len(result.Searched))
	}
	fmt.Fprintf(out, "Search effectiveness (E): %s\n", formatSeries("E", report.Effectiveness))
	printPriors(out, report.Round, report.Priors)
}

func printPriors(out io.Writer, round int, priors []float64) {
	if round == 0 {
		fmt.Fprintf(out, "Initial target probabilities (P): %s\n", formatSeries("P", priors))
		return
	}
	fmt.Fprintf(out, "Target probabilities (P) after round %d: %s\n", round, formatSeries("P", priors))
}

func printFound(out io.Writer, game *bayesearch.Game, report *bayesearch.RoundReport) {
	fmt.Fprintf(out, "\nTarget found in area %d at local %s, chart %s, after %d round(s).\n",
		report.Target.Area, report.Target.Local, game.GlobalTarget(), report.Round)
}

// formatSeries renders values as "X1 = 0.123, X2 = ...".
func formatSeries(label string, values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%s%d = %.3f", label, i+1, v)
	}
	return strings.Join(parts, ", ")
}
