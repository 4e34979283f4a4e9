package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/bayesearch"
	"github.com/poiesic/bayesearch/core"
	"github.com/poiesic/bayesearch/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(strings.NewReader(input), &out, &errOut)
	err := app.Run(append([]string{"bayesearch"}, args...))
	return out.String(), errOut.String(), err
}

func findCommand(t *testing.T, name string) *cli.Command {
	t.Helper()
	for _, cmd := range newApp(nil, nil, nil).Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}

func TestSimulateCommandFlags(t *testing.T) {
	cmd := findCommand(t, "simulate")

	defaults := map[string]any{}
	for _, flag := range cmd.Flags {
		switch f := flag.(type) {
		case *cli.IntFlag:
			defaults[f.Name] = f.Value
		case *cli.StringFlag:
			defaults[f.Name] = f.Value
		}
	}

	assert.Equal(t, 1000, defaults["trials"])
	assert.Equal(t, 50, defaults["max-rounds"])
	assert.Equal(t, "highest", defaults["policy"])
	assert.Equal(t, 100, defaults["report-interval"])
	assert.Equal(t, "", defaults["config"], "config has no default value")
}

func TestPlayCommandFlags(t *testing.T) {
	cmd := findCommand(t, "play")

	names := []string{}
	for _, flag := range cmd.Flags {
		names = append(names, flag.Names()[0])
	}
	assert.ElementsMatch(t, []string{"config", "seed", "rule", "tui"}, names)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := runApp(t, "", "--log-level", "loud", "play")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestPlayCommand_Quit(t *testing.T) {
	out, _, err := runApp(t, "0\n", "play", "--seed", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Initial target probabilities (P): P1 = 0.200, P2 = 0.500, P3 = 0.300")
	assert.Contains(t, out, "0 - Quit")
	assert.Contains(t, out, "Search abandoned.")
}

func TestPlayCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[areas]]
prior = 0.6
rect = { min_x = 0, min_y = 0, max_x = 20, max_y = 20 }

[[areas]]
prior = 0.4
rect = { min_x = 0, min_y = 20, max_x = 20, max_y = 40 }
`), 0644))

	out, _, err := runApp(t, "0\n", "play", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "P1 = 0.600, P2 = 0.400")
	assert.Contains(t, out, "3 - Search Areas 1 & 2")
}

func TestPlayCommand_BadConfig(t *testing.T) {
	_, _, err := runApp(t, "", "play", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, _, err = runApp(t, "", "play", "--rule", "guesswork")
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func newSessionGame(t *testing.T) *bayesearch.Game {
	t.Helper()
	cfg := scenario.NewConfig(scenario.WithSeed(21), scenario.WithEffectivenessRange(1, 1))
	game, err := bayesearch.NewGame(cfg)
	require.NoError(t, err)
	return game
}

func TestRunSession_Found(t *testing.T) {
	game := newSessionGame(t)
	target := game.Target()

	// Choices 1..3 search the matching area twice
	input := fmt.Sprintf("nine\n%d\n", target.Area)
	var out bytes.Buffer
	require.NoError(t, runSession(game, strings.NewReader(input), &out))

	text := out.String()
	assert.Contains(t, text, `Unrecognized choice "nine", try again.`)
	assert.Contains(t, text, fmt.Sprintf("Round 1: Search Area %d twice", target.Area))
	assert.Contains(t, text, "Search effectiveness (E): E1 = ")
	assert.Contains(t, text, "Target probabilities (P) after round 1: P1 = ")
	assert.Contains(t, text, fmt.Sprintf("Target found in area %d at local %s, chart %s, after 1 round(s).",
		target.Area, target.Local, game.GlobalTarget()))
	assert.Equal(t, bayesearch.PhaseResolved, game.Phase())
}

func TestRunSession_RestartThenEOF(t *testing.T) {
	game := newSessionGame(t)

	var out bytes.Buffer
	require.NoError(t, runSession(game, strings.NewReader("7\n"), &out))

	assert.Contains(t, out.String(), "Starting over with a new target.")
	assert.Equal(t, bayesearch.PhaseAwaitingChoice, game.Phase())
	assert.Equal(t, 1, game.Round())
}

func TestSimulateCommand(t *testing.T) {
	out, _, err := runApp(t, "", "simulate",
		"--seed", "3", "--trials", "8", "--max-rounds", "20",
		"--policy", "twice", "--pool-size", "2", "--report-interval", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Policy:        twice")
	assert.Contains(t, out, "Trials:        8 (max 20 rounds)")
	assert.Contains(t, out, "Area 3 finds:")
}

func TestSimulateCommand_Progress(t *testing.T) {
	_, errOut, err := runApp(t, "", "simulate", "--seed", "3", "--trials", "4", "--report-interval", "2")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Trials: 4/4")
}

func TestSimulateCommand_UnknownPolicy(t *testing.T) {
	_, _, err := runApp(t, "", "simulate", "--policy", "guess")
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestFormatSeries(t *testing.T) {
	assert.Equal(t, "P1 = 0.258, P2 = 0.403, P3 = 0.339", formatSeries("P", []float64{0.2581, 0.4032, 0.3387}))
	assert.Equal(t, "", formatSeries("E", nil))
}
