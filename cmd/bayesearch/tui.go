package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/poiesic/bayesearch"
	"github.com/poiesic/bayesearch/core"
	"github.com/poiesic/bayesearch/render"
)

// tui runs the play loop on a tcell screen: chart on top, menu and input
// line below.
type tui struct {
	game   *bayesearch.Game
	screen tcell.Screen
	chart  *render.Chart
	input  string
	status string
}

func runTUI(game *bayesearch.Game, screen tcell.Screen) error {
	t := &tui{
		game:   game,
		screen: screen,
		chart:  render.NewChart(),
	}
	for {
		t.draw()

		ev, ok := screen.PollEvent().(*tcell.EventKey)
		if !ok {
			// Resize and other events only need a redraw.
			screen.Sync()
			continue
		}

		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(t.input) > 0 {
				t.input = t.input[:len(t.input)-1]
			}
		case tcell.KeyEnter:
			done, err := t.submit()
			if err != nil || done {
				return err
			}
		case tcell.KeyRune:
			if game.Phase().Terminal() {
				return nil
			}
			t.input += string(ev.Rune())
		}
	}
}

// submit plays the typed choice. It reports true once the game has ended and
// the player has acknowledged the result.
func (t *tui) submit() (bool, error) {
	if t.game.Phase().Terminal() {
		return true, nil
	}

	choice := t.input
	t.input = ""
	report, err := t.game.PlayChoice(choice)
	if errors.Is(err, core.ErrUnrecognizedAction) {
		t.status = fmt.Sprintf("Unrecognized choice %q", strings.TrimSpace(choice))
		return false, nil
	}
	if err != nil {
		return true, err
	}

	switch {
	case report.Action.Kind == bayesearch.ActionQuit:
		return true, nil
	case report.Action.Kind == bayesearch.ActionRestart:
		t.status = "Starting over with a new target"
	case report.Found:
		t.status = fmt.Sprintf("Found in area %d at %s, press any key", report.Target.Area, t.game.GlobalTarget())
	default:
		t.status = fmt.Sprintf("%s: not found", report.Action)
	}
	return false, nil
}

func (t *tui) draw() {
	t.screen.Clear()
	width, height := t.screen.Size()

	menu := t.game.Menu()
	menuRows := len(menu) + 2
	chartRows := max(height-menuRows, 0)

	view := render.ViewOf(t.game)
	view.Status = t.status
	t.chart.Draw(render.Region(t.screen, 0, 0, width, chartRows), view)

	below := render.Region(t.screen, 0, chartRows, width, menuRows)
	for i, item := range menu {
		render.DrawText(below, 0, i, fmt.Sprintf("%s - %s", item.Choice, item.Action), tcell.StyleDefault)
	}
	render.DrawText(below, 0, len(menu)+1, "Choice: "+t.input, tcell.StyleDefault.Bold(true))

	t.screen.Show()
}
