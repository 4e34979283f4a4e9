package bayesearch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/bayesearch/core"
)

// ActionKind enumerates what a player can do in a round.
type ActionKind int

const (
	// ActionQuit ends the game.
	ActionQuit ActionKind = iota
	// ActionSearchTwice searches one area with two passes.
	ActionSearchTwice
	// ActionSearchPair searches two different areas once each.
	ActionSearchPair
	// ActionRestart starts a new game with a new target.
	ActionRestart
)

// Action is one entry of the closed action set.
type Action struct {
	Kind   ActionKind
	First  core.AreaID // set for search actions
	Second core.AreaID // set for ActionSearchPair
}

// SearchTwice returns the action that searches area twice.
func SearchTwice(area core.AreaID) Action {
	return Action{Kind: ActionSearchTwice, First: area}
}

// SearchPair returns the action that searches a and then b.
func SearchPair(a, b core.AreaID) Action {
	return Action{Kind: ActionSearchPair, First: a, Second: b}
}

// Quit returns the quit action.
func Quit() Action {
	return Action{Kind: ActionQuit}
}

// Restart returns the restart action.
func Restart() Action {
	return Action{Kind: ActionRestart}
}

// Passes returns the areas searched by the action, one entry per pass.
func (a Action) Passes() []core.AreaID {
	switch a.Kind {
	case ActionSearchTwice:
		return []core.AreaID{a.First, a.First}
	case ActionSearchPair:
		return []core.AreaID{a.First, a.Second}
	default:
		return nil
	}
}

// IsSearch reports whether the action runs search passes.
func (a Action) IsSearch() bool {
	return a.Kind == ActionSearchTwice || a.Kind == ActionSearchPair
}

func (a Action) String() string {
	switch a.Kind {
	case ActionQuit:
		return "Quit"
	case ActionSearchTwice:
		return fmt.Sprintf("Search Area %d twice", a.First)
	case ActionSearchPair:
		return fmt.Sprintf("Search Areas %d & %d", a.First, a.Second)
	case ActionRestart:
		return "Start Over"
	default:
		return fmt.Sprintf("Action(%d)", int(a.Kind))
	}
}

// validate checks area references for numAreas areas.
func (a Action) validate(numAreas int) error {
	switch a.Kind {
	case ActionQuit, ActionRestart:
		return nil
	case ActionSearchTwice:
		return core.ValidateAreaID(a.First, numAreas)
	case ActionSearchPair:
		if err := core.ValidateAreaID(a.First, numAreas); err != nil {
			return err
		}
		if err := core.ValidateAreaID(a.Second, numAreas); err != nil {
			return err
		}
		if a.First == a.Second {
			return fmt.Errorf("%w: pair search needs two different areas, got %d twice",
				core.ErrUnrecognizedAction, a.First)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", core.ErrUnrecognizedAction, a)
	}
}

// MenuItem binds a typed choice to an action.
type MenuItem struct {
	Choice string
	Action Action
}

// Menu is the ordered, closed set of actions offered each round.
type Menu []MenuItem

// NewMenu builds the menu for numAreas areas: quit, search each area twice,
// search each pair of areas, start over. With three areas the choices are
// numbered 0 through 7.
func NewMenu(numAreas int) Menu {
	actions := []Action{Quit()}
	for a := 1; a <= numAreas; a++ {
		actions = append(actions, SearchTwice(core.AreaID(a)))
	}
	for a := 1; a <= numAreas; a++ {
		for b := a + 1; b <= numAreas; b++ {
			actions = append(actions, SearchPair(core.AreaID(a), core.AreaID(b)))
		}
	}
	actions = append(actions, Restart())

	menu := make(Menu, len(actions))
	for i, action := range actions {
		menu[i] = MenuItem{Choice: strconv.Itoa(i), Action: action}
	}
	return menu
}

// Parse maps a typed choice to its action.
func (m Menu) Parse(choice string) (Action, error) {
	choice = strings.TrimSpace(choice)
	for _, item := range m {
		if item.Choice == choice {
			return item.Action, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q", core.ErrUnrecognizedAction, choice)
}

// ParseAction maps a typed choice to one of menu's actions.
func ParseAction(choice string, menu Menu) (Action, error) {
	return menu.Parse(choice)
}

// String renders the menu one choice per line.
func (m Menu) String() string {
	var b strings.Builder
	b.WriteString("Choose next areas to search:\n")
	for _, item := range m {
		fmt.Fprintf(&b, "  %s - %s\n", item.Choice, item.Action)
	}
	return b.String()
}
