// Package bayesearch runs a turn-based search for a hidden target spread
// across rectangular search areas.
//
// A Game owns a GameState: the hidden target, the per-area search history,
// and the belief over which area holds the target. Each round the player
// picks one Action from the game's Menu. Search actions run one or two
// passes through the search executor, then revise the belief; the game is
// resolved when a pass covers the target.
//
//	game, err := bayesearch.NewGame(scenario.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	report, err := game.Play(bayesearch.SearchPair(1, 2))
package bayesearch
