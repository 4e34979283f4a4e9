package simulate

import (
	"fmt"
	"slices"

	"github.com/poiesic/bayesearch"
	"github.com/poiesic/bayesearch/core"
)

// Policy chooses the next action for a game awaiting a choice.
type Policy interface {
	Name() string
	Choose(game *bayesearch.Game) bayesearch.Action
}

// Policy names accepted by ParsePolicy.
const (
	PolicyHighest    = "highest"
	PolicyTwice      = "twice"
	PolicyRoundRobin = "round-robin"
)

// PolicyNames lists the built-in policies.
func PolicyNames() []string {
	return []string{PolicyHighest, PolicyTwice, PolicyRoundRobin}
}

// ParsePolicy returns the built-in policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case PolicyHighest, "":
		return highestPair{}, nil
	case PolicyTwice:
		return mostLikelyTwice{}, nil
	case PolicyRoundRobin:
		return roundRobin{}, nil
	default:
		return nil, fmt.Errorf("%w: %w: %q", core.ErrConfiguration, ErrUnknownPolicy, name)
	}
}

// highestPair searches the two most likely areas once each.
// With a single area it searches that area twice.
type highestPair struct{}

func (highestPair) Name() string { return PolicyHighest }

func (highestPair) Choose(game *bayesearch.Game) bayesearch.Action {
	order := game.MostLikely()
	if len(order) < 2 {
		return bayesearch.SearchTwice(order[0])
	}
	pair := []core.AreaID{order[0], order[1]}
	slices.Sort(pair)
	return bayesearch.SearchPair(pair[0], pair[1])
}

// mostLikelyTwice searches the most likely area twice.
type mostLikelyTwice struct{}

func (mostLikelyTwice) Name() string { return PolicyTwice }

func (mostLikelyTwice) Choose(game *bayesearch.Game) bayesearch.Action {
	return bayesearch.SearchTwice(game.MostLikely()[0])
}

// roundRobin searches each area twice in turn, ignoring the priors.
type roundRobin struct{}

func (roundRobin) Name() string { return PolicyRoundRobin }

func (roundRobin) Choose(game *bayesearch.Game) bayesearch.Action {
	n := game.Config().NumAreas()
	return bayesearch.SearchTwice(core.AreaID((game.Round()-1)%n + 1))
}
