package search

import (
	"github.com/poiesic/bayesearch/core"
)

// SearchMonitor provides hooks to observe a search pass.
// Implement this interface to track intermediate steps of the executor.
type SearchMonitor interface {
	Start(area core.AreaID, effectiveness float64)
	AfterCandidates(area core.AreaID, remaining int)
	AfterCoverage(area core.AreaID, examined []core.Coord)
	Hit(target core.Target)
	Finish(result *core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.AreaID, _ float64)              {}
func (n *noopMonitor) AfterCandidates(_ core.AreaID, _ int)        {}
func (n *noopMonitor) AfterCoverage(_ core.AreaID, _ []core.Coord) {}
func (n *noopMonitor) Hit(_ core.Target)                           {}
func (n *noopMonitor) Finish(_ *core.SearchResult)                 {}
