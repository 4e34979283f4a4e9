package search

import (
	"github.com/poiesic/bayesearch/core"
)

// History records, per area, the coordinates already examined during a game.
// Membership checks are O(1); iteration follows insertion order.
// A History is not safe for concurrent use.
type History struct {
	areas []areaHistory
}

type areaHistory struct {
	seen  map[core.Coord]struct{}
	order []core.Coord
}

// NewHistory creates an empty history for numAreas areas.
func NewHistory(numAreas int) *History {
	h := &History{areas: make([]areaHistory, numAreas)}
	h.Reset()
	return h
}

// NumAreas returns the number of areas tracked.
func (h *History) NumAreas() int {
	return len(h.areas)
}

// AlreadySearched reports whether c has been examined in area.
func (h *History) AlreadySearched(area core.AreaID, c core.Coord) (bool, error) {
	ah, err := h.area(area)
	if err != nil {
		return false, err
	}
	_, ok := ah.seen[c]
	return ok, nil
}

// Record adds a batch of coordinates to an area's history.
// Coordinates already present, including repeats within the batch, are ignored.
// Returns the number of coordinates actually added.
func (h *History) Record(area core.AreaID, coords []core.Coord) (int, error) {
	ah, err := h.area(area)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, c := range coords {
		if _, ok := ah.seen[c]; ok {
			continue
		}
		ah.seen[c] = struct{}{}
		ah.order = append(ah.order, c)
		added++
	}
	return added, nil
}

// Searched returns a copy of an area's examined coordinates in insertion order.
func (h *History) Searched(area core.AreaID) ([]core.Coord, error) {
	ah, err := h.area(area)
	if err != nil {
		return nil, err
	}
	out := make([]core.Coord, len(ah.order))
	copy(out, ah.order)
	return out, nil
}

// Count returns the number of coordinates examined in area.
func (h *History) Count(area core.AreaID) (int, error) {
	ah, err := h.area(area)
	if err != nil {
		return 0, err
	}
	return len(ah.order), nil
}

// Total returns the number of coordinates examined across all areas.
func (h *History) Total() int {
	total := 0
	for i := range h.areas {
		total += len(h.areas[i].order)
	}
	return total
}

// Reset forgets every examined coordinate.
func (h *History) Reset() {
	for i := range h.areas {
		h.areas[i] = areaHistory{seen: make(map[core.Coord]struct{})}
	}
}

func (h *History) area(area core.AreaID) (*areaHistory, error) {
	if err := core.ValidateAreaID(area, len(h.areas)); err != nil {
		return nil, err
	}
	return &h.areas[area.Index()], nil
}
