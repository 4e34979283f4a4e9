package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for campaigns and other derived entities.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// AreaID identifies a search area. Areas are numbered from 1.
type AreaID int

// Index returns the zero-based slice index for the area.
func (a AreaID) Index() int {
	return int(a) - 1
}

// Coord is a coordinate local to an area's grid.
type Coord struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Grid is the local index space of one rectangular search area.
// It only describes shape and never changes after construction.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a width×height grid.
func NewGrid(width, height int) (Grid, error) {
	if err := ValidateGridSize(width, height); err != nil {
		return Grid{}, err
	}
	return Grid{width: width, height: height}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Cells returns the total number of coordinates in the grid.
func (g Grid) Cells() int {
	return g.width * g.height
}

// Contains reports whether c lies within [0,width)×[0,height).
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Coords enumerates every coordinate of the grid, x-major.
func (g Grid) Coords() []Coord {
	coords := make([]Coord, 0, g.Cells())
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			coords = append(coords, Coord{X: x, Y: y})
		}
	}
	return coords
}

// Rect places an area on the overall chart.
// Min is the upper-left corner (inclusive), Max the lower-right (exclusive).
type Rect struct {
	MinX int `toml:"min_x"`
	MinY int `toml:"min_y"`
	MaxX int `toml:"max_x"`
	MaxY int `toml:"max_y"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Grid returns the local grid covered by the rectangle.
func (r Rect) Grid() (Grid, error) {
	return NewGrid(r.Width(), r.Height())
}

// ToGlobal converts a local coordinate inside r to chart coordinates.
func (r Rect) ToGlobal(c Coord) Coord {
	return Coord{X: r.MinX + c.X, Y: r.MinY + c.Y}
}

// Target is the hidden location being searched for.
type Target struct {
	Area  AreaID
	Local Coord
}

// Global returns the target's chart position given its area's rectangle.
func (t Target) Global(r Rect) Coord {
	return r.ToGlobal(t.Local)
}

// Outcome is the result of a single search pass.
type Outcome int

const (
	// NotFound means the pass did not cover the target.
	NotFound Outcome = iota
	// Found means the pass covered the target.
	Found
)

func (o Outcome) String() string {
	if o == Found {
		return "found"
	}
	return "not found"
}

// SearchResult is the outcome of one search pass over one area together with
// the coordinates examined in that pass.
type SearchResult struct {
	Area     AreaID
	Outcome  Outcome
	Searched []Coord
}

// Found reports whether the pass located the target.
func (r *SearchResult) Found() bool {
	return r != nil && r.Outcome == Found
}

// TrialOutcome summarises one complete simulated game.
type TrialOutcome struct {
	Campaign ID
	Trial    int
	Found    bool
	Area     AreaID // area the target was placed in
	Rounds   int    // rounds played, including the finding round
	Searched int    // distinct coordinates examined across all areas
}
