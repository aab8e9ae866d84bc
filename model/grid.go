package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

var neighborDeltas = [3]int{-1, 0, 1}

var patterns = map[string]func(g *Grid, c Coord){
	"block":   (*Grid).AddBlock,
	"blinker": (*Grid).AddBlinker,
	"glider":  (*Grid).AddGlider,
}

// Grid is a fixed-size, bounded board of cells stored in row-major order
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid of dead cells with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether c lies inside the grid. Edges are hard boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Get returns the cell at c. A miss on the grid is an invariant violation.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		panic(errors.Errorf("[Grid.Get] lookup miss at %s on %dx%d grid", c, g.height, g.width))
	}
	return g.cells[g.index(c)]
}

// Set sets a cell to alive (true) or dead (false), ignoring out-of-bounds coordinates
func (g *Grid) Set(c Coord, alive bool) {
	if g.InBounds(c) {
		g.cells[g.index(c)].SetState(alive)
	}
}

// Neighbors returns the up to 8 in-bounds coordinates surrounding c
func (g *Grid) Neighbors(c Coord) []Coord {
	neighbors := make([]Coord, 0, 8)
	for _, dr := range neighborDeltas {
		for _, dc := range neighborDeltas {
			if dr == 0 && dc == 0 {
				continue
			}
			n := NewCoord(c.Row+dr, c.Col+dc)
			if g.InBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// CountNeighbors counts the living in-bounds neighbors of c
func (g *Grid) CountNeighbors(c Coord) (count int) {
	for _, n := range g.Neighbors(c) {
		if g.cells[g.index(n)].Alive() {
			count++
		}
	}
	return
}

// Coords returns every in-bounds coordinate, row 0 first
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for row := range g.height {
		for col := range g.width {
			coords = append(coords, NewCoord(row, col))
		}
	}
	return coords
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Kill()
	}
}

// Clone returns a grid with the same dimensions and an independent copy of the cells
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.width, g.height)
	copy(next.cells, g.cells)
	return next
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, cell := range g.cells {
		if cell.Alive() {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, cell := range g.cells {
		if cell.Alive() {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize draws one value in [0,1) per cell; the cell is alive iff the draw is <= threshold
func (g *Grid) Randomize(threshold float64, rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i].SetState(rng.Float64() <= threshold)
	}
}

// AddBlock adds a 2x2 still life with its top-left corner at c
func (g *Grid) AddBlock(c Coord) {
	for dr := range 2 {
		for dc := range 2 {
			g.Set(NewCoord(c.Row+dr, c.Col+dc), true)
		}
	}
}

// AddBlinker adds a horizontal period-2 oscillator starting at c
func (g *Grid) AddBlinker(c Coord) {
	for dc := range 3 {
		g.Set(NewCoord(c.Row, c.Col+dc), true)
	}
}

// AddGlider adds a glider pattern with its bounding box at c
func (g *Grid) AddGlider(c Coord) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dr, row := range pattern {
		for dc, alive := range row {
			g.Set(NewCoord(c.Row+dr, c.Col+dc), alive)
		}
	}
}

// AddPattern places the named pattern with its top-left corner at c
func (g *Grid) AddPattern(name string, c Coord) error {
	add, ok := patterns[name]
	if !ok {
		return errors.Errorf("[Grid.AddPattern] unknown pattern %q", name)
	}
	if !g.InBounds(c) {
		return errors.Errorf("[Grid.AddPattern] anchor %s outside %dx%d grid", c, g.height, g.width)
	}
	add(g, c)
	return nil
}
