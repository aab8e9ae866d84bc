package model

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway-world/rules"
	"github.com/sheikhrachel/conway-world/utils"
)

const (
	aliveToken = " 0 "
	deadToken  = " . "

	historySize = 5
)

// Transition summarizes one call to Advance
type Transition struct {
	Generation int // generation reached after the step
	Births     int
	Deaths     int
	Population int
}

// World owns a grid of cells and moves it forward one generation at a time.
// The set of coordinates never changes, only the cell states do.
type World struct {
	cur        *Grid
	nxt        *Grid
	generation int
	history    []string // hashes of recent generations for cycle detection
}

// NewWorld builds a world from config. When config.LiveCells and config.Patterns
// are both empty every cell is drawn at random from rng, otherwise exactly the
// listed cells and patterns start alive.
func NewWorld(config utils.Config, rng *rand.Rand) (*World, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewWorld] invalid config")
	}

	w := NewWorldFromGrid(NewGrid(config.Width, config.Height))
	if len(config.LiveCells) == 0 && len(config.Patterns) == 0 {
		if rng == nil {
			return nil, errors.New("[NewWorld] random fill requires a rng")
		}
		w.cur.Randomize(config.SpawnThreshold, rng)
		return w, nil
	}

	live := make(map[string]bool, len(config.LiveCells))
	for _, key := range config.LiveCells {
		live[key] = true
	}
	if err := w.Load(live); err != nil {
		return nil, errors.Wrap(err, "[NewWorld] failed to seed live cells")
	}

	for _, p := range config.Patterns {
		c, err := CoordFromKey(p.At)
		if err != nil {
			return nil, errors.Wrapf(err, "[NewWorld] bad anchor for pattern %q", p.Name)
		}
		if err = w.cur.AddPattern(p.Name, c); err != nil {
			return nil, errors.Wrap(err, "[NewWorld] failed to place pattern")
		}
	}
	return w, nil
}

// NewWorldFromGrid starts a world at generation 0 from a copy of grid
func NewWorldFromGrid(grid *Grid) *World {
	return &World{
		cur: grid.Clone(),
		nxt: NewGrid(grid.GetWidth(), grid.GetHeight()),
	}
}

// Height returns the number of rows
func (w *World) Height() int {
	return w.cur.GetHeight()
}

// Width returns the number of columns
func (w *World) Width() int {
	return w.cur.GetWidth()
}

// Generation returns how many times the world has advanced
func (w *World) Generation() int {
	return w.generation
}

// LiveCells returns the current population
func (w *World) LiveCells() int {
	return w.cur.CountLivingCells()
}

// CellAt returns a copy of the cell at c. It panics if c is not on the grid.
func (w *World) CellAt(c Coord) Cell {
	return w.cur.Get(c).Copy()
}

// Advance computes the next generation from the current one and swaps it in.
// Every cell is evaluated against the current buffer only; results go to the
// spare buffer so no cell sees another cell's updated state.
func (w *World) Advance() Transition {
	t := Transition{Generation: w.generation + 1}

	for _, c := range w.cur.Coords() {
		cell := w.cur.Get(c)
		next := cell.Copy()

		switch rules.Evaluate(w.cur.CountNeighbors(c), cell.Alive()) {
		case rules.Underpopulation, rules.Overpopulation:
			next.Kill()
			t.Deaths++
		case rules.Reproduction:
			next.Spawn()
			t.Births++
		}
		if next.Alive() {
			t.Population++
		}
		w.nxt.cells[w.nxt.index(c)] = next
	}

	w.remember(w.cur.GetGridHash())
	w.cur, w.nxt = w.nxt, w.cur
	w.generation++
	return t
}

// Render draws the current generation, one line per row
func (w *World) Render() string {
	var b strings.Builder
	b.Grow(w.Height() * (w.Width()*len(aliveToken) + 1))
	for row := range w.Height() {
		for col := range w.Width() {
			if w.cur.Get(NewCoord(row, col)).Alive() {
				b.WriteString(aliveToken)
			} else {
				b.WriteString(deadToken)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Snapshot returns the current generation keyed by "row,col"
func (w *World) Snapshot() map[string]Cell {
	snapshot := make(map[string]Cell, w.Height()*w.Width())
	for _, c := range w.cur.Coords() {
		snapshot[c.Key()] = w.cur.Get(c).Copy()
	}
	return snapshot
}

// Load replaces the current generation. Keys are "row,col"; coordinates not
// listed become dead. The world is left untouched if any key is invalid.
func (w *World) Load(cells map[string]bool) error {
	next := NewGrid(w.Width(), w.Height())
	for key, alive := range cells {
		c, err := CoordFromKey(key)
		if err != nil {
			return errors.Wrap(err, "[World.Load] bad key")
		}
		if !next.InBounds(c) {
			return errors.Errorf("[World.Load] key %q outside %dx%d grid", key, w.Height(), w.Width())
		}
		next.Set(c, alive)
	}

	w.cur = next
	w.history = nil
	return nil
}

// IsStagnant reports whether the current generation repeats one of the last few
func (w *World) IsStagnant() bool {
	return slices.Contains(w.history, w.cur.GetGridHash())
}

func (w *World) remember(hash string) {
	w.history = append(w.history, hash)
	if len(w.history) > historySize {
		w.history = w.history[1:]
	}
}
