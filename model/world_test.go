package model

import (
	"math/rand/v2"
	"testing"

	"github.com/sheikhrachel/conway-world/utils"
)

func newTestWorld(height, width int, live ...Coord) *World {
	g := NewGrid(width, height)
	for _, c := range live {
		g.Set(c, true)
	}
	return NewWorldFromGrid(g)
}

func liveSet(w *World) map[Coord]bool {
	live := map[Coord]bool{}
	for key, cell := range w.Snapshot() {
		if cell.Alive() {
			live[MustCoordFromKey(key)] = true
		}
	}
	return live
}

func TestNewWorldGridCompleteness(t *testing.T) {
	config := utils.DefaultConfig()
	w, err := NewWorld(config, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	snapshot := w.Snapshot()
	if len(snapshot) != config.Height*config.Width {
		t.Fatalf("snapshot has %d entries, want %d", len(snapshot), config.Height*config.Width)
	}
	for row := range config.Height {
		for col := range config.Width {
			if _, ok := snapshot[NewCoord(row, col).Key()]; !ok {
				t.Fatalf("missing cell %d,%d", row, col)
			}
		}
	}
}

func TestNewWorldSameSeedSameGrid(t *testing.T) {
	config := utils.DefaultConfig()
	a, err := NewWorld(config, rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWorld(config, rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if a.Render() != b.Render() {
		t.Fatal("same seed produced different initial worlds")
	}
}

func TestNewWorldFromLiveCells(t *testing.T) {
	config := utils.DefaultConfig()
	config.Height, config.Width = 4, 4
	config.LiveCells = []string{"0,0", "3,3"}

	w, err := NewWorld(config, nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	live := liveSet(w)
	if len(live) != 2 || !live[NewCoord(0, 0)] || !live[NewCoord(3, 3)] {
		t.Fatalf("unexpected live cells %v", live)
	}
}

func TestNewWorldErrors(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width = 0
	if _, err := NewWorld(config, rand.New(rand.NewPCG(1, 1))); err == nil {
		t.Fatal("expected error for zero width")
	}

	config = utils.DefaultConfig()
	if _, err := NewWorld(config, nil); err == nil {
		t.Fatal("expected error for random fill without rng")
	}

	config.LiveCells = []string{"10,0"}
	if _, err := NewWorld(config, nil); err == nil {
		t.Fatal("expected error for out-of-bounds live cell")
	}
}

func TestAdvanceRules(t *testing.T) {
	center := NewCoord(2, 2)

	tests := []struct {
		name      string
		alive     bool
		neighbors []Coord
		want      bool
	}{
		{"underpopulation zero", true, nil, false},
		{"underpopulation one", true, []Coord{{1, 1}}, false},
		{"survival two", true, []Coord{{1, 1}, {1, 3}}, true},
		{"survival three", true, []Coord{{1, 1}, {1, 3}, {3, 2}}, true},
		{"overpopulation four", true, []Coord{{1, 1}, {1, 3}, {3, 1}, {3, 3}}, false},
		{"reproduction", false, []Coord{{1, 1}, {1, 3}, {3, 2}}, true},
		{"dead with two", false, []Coord{{1, 1}, {1, 3}}, false},
		{"dead with four", false, []Coord{{1, 1}, {1, 3}, {3, 1}, {3, 3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			live := tt.neighbors
			if tt.alive {
				live = append([]Coord{center}, live...)
			}
			w := newTestWorld(5, 5, live...)
			w.Advance()
			if got := w.CellAt(center).Alive(); got != tt.want {
				t.Fatalf("center alive = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceUsesOnlyPreviousGeneration(t *testing.T) {
	var all []Coord
	for row := range 3 {
		for col := range 3 {
			all = append(all, NewCoord(row, col))
		}
	}
	w := newTestWorld(3, 3, all...)
	w.Advance()

	want := map[Coord]bool{{0, 0}: true, {0, 2}: true, {2, 0}: true, {2, 2}: true}
	got := liveSet(w)
	if len(got) != len(want) {
		t.Fatalf("live cells %v, want %v", got, want)
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("corner %v should survive", c)
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := NewGrid(6, 6)
	g.AddBlock(NewCoord(2, 2))
	w := NewWorldFromGrid(g)
	before := w.Render()

	for i := range 10 {
		tr := w.Advance()
		if tr.Births != 0 || tr.Deaths != 0 || tr.Population != 4 {
			t.Fatalf("step %d: unexpected transition %+v", i, tr)
		}
		if w.Render() != before {
			t.Fatalf("block changed after %d steps:\n%s", i+1, w.Render())
		}
	}
	if !w.IsStagnant() {
		t.Fatal("still life should be reported as stagnant")
	}
}

func TestBlinkerOscillates(t *testing.T) {
	g := NewGrid(5, 5)
	g.AddBlinker(NewCoord(2, 1))
	w := NewWorldFromGrid(g)
	horizontal := w.Render()

	tr := w.Advance()
	if tr.Births != 2 || tr.Deaths != 2 || tr.Population != 3 || tr.Generation != 1 {
		t.Fatalf("unexpected transition %+v", tr)
	}
	want := map[Coord]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	got := liveSet(w)
	for c := range want {
		if !got[c] {
			t.Fatalf("expected %v alive after one step, got %v", c, got)
		}
	}
	if w.IsStagnant() {
		t.Fatal("blinker at generation 1 has not repeated yet")
	}

	w.Advance()
	if w.Render() != horizontal {
		t.Fatalf("blinker did not return after two steps:\n%s", w.Render())
	}
	if !w.IsStagnant() {
		t.Fatal("period-2 oscillator should be reported as stagnant")
	}
	if w.Generation() != 2 {
		t.Fatalf("Generation() = %d, want 2", w.Generation())
	}
}

func TestRenderFormat(t *testing.T) {
	w := newTestWorld(2, 2, NewCoord(0, 0))
	want := " 0  . \n .  . \n"
	if got := w.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	if got := w.Render(); got != want {
		t.Fatal("Render() is not repeatable")
	}
	if w.Generation() != 0 || w.LiveCells() != 1 {
		t.Fatal("Render() mutated the world")
	}
}

func TestDeterminismAfterInit(t *testing.T) {
	seed := NewGrid(20, 10)
	seed.Randomize(0.4, rand.New(rand.NewPCG(99, 3)))

	a := NewWorldFromGrid(seed)
	b := NewWorldFromGrid(seed.Clone())
	for i := range 50 {
		a.Advance()
		b.Advance()
		if a.Render() != b.Render() {
			t.Fatalf("worlds diverged at generation %d", i+1)
		}
	}
}

func TestNewWorldFromGridCopiesInput(t *testing.T) {
	g := NewGrid(3, 3)
	w := NewWorldFromGrid(g)
	g.Set(NewCoord(1, 1), true)
	if w.LiveCells() != 0 {
		t.Fatal("world aliases the grid it was built from")
	}
}

func TestLoad(t *testing.T) {
	w := newTestWorld(3, 3, NewCoord(1, 1))

	if err := w.Load(map[string]bool{"0,0": true, "2,2": true, "1,1": false}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if live := liveSet(w); len(live) != 2 || !live[NewCoord(0, 0)] || !live[NewCoord(2, 2)] {
		t.Fatalf("unexpected live cells after Load: %v", live)
	}

	before := w.Render()
	for _, bad := range []map[string]bool{
		{"3,0": true},
		{"x,y": true},
		{"1": true},
	} {
		if err := w.Load(bad); err == nil {
			t.Fatalf("Load(%v) returned no error", bad)
		}
		if w.Render() != before {
			t.Fatalf("failed Load(%v) changed the world", bad)
		}
	}
}

func TestCellAtMissPanics(t *testing.T) {
	w := newTestWorld(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on lookup miss")
		}
	}()
	w.CellAt(NewCoord(5, 5))
}

func TestNewWorldFromPatterns(t *testing.T) {
	config := utils.DefaultConfig()
	config.Height, config.Width = 8, 8
	config.LiveCells = []string{"7,7"}
	config.Patterns = []utils.Pattern{
		{Name: "block", At: "1,1"},
		{Name: "blinker", At: "5,2"},
	}

	w, err := NewWorld(config, nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	live := liveSet(w)
	for _, c := range []Coord{{7, 7}, {1, 1}, {1, 2}, {2, 1}, {2, 2}, {5, 2}, {5, 3}, {5, 4}} {
		if !live[c] {
			t.Fatalf("expected %v alive, got %v", c, live)
		}
	}
	if len(live) != 8 {
		t.Fatalf("got %d live cells, want 8", len(live))
	}
}

func TestNewWorldPatternErrors(t *testing.T) {
	for _, p := range []utils.Pattern{
		{Name: "glider", At: "nope"},
		{Name: "glider", At: "20,0"},
		{Name: "pulsar", At: "0,0"},
	} {
		config := utils.DefaultConfig()
		config.Patterns = []utils.Pattern{p}
		if _, err := NewWorld(config, nil); err == nil {
			t.Errorf("NewWorld accepted pattern %+v", p)
		}
	}
}
