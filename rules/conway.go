package rules

// Outcome describes why a cell ends up in its next state.
type Outcome int

const (
	// Dormant is a dead cell that stays dead.
	Dormant Outcome = iota
	// Underpopulation kills a live cell with fewer than 2 live neighbors.
	Underpopulation
	// Overpopulation kills a live cell with more than 3 live neighbors.
	Overpopulation
	// Survival keeps a live cell with 2 or 3 live neighbors alive.
	Survival
	// Reproduction brings a dead cell with exactly 3 live neighbors to life.
	Reproduction
)

var outcomeNames = map[Outcome]string{
	Dormant:         "dormant",
	Underpopulation: "underpopulation",
	Overpopulation:  "overpopulation",
	Survival:        "survival",
	Reproduction:    "reproduction",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Alive reports whether the outcome leaves the cell alive.
func (o Outcome) Alive() bool {
	return o == Survival || o == Reproduction
}

/*
Evaluate applies Conway's Game of Life rules to a cell and reports the outcome.

	alive, n < 2  -> Underpopulation
	alive, n > 3  -> Overpopulation
	alive, n 2..3 -> Survival
	dead,  n == 3 -> Reproduction
	dead,  other  -> Dormant
*/
func Evaluate(neighbors int, alive bool) Outcome {
	if alive {
		switch {
		case neighbors < 2:
			return Underpopulation
		case neighbors > 3:
			return Overpopulation
		default:
			return Survival
		}
	}
	if neighbors == 3 {
		return Reproduction
	}
	return Dormant
}
