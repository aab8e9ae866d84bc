package model

// Cell is a single grid entity, either alive or dead
type Cell struct {
	alive bool
}

// NewCell returns a dead cell
func NewCell() Cell {
	return Cell{}
}

// Alive reports the cell state
func (c Cell) Alive() bool {
	return c.alive
}

// SetState sets the cell to alive (true) or dead (false)
func (c *Cell) SetState(alive bool) {
	c.alive = alive
}

// Spawn marks the cell alive
func (c *Cell) Spawn() {
	c.alive = true
}

// Kill marks the cell dead
func (c *Cell) Kill() {
	c.alive = false
}

// Copy returns an independent cell with the same state
func (c Cell) Copy() Cell {
	return Cell{alive: c.alive}
}
