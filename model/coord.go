package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const keySeparator = ","

// Coord is a position on the grid
type Coord struct {
	Row int
	Col int
}

// NewCoord builds a Coord. Out-of-range values are allowed here; the grid decides what is in bounds.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Key serializes the coordinate as "row,col"
func (c Coord) Key() string {
	return strconv.Itoa(c.Row) + keySeparator + strconv.Itoa(c.Col)
}

func (c Coord) String() string {
	return c.Key()
}

// CoordFromKey parses a "row,col" key back into a Coord
func CoordFromKey(key string) (Coord, error) {
	parts := strings.Split(key, keySeparator)
	if len(parts) != 2 {
		return Coord{}, errors.Errorf("[CoordFromKey] malformed key %q: want 2 parts, got %d", key, len(parts))
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coord{}, errors.Wrapf(err, "[CoordFromKey] bad row in key %q", key)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coord{}, errors.Wrapf(err, "[CoordFromKey] bad col in key %q", key)
	}

	return NewCoord(row, col), nil
}

// MustCoordFromKey is CoordFromKey for keys the engine produced itself.
// A failure means the key was corrupted, so it panics.
func MustCoordFromKey(key string) Coord {
	c, err := CoordFromKey(key)
	if err != nil {
		panic(err)
	}
	return c
}
