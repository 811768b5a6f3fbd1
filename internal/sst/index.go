package sst

import (
	"errors"
	"fmt"
	"math/rand"
)

// Index errors.
var (
	ErrOccupied    = errors.New("cell is occupied")
	ErrOutOfBounds = errors.New("cell is outside the grid")
	ErrNotIndexed  = errors.New("entity is not indexed")
)

// Index maps grid cells to their single occupant.
type Index struct {
	cells map[Point]Entity
}

func newIndex() *Index {
	return &Index{cells: make(map[Point]Entity)}
}

// Occupant returns the entity at p, if any.
func (ix *Index) Occupant(p Point) (Entity, bool) {
	e, ok := ix.cells[p]
	return e, ok
}

// Empty reports whether p is a valid, unoccupied cell.
func (ix *Index) Empty(p Point) bool {
	if !p.Valid() {
		return false
	}
	_, taken := ix.cells[p]
	return !taken
}

// Len returns the number of indexed entities.
func (ix *Index) Len() int {
	return len(ix.cells)
}

// place indexes a new entity at p and stores p as its position.
func (ix *Index) place(e Entity, p Point) error {
	if !p.Valid() {
		return fmt.Errorf("place %s at %v: %w", e.Kind(), p, ErrOutOfBounds)
	}
	if _, taken := ix.cells[p]; taken {
		return fmt.Errorf("place %s at %v: %w", e.Kind(), p, ErrOccupied)
	}
	e.state().pos = p
	ix.cells[p] = e
	return nil
}

// move relocates an indexed entity. The old key is dropped and the new key
// inserted in the same call, so e is never indexed twice or not at all.
func (ix *Index) move(e Entity, p Point) error {
	from := e.Pos()
	if cur, ok := ix.cells[from]; !ok || cur != e {
		return fmt.Errorf("move %s #%d: %w", e.Kind(), e.ID(), ErrNotIndexed)
	}
	if from == p {
		return nil
	}
	if !p.Valid() {
		return fmt.Errorf("move %s to %v: %w", e.Kind(), p, ErrOutOfBounds)
	}
	if _, taken := ix.cells[p]; taken {
		return fmt.Errorf("move %s to %v: %w", e.Kind(), p, ErrOccupied)
	}
	delete(ix.cells, from)
	ix.cells[p] = e
	e.state().pos = p
	return nil
}

// remove drops e from the index.
func (ix *Index) remove(e Entity) error {
	p := e.Pos()
	if cur, ok := ix.cells[p]; !ok || cur != e {
		return fmt.Errorf("remove %s #%d: %w", e.Kind(), e.ID(), ErrNotIndexed)
	}
	delete(ix.cells, p)
	return nil
}

// FindEmpty returns a uniformly random unoccupied cell. The grid is far
// from full, so the retry loop terminates quickly.
func (ix *Index) FindEmpty(rng *rand.Rand) Point {
	for {
		p := Point{X: rng.Intn(GridSize), Y: rng.Intn(GridSize)}
		if _, taken := ix.cells[p]; !taken {
			return p
		}
	}
}

// FindEmptyNear clamps p into the grid and random-walks one cell per axis
// per step until it finds a free cell. The cell of self, when non-nil,
// counts as free.
func (ix *Index) FindEmptyNear(rng *rand.Rand, p Point, self Entity) Point {
	p = clampPoint(p)
	for {
		cur, taken := ix.cells[p]
		if !taken || (self != nil && cur == self) {
			return p
		}
		p = clampPoint(p.Add(rng.Intn(3)-1, rng.Intn(3)-1))
	}
}
