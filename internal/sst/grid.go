// Package sst implements Super Star Trek: a turn-based hunt for hostile
// ships across a 64x64 grid of sectors. The package owns the universe, the
// command engine, time and regeneration, combat resolution and the game loop.
// Drawing and player input go through the core.Display and core.Input
// collaborators.
package sst

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/picotrek/internal/core"
)

// Grid dimensions, in cells and sectors per axis.
const (
	GridSize   = 64
	SectorSize = 8
	Sectors    = GridSize / SectorSize
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Point is a cell of the universe grid. X grows to the right, Y grows down.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Valid reports whether the point lies inside the grid.
func (p Point) Valid() bool {
	return p.X >= 0 && p.Y >= 0 && p.X < GridSize && p.Y < GridSize
}

// Sector returns the sector coordinates containing p.
func (p Point) Sector() Point {
	return Point{X: p.X / SectorSize, Y: p.Y / SectorSize}
}

// Local returns p relative to the top-left cell of its sector.
func (p Point) Local() Point {
	return Point{X: p.X % SectorSize, Y: p.Y % SectorSize}
}

// SameSector reports whether p and q lie in the same sector.
func (p Point) SameSector(q Point) bool {
	return p.Sector() == q.Sector()
}

// Add offsets p by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "sx,sy x,y": sector then cell within the sector.
func (p Point) String() string {
	s, l := p.Sector(), p.Local()
	return fmt.Sprintf("%d,%d %d,%d", s.X, s.Y, l.X, l.Y)
}

// SectorOrigin returns the top-left cell of the given sector.
func SectorOrigin(sector Point) Point {
	return Point{X: sector.X * SectorSize, Y: sector.Y * SectorSize}
}

// clampPoint snaps p onto the nearest cell of the grid.
func clampPoint(p Point) Point {
	return Point{X: core.Clamp(p.X, 0, GridSize-1), Y: core.Clamp(p.Y, 0, GridSize-1)}
}

// direction returns the unit step for a compass heading in degrees, clockwise
// from up.
func direction(deg float64) (dx, dy float64) {
	rad := deg * degToRad
	return math.Sin(rad), -math.Cos(rad)
}

// project returns the cell nearest to p moved dist units along a heading.
func project(p Point, deg, dist float64) Point {
	dx, dy := direction(deg)
	return Point{
		X: int(math.Round(float64(p.X) + dx*dist)),
		Y: int(math.Round(float64(p.Y) + dy*dist)),
	}
}

// Course returns the distance and compass heading from one cell to another.
// The heading is in [0, 360) and is 0 when the cells coincide.
func Course(from, to Point) (dist, deg float64) {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	deg = math.Atan2(dx, -dy) * radToDeg
	if deg < 0 {
		deg += 360
	}
	return dist, deg
}

// halfRandom returns a random value in [v/2, v).
func halfRandom(rng *rand.Rand, v float64) float64 {
	return v/2*rng.Float64() + v/2
}

// halfRandomInt returns a random integer in [v/2, v].
func halfRandomInt(rng *rand.Rand, v int) int {
	return int((float64(v)/2+1)*rng.Float64()) + v/2
}
