package sst

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/picotrek/internal/config"
)

// ErrShipExists is returned when a second player ship is added.
var ErrShipExists = errors.New("universe already has a ship")

// Universe owns every entity and the spatial index. Entities are kept in
// creation order so iteration, and therefore every random draw made while
// iterating, is reproducible for a given seed.
type Universe struct {
	rng      *rand.Rand
	index    *Index
	entities []Entity
	byID     map[ID]Entity
	nextID   ID
	ship     *Ship
}

// NewUniverse creates an empty universe drawing randomness from rng.
func NewUniverse(rng *rand.Rand) *Universe {
	return &Universe{
		rng:    rng,
		index:  newIndex(),
		byID:   make(map[ID]Entity),
		nextID: 1,
	}
}

// Populate places the ship, stars, bases and hostiles at random empty cells.
func (u *Universe) Populate(cfg config.SSTConfig) error {
	if _, err := u.AddShip(u.FindEmpty(), halfRandom(u.rng, cfg.Ship.EnergyMax), cfg.Torpedoes.Max); err != nil {
		return err
	}

	for range halfRandomInt(u.rng, cfg.Stars.Max) {
		planet := u.rng.Float64() < cfg.Stars.PlanetChance
		energy := 0.0
		if planet {
			energy = u.rng.Float64() * cfg.Mining.Reserve
		}
		if _, err := u.AddStar(u.FindEmpty(), energy, planet); err != nil {
			return err
		}
	}

	for range halfRandomInt(u.rng, cfg.Bases.Max) {
		energy := float64(halfRandomInt(u.rng, int(cfg.Bases.Energy)))
		if _, err := u.AddBase(u.FindEmpty(), energy); err != nil {
			return err
		}
	}

	for range halfRandomInt(u.rng, cfg.Hostiles.Max) {
		energy := float64(halfRandomInt(u.rng, int(cfg.Hostiles.Energy)))
		if _, err := u.AddHostile(u.FindEmpty(), energy); err != nil {
			return err
		}
	}
	return nil
}

func (u *Universe) add(e Entity, p Point, energy float64) error {
	b := e.state()
	b.id = u.nextID
	b.energy = energy
	if err := u.index.place(e, p); err != nil {
		return err
	}
	u.nextID++
	u.entities = append(u.entities, e)
	u.byID[b.id] = e
	return nil
}

// AddStar places a star. A star without a planet holds no energy.
func (u *Universe) AddStar(p Point, energy float64, planet bool) (*Star, error) {
	s := &Star{hasPlanet: planet}
	if !planet {
		energy = 0
	}
	if err := u.add(s, p, energy); err != nil {
		return nil, err
	}
	return s, nil
}

// AddBase places a star base.
func (u *Universe) AddBase(p Point, energy float64) (*Base, error) {
	b := &Base{}
	if err := u.add(b, p, energy); err != nil {
		return nil, err
	}
	return b, nil
}

// AddHostile places a hostile ship.
func (u *Universe) AddHostile(p Point, energy float64) (*Hostile, error) {
	h := &Hostile{}
	if err := u.add(h, p, energy); err != nil {
		return nil, err
	}
	return h, nil
}

// AddShip places the player ship. Only one ship may exist.
func (u *Universe) AddShip(p Point, energy float64, torpedoes int) (*Ship, error) {
	if u.ship != nil {
		return nil, ErrShipExists
	}
	s := &Ship{torpedoes: torpedoes}
	if err := u.add(s, p, energy); err != nil {
		return nil, err
	}
	u.ship = s
	return s, nil
}

// Ship returns the player ship, or nil before population.
func (u *Universe) Ship() *Ship {
	return u.ship
}

// Entity looks an entity up by ID.
func (u *Universe) Entity(id ID) (Entity, bool) {
	e, ok := u.byID[id]
	return e, ok
}

// Entities returns every entity in creation order.
func (u *Universe) Entities() []Entity {
	out := make([]Entity, len(u.entities))
	copy(out, u.entities)
	return out
}

// Occupant returns the entity at p, if any.
func (u *Universe) Occupant(p Point) (Entity, bool) {
	return u.index.Occupant(p)
}

// Index exposes the spatial index for read-only queries.
func (u *Universe) Index() *Index {
	return u.index
}

// FindEmpty returns a random unoccupied cell.
func (u *Universe) FindEmpty() Point {
	return u.index.FindEmpty(u.rng)
}

// FindEmptyNear returns the free cell found by bouncing around p. The cell
// of self, when non-nil, counts as free.
func (u *Universe) FindEmptyNear(p Point, self Entity) Point {
	return u.index.FindEmptyNear(u.rng, p, self)
}

// MoveEntity is the only way an entity changes position. The stored
// position and the index entry change together or not at all.
func (u *Universe) MoveEntity(id ID, to Point) error {
	e, ok := u.byID[id]
	if !ok {
		return fmt.Errorf("move #%d: %w", id, ErrNotIndexed)
	}
	return u.index.move(e, to)
}

// Remove destroys an entity. The ship cannot be removed.
func (u *Universe) Remove(id ID) error {
	e, ok := u.byID[id]
	if !ok {
		return fmt.Errorf("remove #%d: %w", id, ErrNotIndexed)
	}
	if e == Entity(u.ship) {
		return fmt.Errorf("remove #%d: the ship cannot be removed", id)
	}
	if err := u.index.remove(e); err != nil {
		return err
	}
	delete(u.byID, id)
	for i, other := range u.entities {
		if other == e {
			u.entities = append(u.entities[:i], u.entities[i+1:]...)
			break
		}
	}
	return nil
}

// CountAll returns the number of entities of each kind.
func (u *Universe) CountAll() Counts {
	var c Counts
	for _, e := range u.entities {
		c[e.Kind()]++
	}
	return c
}

// CountSector returns the counts for the sector containing p. It reports
// false when p lies outside the grid.
func (u *Universe) CountSector(p Point) (Counts, bool) {
	var c Counts
	if !p.Valid() {
		return c, false
	}
	for _, e := range u.ListSector(p) {
		c[e.Kind()]++
	}
	return c, true
}

// ListSector returns the entities in the sector containing p, column by
// column, optionally restricted to the given kinds.
func (u *Universe) ListSector(p Point, kinds ...Kind) []Entity {
	if !p.Valid() {
		return nil
	}
	origin := SectorOrigin(p.Sector())
	var out []Entity
	for x := origin.X; x < origin.X+SectorSize; x++ {
		for y := origin.Y; y < origin.Y+SectorSize; y++ {
			e, ok := u.index.Occupant(Point{X: x, Y: y})
			if ok && matchKind(e, kinds) {
				out = append(out, e)
			}
		}
	}
	return out
}

func matchKind(e Entity, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if e.Kind() == k {
			return true
		}
	}
	return false
}

// Adjacent returns the first entity of the given kind in the eight cells
// around p.
func (u *Universe) Adjacent(p Point, kind Kind) (Entity, bool) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if e, ok := u.index.Occupant(p.Add(dx, dy)); ok && e.Kind() == kind {
				return e, true
			}
		}
	}
	return nil, false
}

// Hostiles returns every hostile in creation order.
func (u *Universe) Hostiles() []*Hostile {
	var out []*Hostile
	for _, e := range u.entities {
		if h, ok := e.(*Hostile); ok {
			out = append(out, h)
		}
	}
	return out
}

// Bases returns every star base in creation order.
func (u *Universe) Bases() []*Base {
	var out []*Base
	for _, e := range u.entities {
		if b, ok := e.(*Base); ok {
			out = append(out, b)
		}
	}
	return out
}

// hostilesNear returns the hostiles sharing p's sector.
func (u *Universe) hostilesNear(p Point) []*Hostile {
	var out []*Hostile
	for _, e := range u.ListSector(p, KindHostile) {
		out = append(out, e.(*Hostile))
	}
	return out
}

// Check verifies that the entity collection and the index agree exactly.
func (u *Universe) Check() error {
	if u.index.Len() != len(u.entities) {
		return fmt.Errorf("index holds %d cells for %d entities", u.index.Len(), len(u.entities))
	}
	for _, e := range u.entities {
		cur, ok := u.index.Occupant(e.Pos())
		if !ok || cur != e {
			return fmt.Errorf("%s #%d at %v: %w", e.Kind(), e.ID(), e.Pos(), ErrNotIndexed)
		}
	}
	return nil
}
