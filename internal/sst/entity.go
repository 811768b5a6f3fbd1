package sst

// Kind identifies one of the four entity variants.
type Kind int

const (
	KindStar Kind = iota
	KindBase
	KindHostile
	KindShip
	kindCount
)

// String returns the in-game name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "Star"
	case KindBase:
		return "Star Base"
	case KindHostile:
		return "Klingon"
	case KindShip:
		return "USS Enterprise"
	default:
		return "Unknown"
	}
}

// ID is a Universe-assigned handle for an entity, stable for its lifetime.
type ID uint32

// Entity is a closed sum over *Star, *Base, *Hostile and *Ship. Only this
// package can add variants. Positions change only through Universe.MoveEntity.
type Entity interface {
	ID() ID
	Kind() Kind
	Pos() Point
	Energy() float64
	state() *body
}

// body holds the attributes every entity shares.
type body struct {
	id     ID
	pos    Point
	energy float64
}

func (b *body) ID() ID { return b.id }
func (b *body) Pos() Point { return b.pos }
func (b *body) Energy() float64 { return b.energy }
func (b *body) state() *body { return b }

// Star may carry a planet whose energy is mineable dilithium.
type Star struct {
	body
	hasPlanet bool
}

// Kind returns KindStar.
func (*Star) Kind() Kind { return KindStar }

// HasPlanet reports whether the star still has a mineable planet.
func (s *Star) HasPlanet() bool { return s.hasPlanet }

// Base is a stationary star base the ship can dock with.
type Base struct {
	body
}

// Kind returns KindBase.
func (*Base) Kind() Kind { return KindBase }

// Hostile is an enemy ship that drifts, regenerates and attacks.
type Hostile struct {
	body
}

// Kind returns KindHostile.
func (*Hostile) Kind() Kind { return KindHostile }

// Ship is the player's vessel.
type Ship struct {
	body
	torpedoes int
}

// Kind returns KindShip.
func (*Ship) Kind() Kind { return KindShip }

// Torpedoes returns the number of photon torpedoes in the racks.
func (s *Ship) Torpedoes() int { return s.torpedoes }

// glyph returns the short range scan symbol for an entity.
func glyph(e Entity) rune {
	switch e := e.(type) {
	case *Star:
		if e.hasPlanet {
			return 'P'
		}
		return '*'
	case *Base:
		return 'B'
	case *Hostile:
		return 'K'
	case *Ship:
		return 'E'
	default:
		panic("sst: unknown entity variant")
	}
}

// Counts holds a number of entities per kind.
type Counts [kindCount]int

// Of returns the count for one kind.
func (c Counts) Of(k Kind) int {
	return c[k]
}

// Total returns the number of entities counted.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Code formats the counts as the three digit scanner code: hostiles, bases,
// stars. Counts above nine print as '+'.
func (c Counts) Code() string {
	return string([]rune{digit(c[KindHostile]), digit(c[KindBase]), digit(c[KindStar])})
}

// unknownCode is printed for sectors that were never scanned or lie outside
// the universe.
const unknownCode = "???"

func digit(n int) rune {
	if n >= 0 && n <= 9 {
		return rune('0' + n)
	}
	return '+'
}
