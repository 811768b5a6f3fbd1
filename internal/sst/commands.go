package sst

import (
	"errors"
	"math"
)

// Rejections. A rejected command leaves the universe untouched; the turn
// still ends with the forced tick and a combat pass.
var (
	ErrOutOfUniverse       = errors.New("destination out of known universe")
	ErrDestinationOccupied = errors.New("destination coordinates are not empty")
	ErrNoTorpedoes         = errors.New("you don't have any torpedoes to fire")
	ErrNoBaseAdjacent      = errors.New("you are not adjacent to a star base")
	ErrNoStarAdjacent      = errors.New("you are not adjacent to a star")
	ErrNoPlanet            = errors.New("the star you are adjacent to does not have a planet")
	ErrNoTarget            = errors.New("no hostile at that position in this sector")
	ErrInvalidValue        = errors.New("order values must be finite numbers")
)

// finite reports whether every value is a real number.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// SectorScan is one cell of a long range scan.
type SectorScan struct {
	Sector Point
	Counts Counts
	Known  bool // False for sectors outside the universe
}

// Code returns the scanner code, or "???" when unknown.
func (sc SectorScan) Code() string {
	if !sc.Known {
		return unknownCode
	}
	return sc.Counts.Code()
}

func validSector(sec Point) bool {
	return sec.X >= 0 && sec.Y >= 0 && sec.X < Sectors && sec.Y < Sectors
}

// LongRangeScan counts the 3x3 block of sectors around the ship, rows top
// to bottom, and caches every count it takes.
func (s *Session) LongRangeScan() [3][3]SectorScan {
	center := s.Ship().Pos().Sector()
	var out [3][3]SectorScan
	for row := range 3 {
		for col := range 3 {
			sec := center.Add(col-1, row-1)
			scan := SectorScan{Sector: sec}
			if validSector(sec) {
				scan.Counts, scan.Known = s.remember(SectorOrigin(sec))
			}
			out[row][col] = scan
		}
	}
	return out
}

// SectorView is the exact layout of one sector.
type SectorView struct {
	Sector Point
	cells  [SectorSize][SectorSize]Entity
}

// At returns the occupant of a sector-local cell.
func (v SectorView) At(x, y int) (Entity, bool) {
	if x < 0 || y < 0 || x >= SectorSize || y >= SectorSize {
		return nil, false
	}
	e := v.cells[y][x]
	return e, e != nil
}

// ShortRangeScan reveals the ship's sector and caches its counts.
func (s *Session) ShortRangeScan() SectorView {
	pos := s.Ship().Pos()
	view := SectorView{Sector: pos.Sector()}
	for _, e := range s.universe.ListSector(pos) {
		l := e.Pos().Local()
		view.cells[l.Y][l.X] = e
	}
	s.remember(pos)
	return view
}

// Bearing locates an object relative to the ship.
type Bearing struct {
	Target   Entity
	Distance float64
	Heading  float64
}

// FireControl returns distance and heading to every other object in the
// ship's sector.
func (s *Session) FireControl() []Bearing {
	ship := s.Ship()
	var out []Bearing
	for _, e := range s.universe.ListSector(ship.Pos()) {
		if e == Entity(ship) {
			continue
		}
		d, h := Course(ship.Pos(), e.Pos())
		out = append(out, Bearing{Target: e, Distance: d, Heading: h})
	}
	return out
}

// Impulse moves the ship dist cells along heading. The destination must be
// inside the universe and empty; otherwise nothing changes.
func (s *Session) Impulse(heading, dist float64) (Point, error) {
	ship := s.Ship()
	if !finite(heading, dist) {
		return ship.Pos(), ErrInvalidValue
	}
	to := project(ship.Pos(), heading, dist)
	if !to.Valid() {
		return ship.Pos(), ErrOutOfUniverse
	}
	if _, taken := s.universe.Occupant(to); taken {
		return ship.Pos(), ErrDestinationOccupied
	}
	if err := s.universe.MoveEntity(ship.ID(), to); err != nil {
		return ship.Pos(), err
	}
	ship.energy -= halfRandom(s.rng, s.cfg.Impulse.Energy*dist)
	s.Tick(halfRandom(s.rng, s.cfg.Impulse.Time*dist))
	return to, nil
}

// Warp moves the ship dist sectors along heading. It always succeeds: the
// target is clamped into the universe and bounced to the nearest free cell.
func (s *Session) Warp(heading, sectors float64) (Point, error) {
	ship := s.Ship()
	if !finite(heading, sectors) {
		return ship.Pos(), ErrInvalidValue
	}
	target := project(ship.Pos(), heading, sectors*SectorSize)
	to := s.universe.FindEmptyNear(target, ship)
	if err := s.universe.MoveEntity(ship.ID(), to); err != nil {
		return ship.Pos(), err
	}
	ship.energy -= halfRandom(s.rng, s.cfg.Warp.Energy*sectors)
	s.Tick(halfRandom(s.rng, s.cfg.Warp.Time*sectors))
	return to, nil
}

// PhaserTargets returns the hostiles in the ship's sector, column by column.
func (s *Session) PhaserTargets() []*Hostile {
	return s.universe.hostilesNear(s.Ship().Pos())
}

// PhaserAllowance is the most energy the next phaser shot may use: half of
// the ship's energy, capped by the maximum discharge.
func (s *Session) PhaserAllowance() float64 {
	allowance := math.Floor(math.Min(s.Ship().Energy()/2, s.cfg.Phasers.MaxDischarge))
	return math.Max(allowance, 0)
}

// PhaserHit is the result of one phaser shot.
type PhaserHit struct {
	Target    *Hostile
	Energy    float64 // Energy spent by the ship
	Damage    float64
	Destroyed bool
}

// FirePhaser spends energy on one hostile in the ship's sector. The spend
// is clamped to the current allowance and debited from the ship; the damage
// falls off with distance. A hostile driven below zero is destroyed.
func (s *Session) FirePhaser(target ID, energy float64) (PhaserHit, error) {
	ship := s.Ship()
	if !finite(energy) {
		return PhaserHit{}, ErrInvalidValue
	}
	e, ok := s.universe.Entity(target)
	h, isHostile := e.(*Hostile)
	if !ok || !isHostile || !h.Pos().SameSector(ship.Pos()) {
		return PhaserHit{}, ErrNoTarget
	}

	energy = math.Min(math.Max(energy, 0), s.PhaserAllowance())
	ship.energy -= energy
	d, _ := Course(ship.Pos(), h.Pos())
	damage := energy * s.cfg.Phasers.DamageFactor / d
	h.energy -= damage

	hit := PhaserHit{Target: h, Energy: energy, Damage: damage}
	if h.energy < 0 {
		if err := s.universe.Remove(h.ID()); err != nil {
			return hit, err
		}
		s.destroyed++
		hit.Destroyed = true
	}
	s.logger.Debug("phaser fired", "target", h.ID(), "energy", energy, "damage", damage, "destroyed", hit.Destroyed)
	return hit, nil
}

// TorpedoResult describes a torpedo's flight.
type TorpedoResult struct {
	Track []Point // Cells the torpedo passed, in order
	Hit   Entity  // First object struck, nil if none
	Lost  bool    // The torpedo left the universe
}

// FireTorpedo launches a photon torpedo along heading. It flies up to the
// configured range and destroys the first object it strikes. Destroying a
// base or a star loses the game.
func (s *Session) FireTorpedo(heading float64) (TorpedoResult, error) {
	ship := s.Ship()
	if !finite(heading) {
		return TorpedoResult{}, ErrInvalidValue
	}
	if ship.torpedoes <= 0 {
		return TorpedoResult{}, ErrNoTorpedoes
	}
	ship.torpedoes--

	dx, dy := direction(heading)
	x, y := float64(ship.Pos().X), float64(ship.Pos().Y)
	var res TorpedoResult
	for range s.cfg.Torpedoes.Range {
		x += dx
		y += dy
		p := Point{X: int(math.Round(x)), Y: int(math.Round(y))}
		res.Track = append(res.Track, p)
		if !p.Valid() {
			res.Lost = true
			return res, nil
		}
		e, ok := s.universe.Occupant(p)
		if !ok || e == Entity(ship) {
			continue
		}
		if err := s.universe.Remove(e.ID()); err != nil {
			return res, err
		}
		res.Hit = e
		switch e.(type) {
		case *Hostile:
			s.destroyed++
		case *Base:
			s.end(OutcomeTreason)
		case *Star:
			s.end(OutcomeSupernova)
		case *Ship:
			panic("sst: torpedo struck the ship")
		}
		s.logger.Debug("torpedo hit", "kind", e.Kind(), "at", p)
		return res, nil
	}
	return res, nil
}

// Dock refills energy and torpedoes from an adjacent star base.
func (s *Session) Dock() (*Base, error) {
	ship := s.Ship()
	e, ok := s.universe.Adjacent(ship.Pos(), KindBase)
	if !ok {
		return nil, ErrNoBaseAdjacent
	}
	ship.energy = s.cfg.Ship.EnergyMax
	ship.torpedoes = s.cfg.Torpedoes.Max
	s.Tick(halfRandom(s.rng, s.cfg.Dock.Time))
	return e.(*Base), nil
}

// Yield is the result of mining a planet.
type Yield struct {
	Star   *Star
	Amount float64
}

// Mine draws dilithium from the planet of an adjacent star, as much as the
// planet holds or the tanks can take. A drained planet is gone.
func (s *Session) Mine() (Yield, error) {
	ship := s.Ship()
	e, ok := s.universe.Adjacent(ship.Pos(), KindStar)
	if !ok {
		return Yield{}, ErrNoStarAdjacent
	}
	star := e.(*Star)
	if !star.hasPlanet {
		return Yield{}, ErrNoPlanet
	}
	amount := math.Max(math.Min(star.energy, s.cfg.Ship.EnergyMax-ship.energy), 0)
	ship.energy += amount
	star.energy -= amount
	if star.energy <= 0 {
		star.energy = 0
		star.hasPlanet = false
	}
	s.Tick(halfRandom(s.rng, s.cfg.Mining.Time))
	return Yield{Star: star, Amount: amount}, nil
}

// Wait lets days pass. Negative waits pass no time.
func (s *Session) Wait(days float64) error {
	if !finite(days) {
		return ErrInvalidValue
	}
	s.Tick(math.Max(days, 0))
	return nil
}

// SelfDestruct ends the session as a loss.
func (s *Session) SelfDestruct() {
	s.end(OutcomeSelfDestruct)
}

// EndTurn runs the forced tick and a combat pass, then checks whether the
// session is over. It returns what happened during combat.
func (s *Session) EndTurn() []Event {
	s.Tick(s.cfg.Turn.Days)
	events := s.resolveCombat()
	s.checkTerminal()
	return events
}
