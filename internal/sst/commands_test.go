package sst

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestImpulseRejected(t *testing.T) {
	tests := []struct {
		name    string
		ship    Point
		heading float64
		dist    float64
		err     error
	}{
		{"occupied destination", Pt(10, 10), 180, 1, ErrDestinationOccupied},
		{"off the top", Pt(10, 1), 0, 3, ErrOutOfUniverse},
		{"off the right", Pt(62, 10), 90, 5, ErrOutOfUniverse},
		{"zero distance", Pt(10, 10), 90, 0, ErrDestinationOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScenario(t, quietConfig(), tt.ship, 5000)
			addHostile(t, s, Pt(10, 11), 3000)
			before := s.Snapshot()

			_, err := s.Impulse(tt.heading, tt.dist)
			if !errors.Is(err, tt.err) {
				t.Errorf("Impulse() error = %v, expected %v", err, tt.err)
			}
			if after := s.Snapshot(); after != before {
				t.Errorf("Impulse() changed state: %+v -> %+v", before, after)
			}
			checkIndex(t, s.Universe())
		})
	}
}

func TestImpulseMoves(t *testing.T) {
	cfg := quietConfig()
	s := newScenario(t, cfg, Pt(10, 10), 5000)

	to, err := s.Impulse(90, 4)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	if to != Pt(14, 10) || s.Ship().Pos() != Pt(14, 10) {
		t.Errorf("Impulse() moved to %v (ship at %v), expected (14,10)", to, s.Ship().Pos())
	}

	// Cost and time are randomised within [half, full] of the per-cell rate.
	spent := 5000 - s.Ship().Energy()
	if spent < cfg.Impulse.Energy*4/2 || spent > cfg.Impulse.Energy*4 {
		t.Errorf("Impulse() spent %v energy, expected within [400, 800]", spent)
	}
	elapsed := s.Stardate() - 2500
	if elapsed < cfg.Impulse.Time*4/2 || elapsed > cfg.Impulse.Time*4 {
		t.Errorf("Impulse() took %v days, expected within [2, 4]", elapsed)
	}
	checkIndex(t, s.Universe())
}

func TestWarpAlwaysLandsOnEmptyCell(t *testing.T) {
	cfg := quietConfig()
	for seed := int64(1); seed <= 25; seed++ {
		u := NewUniverse(rand.New(rand.NewSource(seed)))
		if err := u.Populate(cfg); err != nil {
			t.Fatalf("Populate() error = %v", err)
		}
		// Crowd the area around a likely landing point.
		for x := 28; x < 36; x++ {
			for y := 28; y < 36; y++ {
				if u.Index().Empty(Pt(x, y)) {
					if _, err := u.AddStar(Pt(x, y), 0, false); err != nil {
						t.Fatalf("AddStar() error = %v", err)
					}
				}
			}
		}
		s := NewSessionWith(cfg, u, 2500, nil)
		rng := rand.New(rand.NewSource(seed))

		for range 10 {
			heading := float64(rng.Intn(72) * 5)
			dist := float64(rng.Intn(33)) * 0.25
			others := len(u.Entities())

			to, err := s.Warp(heading, dist)
			if err != nil {
				t.Fatalf("Warp() error = %v", err)
			}
			if !to.Valid() {
				t.Fatalf("Warp() landed off grid at %v", to)
			}
			if occ, ok := u.Occupant(to); !ok || occ != Entity(s.Ship()) {
				t.Fatalf("Warp() landed at %v occupied by %v", to, occ)
			}
			if len(u.Entities()) != others {
				t.Fatalf("Warp() changed the entity count")
			}
			checkIndex(t, u)
		}
	}
}

func TestWarpZeroDistanceStaysPut(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(20, 20), 5000)
	to, err := s.Warp(45, 0)
	if err != nil {
		t.Fatalf("Warp() error = %v", err)
	}
	if to != Pt(20, 20) {
		t.Errorf("Warp(0) = %v, expected (20,20)", to)
	}
}

func TestWarpClampsToUniverse(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(60, 30), 5000)
	to, err := s.Warp(90, 8)
	if err != nil {
		t.Fatalf("Warp() error = %v", err)
	}
	if to != Pt(63, 30) {
		t.Errorf("Warp() past the edge = %v, expected (63,30)", to)
	}
}

func TestTorpedoHitsHostile(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(10, 10), 5000)
	target := addHostile(t, s, Pt(10, 13), 3000)
	other := addHostile(t, s, Pt(12, 10), 3000)
	base := addBase(t, s, Pt(14, 14), 5000)

	res, err := s.FireTorpedo(180)
	if err != nil {
		t.Fatalf("FireTorpedo() error = %v", err)
	}
	if res.Hit != Entity(target) {
		t.Errorf("FireTorpedo() hit %v, expected the hostile at (10,13)", res.Hit)
	}
	if len(res.Track) != 3 {
		t.Errorf("len(Track) = %d, expected 3", len(res.Track))
	}
	if _, ok := s.Universe().Entity(target.ID()); ok {
		t.Error("struck hostile still exists")
	}
	for _, e := range []Entity{other, base, s.Ship()} {
		if occ, ok := s.Universe().Occupant(e.Pos()); !ok || occ != e {
			t.Errorf("%s at %v was affected by the torpedo", e.Kind(), e.Pos())
		}
	}
	if other.Energy() != 3000 || base.Energy() != 5000 {
		t.Error("bystander energy changed")
	}
	if s.Ship().Torpedoes() != 9 {
		t.Errorf("Torpedoes() = %d, expected 9", s.Ship().Torpedoes())
	}
	if !s.Active() {
		t.Error("destroying a hostile should not end the session")
	}
	if s.HostilesDestroyed() != 1 {
		t.Errorf("HostilesDestroyed() = %d, expected 1", s.HostilesDestroyed())
	}
	checkIndex(t, s.Universe())
}

func TestTorpedoFriendlyFire(t *testing.T) {
	tests := []struct {
		name    string
		place   func(t *testing.T, s *Session)
		outcome Outcome
	}{
		{"star", func(t *testing.T, s *Session) { addStar(t, s, Pt(15, 10), 0, false) }, OutcomeSupernova},
		{"planet", func(t *testing.T, s *Session) { addStar(t, s, Pt(15, 10), 500, true) }, OutcomeSupernova},
		{"base", func(t *testing.T, s *Session) { addBase(t, s, Pt(15, 10), 5000) }, OutcomeTreason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScenario(t, quietConfig(), Pt(10, 10), 5000)
			addHostile(t, s, Pt(40, 40), 3000)
			tt.place(t, s)

			if _, err := s.FireTorpedo(90); err != nil {
				t.Fatalf("FireTorpedo() error = %v", err)
			}
			if s.Outcome() != tt.outcome {
				t.Errorf("Outcome() = %v, expected %v", s.Outcome(), tt.outcome)
			}
			if _, ok := s.Universe().Occupant(Pt(15, 10)); ok {
				t.Error("struck object still indexed")
			}

			// Combat afterwards never overrides the loss.
			s.EndTurn()
			if s.Outcome() != tt.outcome || s.Active() {
				t.Errorf("Outcome() after EndTurn() = %v, expected %v", s.Outcome(), tt.outcome)
			}
		})
	}
}

func TestTorpedoLeavesUniverse(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(10, 2), 5000)
	res, err := s.FireTorpedo(0)
	if err != nil {
		t.Fatalf("FireTorpedo() error = %v", err)
	}
	if !res.Lost || res.Hit != nil {
		t.Errorf("FireTorpedo() = %+v, expected a lost torpedo", res)
	}
	if len(res.Track) != 3 {
		t.Errorf("len(Track) = %d, expected 3", len(res.Track))
	}
	if got := trackLine(res.Track); got != "Track: (2,1) (2,0)" {
		t.Errorf("trackLine() = %q", got)
	}
}

func TestTorpedoRange(t *testing.T) {
	cfg := quietConfig()
	s := newScenario(t, cfg, Pt(10, 10), 5000)
	far := addHostile(t, s, Pt(10+cfg.Torpedoes.Range+1, 10), 3000)

	res, err := s.FireTorpedo(90)
	if err != nil {
		t.Fatalf("FireTorpedo() error = %v", err)
	}
	if res.Hit != nil || res.Lost {
		t.Errorf("FireTorpedo() = %+v, expected the torpedo to burn out", res)
	}
	if len(res.Track) != cfg.Torpedoes.Range {
		t.Errorf("len(Track) = %d, expected %d", len(res.Track), cfg.Torpedoes.Range)
	}
	if _, ok := s.Universe().Entity(far.ID()); !ok {
		t.Error("hostile beyond range was destroyed")
	}
}

func TestTorpedoEmptyRacks(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(10, 10), 5000)
	s.Ship().torpedoes = 0
	before := s.Snapshot()

	if _, err := s.FireTorpedo(90); !errors.Is(err, ErrNoTorpedoes) {
		t.Errorf("FireTorpedo() error = %v, expected ErrNoTorpedoes", err)
	}
	if after := s.Snapshot(); after != before {
		t.Errorf("FireTorpedo() with empty racks changed state")
	}
}

func TestDock(t *testing.T) {
	cfg := quietConfig()
	for _, energy := range []float64{0, 123.5, 9999} {
		s := newScenario(t, cfg, Pt(10, 10), energy)
		s.Ship().torpedoes = 2
		base := addBase(t, s, Pt(9, 9), 5000)

		got, err := s.Dock()
		if err != nil {
			t.Fatalf("Dock() error = %v", err)
		}
		if got != base {
			t.Errorf("Dock() base = %v, expected %v", got, base)
		}
		if s.Ship().Energy() != cfg.Ship.EnergyMax {
			t.Errorf("Energy() after Dock() = %v, expected %v", s.Ship().Energy(), cfg.Ship.EnergyMax)
		}
		if s.Ship().Torpedoes() != cfg.Torpedoes.Max {
			t.Errorf("Torpedoes() after Dock() = %d, expected %d", s.Ship().Torpedoes(), cfg.Torpedoes.Max)
		}
		if s.Stardate() <= 2500 {
			t.Error("Dock() should take time")
		}
	}
}

func TestMine(t *testing.T) {
	cfg := quietConfig()
	s := newScenario(t, cfg, Pt(10, 10), 9000)
	star := addStar(t, s, Pt(11, 10), 2500, true)

	y, err := s.Mine()
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if y.Amount != 1000 || y.Star != star {
		t.Errorf("Mine() = %+v, expected 1000 units from the star", y)
	}
	if s.Ship().Energy() != 10000 || star.Energy() != 1500 || !star.HasPlanet() {
		t.Errorf("after Mine(): ship %v, star %v, planet %v", s.Ship().Energy(), star.Energy(), star.HasPlanet())
	}

	s.Ship().energy = 1000
	if _, err := s.Mine(); err != nil {
		t.Fatalf("second Mine() error = %v", err)
	}
	if star.Energy() != 0 || star.HasPlanet() {
		t.Errorf("drained star: energy %v, planet %v, expected 0, false", star.Energy(), star.HasPlanet())
	}
	if s.Ship().Energy() != 2500 {
		t.Errorf("Energy() = %v, expected 2500", s.Ship().Energy())
	}

	before := s.Snapshot()
	if _, err := s.Mine(); !errors.Is(err, ErrNoPlanet) {
		t.Errorf("Mine() on depleted star error = %v, expected ErrNoPlanet", err)
	}
	if after := s.Snapshot(); after != before {
		t.Error("failed Mine() changed state")
	}
}

// Ship at (10,10) with 5000 energy, hostile adjacent at (10,11).
func TestAdjacentHostileScenario(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(10, 10), 5000)
	h := addHostile(t, s, Pt(10, 11), 3000)

	if _, err := s.Dock(); !errors.Is(err, ErrNoBaseAdjacent) {
		t.Errorf("Dock() error = %v, expected ErrNoBaseAdjacent", err)
	}
	if _, err := s.Mine(); !errors.Is(err, ErrNoStarAdjacent) {
		t.Errorf("Mine() error = %v, expected ErrNoStarAdjacent", err)
	}

	targets := s.PhaserTargets()
	if len(targets) != 1 || targets[0] != h {
		t.Fatalf("PhaserTargets() = %v, expected the adjacent hostile", targets)
	}
	if got := s.PhaserAllowance(); got != 1000 {
		t.Errorf("PhaserAllowance() = %v, expected 1000", got)
	}

	hit, err := s.FirePhaser(h.ID(), 100)
	if err != nil {
		t.Fatalf("FirePhaser() error = %v", err)
	}
	if hit.Damage != 400 {
		t.Errorf("FirePhaser() damage = %v, expected 400", hit.Damage)
	}
	if h.Energy() != 2600 || hit.Destroyed {
		t.Errorf("hostile energy = %v (destroyed %v), expected 2600", h.Energy(), hit.Destroyed)
	}
	if s.Ship().Energy() != 4900 {
		t.Errorf("ship energy = %v, expected 4900", s.Ship().Energy())
	}
}

func TestPhaserDestroys(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(10, 10), 5000)
	h := addHostile(t, s, Pt(12, 10), 1000)

	hit, err := s.FirePhaser(h.ID(), 600)
	if err != nil {
		t.Fatalf("FirePhaser() error = %v", err)
	}
	if !hit.Destroyed || hit.Damage != 1200 {
		t.Errorf("FirePhaser() = %+v, expected 1200 damage and a kill", hit)
	}
	if _, ok := s.Universe().Entity(h.ID()); ok {
		t.Error("destroyed hostile still exists")
	}
	if _, err := s.FirePhaser(h.ID(), 100); !errors.Is(err, ErrNoTarget) {
		t.Errorf("FirePhaser(dead target) error = %v, expected ErrNoTarget", err)
	}
	checkIndex(t, s.Universe())
}

func TestPhaserAllowance(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(10, 10), 1500)
	h := addHostile(t, s, Pt(10, 12), 3000)

	if got := s.PhaserAllowance(); got != 750 {
		t.Errorf("PhaserAllowance() = %v, expected 750", got)
	}
	hit, err := s.FirePhaser(h.ID(), 5000)
	if err != nil {
		t.Fatalf("FirePhaser() error = %v", err)
	}
	if hit.Energy != 750 {
		t.Errorf("FirePhaser() spent %v, expected the 750 allowance", hit.Energy)
	}
	if got := s.PhaserAllowance(); got != 375 {
		t.Errorf("PhaserAllowance() after a shot = %v, expected 375", got)
	}
}

func TestScansFillCache(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(3, 3), 5000)
	addHostile(t, s, Pt(12, 2), 3000)
	addStar(t, s, Pt(5, 5), 0, false)

	if _, ok := s.Scan(Pt(0, 0)); ok {
		t.Error("Scan() should be unknown before any scan")
	}

	view := s.ShortRangeScan()
	if e, ok := view.At(5, 5); !ok || e.Kind() != KindStar {
		t.Errorf("At(5,5) = %v, %v, expected a star", e, ok)
	}
	if _, ok := view.At(1, 1); ok {
		t.Error("At(1,1) should be empty")
	}
	if c, ok := s.Scan(Pt(0, 0)); !ok || c.Code() != "001" {
		t.Errorf("Scan(0,0) after SRS = %q, %v, expected \"001\"", c.Code(), ok)
	}

	scans := s.LongRangeScan()
	if scans[0][0].Known || scans[1][0].Known || scans[0][1].Known {
		t.Error("LongRangeScan() should not know sectors outside the universe")
	}
	if got := scans[1][2].Code(); got != "100" {
		t.Errorf("LongRangeScan() east sector = %q, expected \"100\"", got)
	}
	if got := scans[0][0].Code(); got != "???" {
		t.Errorf("LongRangeScan() outside code = %q, expected \"???\"", got)
	}
	if _, ok := s.Scan(Pt(1, 1)); !ok {
		t.Error("Scan(1,1) should be cached by LongRangeScan()")
	}
	if _, ok := s.Scan(Pt(5, 5)); ok {
		t.Error("Scan(5,5) should still be unknown")
	}
}

func TestFireControl(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(10, 10), 5000)
	addHostile(t, s, Pt(10, 11), 3000)
	addBase(t, s, Pt(13, 10), 5000)
	addHostile(t, s, Pt(30, 30), 3000)

	bearings := s.FireControl()
	if len(bearings) != 2 {
		t.Fatalf("FireControl() returned %d bearings, expected 2", len(bearings))
	}
	if b := bearings[0]; b.Target.Kind() != KindHostile || !near(b.Distance, 1) || !near(b.Heading, 180) {
		t.Errorf("bearing[0] = %+v, expected hostile at distance 1 heading 180", b)
	}
	if b := bearings[1]; b.Target.Kind() != KindBase || !near(b.Distance, 3) || !near(b.Heading, 90) {
		t.Errorf("bearing[1] = %+v, expected base at distance 3 heading 90", b)
	}
}

func TestNonFiniteOrdersRejected(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name  string
		order func(s *Session, target ID) error
	}{
		{"impulse heading", func(s *Session, _ ID) error { _, err := s.Impulse(nan, 2); return err }},
		{"impulse distance", func(s *Session, _ ID) error { _, err := s.Impulse(90, inf); return err }},
		{"warp heading", func(s *Session, _ ID) error { _, err := s.Warp(nan, 1); return err }},
		{"warp sectors", func(s *Session, _ ID) error { _, err := s.Warp(0, nan); return err }},
		{"phaser energy", func(s *Session, id ID) error { _, err := s.FirePhaser(id, nan); return err }},
		{"torpedo heading", func(s *Session, _ ID) error { _, err := s.FireTorpedo(nan); return err }},
		{"wait", func(s *Session, _ ID) error { return s.Wait(nan) }},
		{"wait forever", func(s *Session, _ ID) error { return s.Wait(inf) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScenario(t, quietConfig(), Pt(10, 10), 5000)
			h := addHostile(t, s, Pt(12, 10), 1000)
			before := s.Snapshot()

			if err := tt.order(s, h.ID()); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("error = %v, expected ErrInvalidValue", err)
			}
			if after := s.Snapshot(); after != before {
				t.Errorf("state changed: %+v -> %+v", before, after)
			}
			if h.Energy() != 1000 {
				t.Errorf("hostile energy = %v, expected 1000", h.Energy())
			}
			checkIndex(t, s.Universe())
		})
	}
}

func TestTickIgnoresBadSpans(t *testing.T) {
	s := newScenario(t, quietConfig(), Pt(10, 10), 5000)
	for _, days := range []float64{math.NaN(), math.Inf(1), -1} {
		s.Tick(days)
		if s.Stardate() != 2500 {
			t.Errorf("Tick(%v) moved stardate to %v", days, s.Stardate())
		}
	}
}
