package sst

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/picotrek/internal/config"
)

// quietConfig returns defaults with hostile drift and aggression disabled so
// scenarios stay where they were put.
func quietConfig() config.SSTConfig {
	cfg := config.DefaultSSTConfig()
	cfg.Hostiles.Drift = 0
	cfg.Hostiles.ShipAggression = 0
	cfg.Hostiles.BaseAggression = 0
	return cfg
}

// newScenario builds a session with only the ship in it.
func newScenario(t *testing.T, cfg config.SSTConfig, ship Point, energy float64) *Session {
	t.Helper()
	u := NewUniverse(rand.New(rand.NewSource(1)))
	if _, err := u.AddShip(ship, energy, cfg.Torpedoes.Max); err != nil {
		t.Fatalf("AddShip() error = %v", err)
	}
	return NewSessionWith(cfg, u, 2500, nil)
}

func addHostile(t *testing.T, s *Session, p Point, energy float64) *Hostile {
	t.Helper()
	h, err := s.Universe().AddHostile(p, energy)
	if err != nil {
		t.Fatalf("AddHostile(%v) error = %v", p, err)
	}
	return h
}

func addBase(t *testing.T, s *Session, p Point, energy float64) *Base {
	t.Helper()
	b, err := s.Universe().AddBase(p, energy)
	if err != nil {
		t.Fatalf("AddBase(%v) error = %v", p, err)
	}
	return b
}

func addStar(t *testing.T, s *Session, p Point, energy float64, planet bool) *Star {
	t.Helper()
	st, err := s.Universe().AddStar(p, energy, planet)
	if err != nil {
		t.Fatalf("AddStar(%v) error = %v", p, err)
	}
	return st
}

func checkIndex(t *testing.T, u *Universe) {
	t.Helper()
	if err := u.Check(); err != nil {
		t.Errorf("Check() error = %v", err)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
