package sst

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picotrek/internal/config"
)

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDestroyed
	OutcomeTreason
	OutcomeSupernova
	OutcomeSelfDestruct
)

// String returns the outcome name stored in the service record.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDestroyed:
		return "destroyed"
	case OutcomeTreason:
		return "treason"
	case OutcomeSupernova:
		return "supernova"
	case OutcomeSelfDestruct:
		return "self-destruct"
	default:
		return "unknown"
	}
}

// Won reports whether the outcome counts as a victory.
func (o Outcome) Won() bool {
	return o == OutcomeVictory
}

// Condition is the ship's alert status.
type Condition int

const (
	ConditionGreen Condition = iota
	ConditionYellow
	ConditionRed
)

func (c Condition) String() string {
	switch c {
	case ConditionYellow:
		return "YELLOW"
	case ConditionRed:
		return "RED"
	default:
		return "GREEN"
	}
}

// Session is one game: a populated universe, the stardate, the scan cache
// and the terminal outcome.
type Session struct {
	cfg      config.SSTConfig
	rng      *rand.Rand
	logger   *log.Logger
	universe *Universe

	startDate float64
	stardate  float64
	scans     [Sectors][Sectors]Counts
	scanned   [Sectors][Sectors]bool
	outcome   Outcome
	destroyed int // Hostiles destroyed by the player
}

// NewSession builds a populated universe seeded from seed.
func NewSession(cfg config.SSTConfig, seed int64, logger *log.Logger) (*Session, error) {
	rng := rand.New(rand.NewSource(seed))
	u := NewUniverse(rng)
	if err := u.Populate(cfg); err != nil {
		return nil, err
	}
	date := cfg.Stardate.Base + rng.Float64()*cfg.Stardate.Spread
	return newSession(cfg, rng, u, date, logger), nil
}

// NewSessionWith wraps an existing universe, for scripted scenarios.
func NewSessionWith(cfg config.SSTConfig, u *Universe, stardate float64, logger *log.Logger) *Session {
	return newSession(cfg, u.rng, u, stardate, logger)
}

func newSession(cfg config.SSTConfig, rng *rand.Rand, u *Universe, stardate float64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:       cfg,
		rng:       rng,
		logger:    logger,
		universe:  u,
		startDate: stardate,
		stardate:  stardate,
	}
}

// Universe returns the session's universe.
func (s *Session) Universe() *Universe { return s.universe }

// Ship returns the player ship.
func (s *Session) Ship() *Ship { return s.universe.Ship() }

// Stardate returns the current stardate.
func (s *Session) Stardate() float64 { return s.stardate }

// Outcome returns how the session ended, or OutcomeNone while it is active.
func (s *Session) Outcome() Outcome { return s.outcome }

// Days returns the simulated days elapsed since the session started.
func (s *Session) Days() float64 {
	return s.stardate - s.startDate
}

// Active reports whether the session is still being played.
func (s *Session) Active() bool {
	return s.outcome == OutcomeNone
}

// HostilesDestroyed returns the number of hostiles the player destroyed.
func (s *Session) HostilesDestroyed() int {
	return s.destroyed
}

// end records a terminal outcome. The first outcome of a session sticks.
func (s *Session) end(o Outcome) {
	if s.outcome != OutcomeNone {
		return
	}
	s.outcome = o
	s.logger.Info("session ended", "outcome", o, "stardate", s.stardate)
}

// Condition returns the ship's alert status.
func (s *Session) Condition() Condition {
	ship := s.Ship()
	if ship.Energy() < s.cfg.Ship.YellowAlert {
		return ConditionYellow
	}
	if len(s.universe.hostilesNear(ship.Pos())) > 0 {
		return ConditionRed
	}
	return ConditionGreen
}

// Scan returns the cached counts for a sector, reporting false when it was
// never scanned or lies outside the universe.
func (s *Session) Scan(sector Point) (Counts, bool) {
	if sector.X < 0 || sector.Y < 0 || sector.X >= Sectors || sector.Y >= Sectors {
		return Counts{}, false
	}
	return s.scans[sector.X][sector.Y], s.scanned[sector.X][sector.Y]
}

// remember stores live counts for the sector containing p.
func (s *Session) remember(p Point) (Counts, bool) {
	c, ok := s.universe.CountSector(p)
	if !ok {
		return c, false
	}
	sec := p.Sector()
	s.scans[sec.X][sec.Y] = c
	s.scanned[sec.X][sec.Y] = true
	return c, true
}

// Tick advances the stardate by days. Hostiles regenerate and drift, bases
// regenerate. The ship does not regenerate. Negative or non-finite spans are
// ignored so the stardate never goes backwards.
func (s *Session) Tick(days float64) {
	if !finite(days) || days < 0 {
		return
	}
	s.stardate += days
	for _, h := range s.universe.Hostiles() {
		regen(h, s.cfg.Hostiles.Regen, s.cfg.Hostiles.Energy, days)
		s.drift(h, days)
	}
	for _, b := range s.universe.Bases() {
		regen(b, s.cfg.Bases.Regen, s.cfg.Bases.Energy, days)
	}
}

func regen(e Entity, rate, ceiling, days float64) {
	b := e.state()
	b.energy = math.Min(b.energy+b.energy*rate*days, ceiling)
}

// drift moves a hostile a short random hop. Blocked or off-grid targets
// leave it in place.
func (s *Session) drift(h *Hostile, days float64) {
	angle := s.rng.Float64() * 2 * math.Pi
	d := halfRandomInt(s.rng, int(math.Round(s.cfg.Hostiles.Drift*days)))
	if d <= 0 {
		return
	}
	from := h.Pos()
	to := Point{
		X: int(float64(from.X) + math.Sin(angle)*float64(d)),
		Y: int(float64(from.Y) + math.Cos(angle)*float64(d)),
	}
	if !s.universe.index.Empty(to) {
		return
	}
	if err := s.universe.MoveEntity(h.ID(), to); err != nil {
		s.logger.Warn("hostile drift failed", "id", h.ID(), "error", err)
		return
	}
	s.logger.Debug("hostile moved", "id", h.ID(), "from", from, "to", to)
}

// Snapshot captures the observable session state.
type Snapshot struct {
	Stardate  float64
	Ship      Point
	Energy    float64
	Torpedoes int
	Counts    Counts
	Outcome   Outcome
}

// Snapshot returns the current state for comparisons in tests and logs.
func (s *Session) Snapshot() Snapshot {
	ship := s.Ship()
	return Snapshot{
		Stardate:  s.stardate,
		Ship:      ship.Pos(),
		Energy:    ship.Energy(),
		Torpedoes: ship.torpedoes,
		Counts:    s.universe.CountAll(),
		Outcome:   s.outcome,
	}
}
