package sst

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picotrek/internal/config"
	"github.com/vovakirdan/picotrek/internal/core"
)

// Summary is what a finished session leaves behind for the service record.
type Summary struct {
	Outcome           Outcome
	Stardate          float64
	Days              float64
	HostilesDestroyed int
	HostilesRemaining int
	BasesRemaining    int
	Energy            float64
}

// Summary reports the session's result.
func (s *Session) Summary() Summary {
	counts := s.universe.CountAll()
	return Summary{
		Outcome:           s.outcome,
		Stardate:          s.stardate,
		Days:              s.Days(),
		HostilesDestroyed: s.destroyed,
		HostilesRemaining: counts.Of(KindHostile),
		BasesRemaining:    counts.Of(KindBase),
		Energy:            s.Ship().Energy(),
	}
}

// Recorder stores the summary of every finished session.
type Recorder interface {
	SaveSummary(Summary) error
}

// Options configures a Game.
type Options struct {
	Config   config.SSTConfig
	Seed     int64 // Zero seeds from the clock
	Logger   *log.Logger
	Recorder Recorder // Optional
}

// Game is the top-level state machine: start menu, active session, game
// over, and back to the menu.
type Game struct {
	cfg      config.SSTConfig
	display  core.Display
	input    core.Input
	logger   *log.Logger
	recorder Recorder
	seeds    *rand.Rand
	commands map[string]func(*Session) error
}

// NewGame creates a game drawing on display and reading from input.
func NewGame(display core.Display, input core.Input, opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:      opts.Config,
		display:  display,
		input:    input,
		logger:   logger,
		recorder: opts.Recorder,
		seeds:    rand.New(rand.NewSource(seed)),
	}
	g.commands = map[string]func(*Session) error{
		CmdLongRange:  g.longRange,
		CmdShortRange: g.shortRange,
		CmdMap:        g.showMap,
		CmdFireCtl:    g.fireControl,
		CmdImpulse:    g.impulse,
		CmdWarp:       g.warp,
		CmdPhaser:     g.phasers,
		CmdTorpedo:    g.torpedo,
		CmdDock:       g.dock,
		CmdMine:       g.mine,
		CmdHail:       g.hail,
		CmdWait:       g.wait,
		CmdDestruct:   g.selfDestruct,
		CmdHelp:       g.help,
	}
	return g
}

// Run shows the start menu until the player quits. Input errors, including
// core.ErrAborted, end the run and are returned.
func (g *Game) Run() error {
	for {
		choice, err := g.input.Choose(menuPrompt, []string{MenuAccept, MenuAbout, MenuQuit})
		if err != nil {
			return err
		}
		switch choice {
		case MenuAccept:
			if err := g.Play(); err != nil {
				return err
			}
		case MenuAbout:
			if err := g.input.Pages(aboutText); err != nil {
				return err
			}
		case MenuQuit:
			return nil
		}
	}
}

// Play runs one session with a freshly populated universe until it ends.
func (g *Game) Play() error {
	seed := g.seeds.Int63()
	s, err := NewSession(g.cfg, seed, g.logger)
	if err != nil {
		return fmt.Errorf("populate universe: %w", err)
	}
	counts := s.universe.CountAll()
	g.logger.Info("session started", "seed", seed, "stardate", s.Stardate(),
		"hostiles", counts.Of(KindHostile), "bases", counts.Of(KindBase), "stars", counts.Of(KindStar))

	for s.Active() {
		if err := g.Turn(s); err != nil {
			return err
		}
	}

	g.record(s)
	return g.input.Pages(append(s.Outcome().Lines(), "Game Over."))
}

// Turn shows the status panel, executes one command and ends the turn.
func (g *Game) Turn(s *Session) error {
	drawStatus(g.display, s)
	if err := g.display.Commit(); err != nil {
		return fmt.Errorf("commit frame: %w", err)
	}
	cmd, err := g.input.Choose([]string{"Command?"}, Commands)
	if err != nil {
		return err
	}
	run, ok := g.commands[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd)
	}
	g.logger.Debug("command", "cmd", cmd, "stardate", s.Stardate())
	if err := run(s); err != nil {
		return err
	}
	for _, ev := range s.EndTurn() {
		if err := g.input.Pages(ev.Lines()); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) record(s *Session) {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.SaveSummary(s.Summary()); err != nil {
		g.logger.Warn("failed to save service record", "error", err)
	}
}

var rejections = []error{
	ErrOutOfUniverse, ErrDestinationOccupied, ErrNoTorpedoes,
	ErrNoBaseAdjacent, ErrNoStarAdjacent, ErrNoPlanet, ErrNoTarget,
	ErrInvalidValue,
}

// IsRejection reports whether err is a refused order rather than a failure.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// reject tells the player why an order was refused. Errors that are not
// rejections are returned unchanged.
func (g *Game) reject(cmd string, err error) error {
	if !IsRejection(err) {
		return err
	}
	g.logger.Debug("order rejected", "cmd", cmd, "reason", err)
	msg := sentence(err.Error())
	if cmd == CmdImpulse || cmd == CmdWarp {
		return g.input.Pages([]string{cmd + " - Order belayed.", msg})
	}
	return g.input.Pages([]string{cmd + " - " + msg})
}

func sentence(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:] + "."
}

// acknowledge waits for the player to dismiss the committed frame.
func (g *Game) acknowledge() error {
	if err := g.display.Commit(); err != nil {
		return fmt.Errorf("commit frame: %w", err)
	}
	_, err := g.input.Choose(nil, []string{"OK"})
	return err
}

func (g *Game) longRange(s *Session) error {
	scans := s.LongRangeScan()
	drawLongRange(g.display, s.Ship().Pos().Sector(), scans)
	return g.acknowledge()
}

func (g *Game) shortRange(s *Session) error {
	drawShortRange(g.display, s.ShortRangeScan())
	return g.acknowledge()
}

func (g *Game) showMap(s *Session) error {
	return g.input.Pages(mapPages(s))
}

func (g *Game) fireControl(s *Session) error {
	return g.input.Pages(fireControlLines(s.FireControl()))
}

func (g *Game) course(cmd, unit string, drive config.DriveConfig) (heading, dist float64, err error) {
	heading, err = g.input.Number(cmd+" Heading", 0, 360, 5)
	if err != nil {
		return 0, 0, err
	}
	dist, err = g.input.Number("Distance ("+unit+")", 0, drive.MaxDistance, drive.Step)
	return heading, dist, err
}

func (g *Game) impulse(s *Session) error {
	heading, dist, err := g.course(CmdImpulse, "coord", g.cfg.Impulse)
	if err != nil {
		return err
	}
	if _, err := s.Impulse(heading, dist); err != nil {
		return g.reject(CmdImpulse, err)
	}
	return nil
}

func (g *Game) warp(s *Session) error {
	heading, dist, err := g.course(CmdWarp, "sect", g.cfg.Warp)
	if err != nil {
		return err
	}
	if _, err := s.Warp(heading, dist); err != nil {
		return g.reject(CmdWarp, err)
	}
	return nil
}

func (g *Game) phasers(s *Session) error {
	lines := []string{CmdPhaser}
	targets := s.PhaserTargets()
	if len(targets) == 0 {
		lines = append(lines, "There are no Klingons in this sector.")
	}
	for _, h := range targets {
		l := h.Pos().Local()
		allowance := s.PhaserAllowance()
		energy, err := g.input.Number(fmt.Sprintf("PHA to (%d,%d)", l.X, l.Y), 0, allowance, math.Floor(allowance/11))
		if err != nil {
			return err
		}
		hit, err := s.FirePhaser(h.ID(), energy)
		if err != nil {
			return g.reject(CmdPhaser, err)
		}
		if hit.Destroyed {
			lines = append(lines, fmt.Sprintf("Klingon at (%d,%d) destroyed.", l.X, l.Y))
		} else {
			lines = append(lines, fmt.Sprintf("Klingon at (%d,%d) damaged by %.0f units.", l.X, l.Y, hit.Damage))
		}
	}
	return g.input.Pages(lines)
}

func (g *Game) torpedo(s *Session) error {
	if s.Ship().Torpedoes() == 0 {
		return g.reject(CmdTorpedo, ErrNoTorpedoes)
	}
	heading, err := g.input.Number(CmdTorpedo+" Heading", 0, 360, 5)
	if err != nil {
		return err
	}
	res, err := s.FireTorpedo(heading)
	if err != nil {
		return g.reject(CmdTorpedo, err)
	}

	lines := []string{CmdTorpedo, trackLine(res.Track)}
	switch hit := res.Hit.(type) {
	case nil:
		if res.Lost {
			lines = append(lines, "Photon torpedo has left known space.")
		} else {
			lines = append(lines, "Photon torpedo burned out.")
		}
	case *Hostile:
		lines = append(lines, "Klingon destroyed.")
	case *Base:
		lines = append(lines, "Base destroyed. You have been found guilty of treason and pushed out an airlock.")
	case *Star:
		lines = append(lines,
			"Star destroyed. It is a really bad idea to launch a torpedo into a star.",
			"The resulting supernova just destroyed the Enterprise.")
	default:
		return fmt.Errorf("torpedo struck %s", hit.Kind())
	}
	return g.input.Pages(lines)
}

func (g *Game) dock(s *Session) error {
	base, err := s.Dock()
	if err != nil {
		return g.reject(CmdDock, err)
	}
	return g.input.Pages([]string{
		"DOK - The tanks have been filled to capacity with dilithium and the torpedo racks are full.",
		fmt.Sprintf("The base at %s said 'Good luck, captain.'", base.Pos()),
	})
}

func (g *Game) mine(s *Session) error {
	y, err := s.Mine()
	if err != nil {
		return g.reject(CmdMine, err)
	}
	return g.input.Pages([]string{
		fmt.Sprintf("MNE - You mined the star at %s for %.0f units of dilithium.", y.Star.Pos(), y.Amount),
	})
}

func (g *Game) hail(*Session) error {
	return g.input.Pages([]string{"HAI - Communications not installed."})
}

func (g *Game) wait(s *Session) error {
	days, err := g.input.Number("Wait - Repair", 0, g.cfg.Turn.WaitMax, g.cfg.Turn.WaitStep)
	if err != nil {
		return err
	}
	if err := s.Wait(days); err != nil {
		return g.reject(CmdWait, err)
	}
	return nil
}

func (g *Game) selfDestruct(s *Session) error {
	answer, err := g.input.Choose([]string{"SST", "Self Destruct?"}, []string{"YES", "NO"})
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "YES") {
		s.SelfDestruct()
	}
	return nil
}

func (g *Game) help(*Session) error {
	return g.input.Pages(helpText)
}
