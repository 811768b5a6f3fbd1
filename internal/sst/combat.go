package sst

import "fmt"

// EventKind classifies combat events.
type EventKind int

const (
	EventShipAttacked EventKind = iota
	EventBaseAttacked
	EventBaseDestroyed
)

// Event is one hostile attack resolved at the end of a turn.
type Event struct {
	Kind     EventKind
	Attacker Point
	Target   Point
	Damage   float64
}

// Lines returns the message shown to the player.
func (e Event) Lines() []string {
	switch e.Kind {
	case EventShipAttacked:
		l := e.Attacker.Local()
		return []string{fmt.Sprintf("Klingon at (%d,%d) did %.0f damage to the Enterprise with a disruptor.", l.X, l.Y, e.Damage)}
	case EventBaseDestroyed:
		return []string{"SUBSPACE COMM:", fmt.Sprintf("Base at %s has been destroyed.", e.Target)}
	default:
		return []string{"SUBSPACE COMM:", fmt.Sprintf("Base at %s is under attack. Please send assistance.", e.Target)}
	}
}

// discharge fires a hostile's disruptor. A quarter of the attacker's energy
// is lost by both the attacker and the target.
func discharge(attacker *Hostile, target Entity) float64 {
	damage := attacker.energy * 0.25
	attacker.energy -= damage
	target.state().energy -= damage
	return damage
}

// resolveCombat lets hostiles fire on the ship and on bases sharing their
// sector.
func (s *Session) resolveCombat() []Event {
	var events []Event
	ship := s.Ship()
	for _, h := range s.universe.hostilesNear(ship.Pos()) {
		if s.rng.Float64() > s.cfg.Hostiles.ShipAggression {
			continue
		}
		damage := discharge(h, ship)
		s.logger.Debug("ship attacked", "hostile", h.ID(), "damage", damage, "energy", ship.energy)
		events = append(events, Event{Kind: EventShipAttacked, Attacker: h.Pos(), Target: ship.Pos(), Damage: damage})
	}

	for _, b := range s.universe.Bases() {
		for _, h := range s.universe.hostilesNear(b.Pos()) {
			if s.rng.Float64() > s.cfg.Hostiles.BaseAggression {
				continue
			}
			damage := discharge(h, b)
			ev := Event{Kind: EventBaseAttacked, Attacker: h.Pos(), Target: b.Pos(), Damage: damage}
			if b.energy <= 0 {
				ev.Kind = EventBaseDestroyed
				if err := s.universe.Remove(b.ID()); err != nil {
					s.logger.Warn("base removal failed", "id", b.ID(), "error", err)
				}
			}
			s.logger.Debug("base attacked", "base", b.ID(), "hostile", h.ID(), "damage", damage, "destroyed", ev.Kind == EventBaseDestroyed)
			events = append(events, ev)
			if ev.Kind == EventBaseDestroyed {
				break
			}
		}
	}
	return events
}

// checkTerminal ends the session when no hostile remains or the ship has
// run dry. Clearing the last hostile wins regardless of the ship's energy.
func (s *Session) checkTerminal() {
	if !s.Active() {
		return
	}
	if s.universe.CountAll().Of(KindHostile) == 0 {
		s.end(OutcomeVictory)
		return
	}
	if s.Ship().Energy() <= 0 {
		s.end(OutcomeDestroyed)
	}
}

// Lines returns the end-of-game message for the outcome.
func (o Outcome) Lines() []string {
	switch o {
	case OutcomeVictory:
		return []string{
			"Congratulations, you have exterminated a proud race and made the known universe safe again.",
		}
	case OutcomeDestroyed:
		return []string{
			"You have been relieved of duty, because you are dead.",
			"The ship has no energy left to run the drives, shields or life support.",
		}
	case OutcomeTreason:
		return []string{"You destroyed a star base and were found guilty of treason."}
	case OutcomeSupernova:
		return []string{"The supernova of a torpedoed star destroyed the Enterprise."}
	case OutcomeSelfDestruct:
		return []string{"The Enterprise self destructed with all hands."}
	default:
		return nil
	}
}
