// Package gametest provides a scripted decision maker and card fixtures for
// tests that drive the engine deterministically.
package gametest

import (
	"testing"

	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// ScriptedDecisionMaker answers from predefined queues. Running out of coin
// flips fails the test; running out of choices picks the first candidate.
type ScriptedDecisionMaker struct {
	t *testing.T

	flips   []bool
	flipped int

	energy  []game.EnergyType
	attacks []string
	cards   []string // by card name
}

func NewScriptedDecisionMaker(t *testing.T) *ScriptedDecisionMaker {
	return &ScriptedDecisionMaker{t: t}
}

// AddFlips queues coin results; true is heads.
func (d *ScriptedDecisionMaker) AddFlips(results ...bool) *ScriptedDecisionMaker {
	d.flips = append(d.flips, results...)
	return d
}

func (d *ScriptedDecisionMaker) AddEnergyChoice(t game.EnergyType) *ScriptedDecisionMaker {
	d.energy = append(d.energy, t)
	return d
}

func (d *ScriptedDecisionMaker) AddAttackChoice(name string) *ScriptedDecisionMaker {
	d.attacks = append(d.attacks, name)
	return d
}

func (d *ScriptedDecisionMaker) AddCardChoice(name string) *ScriptedDecisionMaker {
	d.cards = append(d.cards, name)
	return d
}

// Flipped returns how many coins have been flipped.
func (d *ScriptedDecisionMaker) Flipped() int {
	return d.flipped
}

// Remaining returns how many queued coin results are unused.
func (d *ScriptedDecisionMaker) Remaining() int {
	return len(d.flips)
}

func (d *ScriptedDecisionMaker) FlipCoins(n int) game.Flips {
	d.t.Helper()
	if n > len(d.flips) {
		d.t.Fatalf("scripted decision maker: %d coin(s) requested, %d queued", n, len(d.flips))
	}
	out := append(game.Flips(nil), d.flips[:n]...)
	d.flips = d.flips[n:]
	d.flipped += n
	return out
}

func (d *ScriptedDecisionMaker) PickEnergyType(s *game.State, player game.PlayerID, candidates []game.EnergyType) game.EnergyType {
	d.t.Helper()
	if len(d.energy) == 0 {
		return candidates[0]
	}
	want := d.energy[0]
	d.energy = d.energy[1:]
	for _, c := range candidates {
		if c == want {
			return c
		}
	}
	d.t.Fatalf("scripted decision maker: %s not among %v", want, candidates)
	return game.EnergyNone
}

func (d *ScriptedDecisionMaker) PickAttack(s *game.State, player game.PlayerID, candidates []string) string {
	d.t.Helper()
	if len(d.attacks) == 0 {
		return candidates[0]
	}
	want := d.attacks[0]
	d.attacks = d.attacks[1:]
	for _, c := range candidates {
		if c == want {
			return c
		}
	}
	d.t.Fatalf("scripted decision maker: attack %q not among %v", want, candidates)
	return ""
}

func (d *ScriptedDecisionMaker) PickCard(s *game.State, player game.PlayerID, prompt string, candidates []game.CardRef) game.CardRef {
	d.t.Helper()
	if len(d.cards) == 0 {
		return candidates[0]
	}
	want := d.cards[0]
	d.cards = d.cards[1:]
	for _, ref := range candidates {
		if c := s.Card(ref); c != nil && c.Card.Name == want {
			return ref
		}
	}
	d.t.Fatalf("scripted decision maker: card %q not among candidates for %q", want, prompt)
	return game.CardRef{}
}

// --- Card helpers ---

// Pokemon builds a Pokemon card with no weakness, resistance or attacks.
func Pokemon(name string, hp int, t game.EnergyType) *game.Card {
	return &game.Card{Name: name, Kind: game.KindPokemon, HP: hp, Type: t}
}

// WithWeakness returns a copy of card with the given weakness.
func WithWeakness(card *game.Card, w game.EnergyType) *game.Card {
	c := *card
	c.Weakness = w
	return &c
}

// WithResistance returns a copy of card with the given resistance.
func WithResistance(card *game.Card, r game.EnergyType) *game.Card {
	c := *card
	c.Resistance = r
	return &c
}

// WithAttacks returns a copy of card with the given attacks.
func WithAttacks(card *game.Card, attacks ...game.Attack) *game.Card {
	c := *card
	c.Attacks = attacks
	return &c
}

// Energy returns n basic energy cards of type t.
func Energy(t game.EnergyType, n int) []*game.Card {
	out := make([]*game.Card, n)
	for i := range out {
		out[i] = game.EnergyCard(t)
	}
	return out
}

// Table is a two-Pokemon table with P1 to act on turn 2.
type Table struct {
	State    *game.State
	Logger   *log.MemoryLogger
	Attacker game.CardRef
	Defender game.CardRef
}

// NewTable puts attacker active for P1 and defender active for P2.
func NewTable(format *game.Format, attacker, defender *game.Card) *Table {
	logger := log.NewMemoryLogger()
	s := game.NewState(format, logger).WithTurn(2, 0)
	s, a := s.PutActive(0, attacker)
	s, d := s.PutActive(1, defender)
	return &Table{State: s, Logger: logger, Attacker: a, Defender: d}
}

// Bench adds a benched card for p and returns its reference.
func (tb *Table) Bench(p game.PlayerID, card *game.Card) game.CardRef {
	var ref game.CardRef
	tb.State, ref = tb.State.PutBench(p, card)
	return ref
}

// Attach attaches energy without running hooks.
func (tb *Table) Attach(ref game.CardRef, energy ...*game.Card) {
	tb.State = tb.State.WithEnergy(ref, energy...)
}

// Damage sets the damage on a card.
func (tb *Table) Damage(ref game.CardRef, damage int) {
	tb.State = tb.State.WithDamage(ref, damage)
}
