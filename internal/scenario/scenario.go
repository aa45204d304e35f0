// Package scenario loads board positions from YAML so an attack can be
// resolved against a known table.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// Scenario is the top-level YAML structure of a board position.
type Scenario struct {
	Name       string `yaml:"name"`
	Turn       int    `yaml:"turn"`
	TurnPlayer int    `yaml:"turn_player"`
	Players    []Side `yaml:"players"` // P1 first; a missing side is empty
}

// Side is one player's half of the table.
type Side struct {
	Active *Slot    `yaml:"active"`
	Bench  []Slot   `yaml:"bench"`
	Hand   []string `yaml:"hand"`
	Deck   []string `yaml:"deck"` // top of deck first
}

// Slot is one in-play Pokemon.
type Slot struct {
	Card      string   `yaml:"card"`
	Damage    int      `yaml:"damage"`
	Energy    []string `yaml:"energy"`
	Condition string   `yaml:"condition"`
	Poison    int      `yaml:"poison"`
}

// ParseFile reads and parses a scenario file.
func ParseFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse parses a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}
	if sc.Turn == 0 {
		sc.Turn = 1
	}
	if sc.TurnPlayer != 0 && sc.TurnPlayer != 1 {
		return nil, fmt.Errorf("turn_player must be 0 or 1, got %d", sc.TurnPlayer)
	}
	if len(sc.Players) > 2 {
		return nil, fmt.Errorf("scenario has %d players, limit 2", len(sc.Players))
	}
	return &sc, nil
}

// Build lays the scenario out on a fresh table.
func (sc *Scenario) Build(db game.CardDB, format *game.Format, logger log.EventLogger) (*game.State, error) {
	if len(sc.Players) > 2 {
		return nil, fmt.Errorf("scenario has %d players, limit 2", len(sc.Players))
	}
	s := game.NewState(format, logger).WithTurn(sc.Turn, game.PlayerID(sc.TurnPlayer))
	for i, side := range sc.Players {
		p := game.PlayerID(i)
		var err error
		if side.Active != nil {
			if s, err = place(s, db, p, *side.Active, true); err != nil {
				return nil, fmt.Errorf("%s active: %w", p, err)
			}
		}
		if len(side.Bench) > game.BenchSize {
			return nil, fmt.Errorf("%s bench has %d cards, limit %d", p, len(side.Bench), game.BenchSize)
		}
		for j, slot := range side.Bench {
			if s, err = place(s, db, p, slot, false); err != nil {
				return nil, fmt.Errorf("%s bench %d: %w", p, j+1, err)
			}
		}
		hand, err := cards(db, side.Hand)
		if err != nil {
			return nil, fmt.Errorf("%s hand: %w", p, err)
		}
		deck, err := cards(db, side.Deck)
		if err != nil {
			return nil, fmt.Errorf("%s deck: %w", p, err)
		}
		// the engine draws from the end of the slice
		for l, r := 0, len(deck)-1; l < r; l, r = l+1, r-1 {
			deck[l], deck[r] = deck[r], deck[l]
		}
		s = s.WithHand(p, hand).WithDeck(p, deck)
	}
	return s, nil
}

func place(s *game.State, db game.CardDB, p game.PlayerID, slot Slot, active bool) (*game.State, error) {
	card, ok := db[slot.Card]
	if !ok {
		return nil, fmt.Errorf("unknown card %q", slot.Card)
	}
	if card.Kind != game.KindPokemon {
		return nil, fmt.Errorf("%s is not a Pokemon", card.Name)
	}
	cond, err := game.ParseCondition(slot.Condition)
	if err != nil {
		return nil, err
	}
	if slot.Poison < 0 || slot.Poison > 2 {
		return nil, fmt.Errorf("poison must be 0, 1 or 2, got %d", slot.Poison)
	}
	if !active && (cond != game.ConditionNone || slot.Poison > 0) {
		return nil, fmt.Errorf("benched %s cannot have a special condition", card.Name)
	}
	energy, err := cards(db, slot.Energy)
	if err != nil {
		return nil, err
	}
	for _, e := range energy {
		if e.Kind != game.KindEnergy {
			return nil, fmt.Errorf("%s is not an energy card", e.Name)
		}
	}

	var ref game.CardRef
	if active {
		s, ref = s.PutActive(p, card)
	} else {
		s, ref = s.PutBench(p, card)
	}
	s = s.WithEnergy(ref, energy...).WithDamage(ref, slot.Damage).WithCondition(ref, cond, slot.Poison)
	return s, nil
}

func cards(db game.CardDB, names []string) ([]*game.Card, error) {
	out := make([]*game.Card, 0, len(names))
	for _, name := range names {
		card, ok := db[name]
		if !ok {
			return nil, fmt.Errorf("unknown card %q", name)
		}
		out = append(out, card)
	}
	return out, nil
}
