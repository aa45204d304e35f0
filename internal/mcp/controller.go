package mcp

import (
	"fmt"
	"strings"

	"github.com/peterkuimelis/ptcgx/internal/game"
)

// ToolDecider implements game.DecisionMaker from the arguments of one tool
// call: queued coin results and named choices are used first, in order, and
// anything left over falls back to the session's random decision maker.
type ToolDecider struct {
	flips    []bool
	choices  []string
	fallback game.DecisionMaker
}

// NewToolDecider creates a decider over queued flips and choices.
func NewToolDecider(flips []bool, choices []string, fallback game.DecisionMaker) *ToolDecider {
	return &ToolDecider{flips: flips, choices: choices, fallback: fallback}
}

// ParseFlips parses a space-separated list of H/T (or heads/tails).
func ParseFlips(s string) ([]bool, error) {
	var flips []bool
	for _, f := range strings.Fields(s) {
		switch strings.ToLower(f) {
		case "h", "heads":
			flips = append(flips, true)
		case "t", "tails":
			flips = append(flips, false)
		default:
			return nil, fmt.Errorf("invalid coin %q: use H or T", f)
		}
	}
	return flips, nil
}

// ParseChoices splits a comma-separated choice list.
func ParseChoices(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// FlipCoins implements game.DecisionMaker.
func (d *ToolDecider) FlipCoins(n int) game.Flips {
	flips := make(game.Flips, 0, n)
	for len(flips) < n && len(d.flips) > 0 {
		flips = append(flips, d.flips[0])
		d.flips = d.flips[1:]
	}
	if len(flips) < n {
		flips = append(flips, d.fallback.FlipCoins(n-len(flips))...)
	}
	return flips
}

func (d *ToolDecider) nextChoice() (string, bool) {
	if len(d.choices) == 0 {
		return "", false
	}
	c := d.choices[0]
	d.choices = d.choices[1:]
	return c, true
}

// PickEnergyType implements game.DecisionMaker.
func (d *ToolDecider) PickEnergyType(s *game.State, player game.PlayerID, candidates []game.EnergyType) game.EnergyType {
	if c, ok := d.nextChoice(); ok {
		if t, err := game.ParseEnergyType(c); err == nil {
			for _, cand := range candidates {
				if cand == t {
					return t
				}
			}
		}
	}
	return d.fallback.PickEnergyType(s, player, candidates)
}

// PickAttack implements game.DecisionMaker.
func (d *ToolDecider) PickAttack(s *game.State, player game.PlayerID, candidates []string) string {
	if c, ok := d.nextChoice(); ok {
		for _, cand := range candidates {
			if strings.EqualFold(cand, c) {
				return cand
			}
		}
	}
	return d.fallback.PickAttack(s, player, candidates)
}

// PickCard implements game.DecisionMaker. Choices match a card by name or ref.
func (d *ToolDecider) PickCard(s *game.State, player game.PlayerID, prompt string, candidates []game.CardRef) game.CardRef {
	if c, ok := d.nextChoice(); ok {
		for _, ref := range candidates {
			card := s.Card(ref)
			if card == nil {
				continue
			}
			if strings.EqualFold(card.Card.Name, c) || ref.String() == c {
				return ref
			}
		}
	}
	return d.fallback.PickCard(s, player, prompt, candidates)
}
