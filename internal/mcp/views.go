package mcp

import (
	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// EventView is a narration event as returned to the client.
type EventView struct {
	Turn    int    `json:"turn"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// CardView describes one in-play Pokemon.
type CardView struct {
	Ref       string   `json:"ref"`
	Name      string   `json:"name"`
	HP        int      `json:"hp"`
	Damage    int      `json:"damage"`
	Energy    []string `json:"energy,omitempty"`
	Condition string   `json:"condition,omitempty"`
	Poison    int      `json:"poison,omitempty"`
	Weakness  string   `json:"weakness,omitempty"`
	Resist    string   `json:"resistance,omitempty"`
	Attacks   []string `json:"attacks,omitempty"` // currently usable
}

// PlayerView shows one side of the board.
type PlayerView struct {
	Active       *CardView  `json:"active,omitempty"`
	Bench        []CardView `json:"bench"`
	HandCount    int        `json:"hand_count"`
	DeckCount    int        `json:"deck_count"`
	DiscardCount int        `json:"discard_count"`
	PrizesTaken  int        `json:"prizes_taken"`
}

// EffectView is one live effect.
type EffectView struct {
	Effect  string `json:"effect"`
	Target  string `json:"target"`
	Expires string `json:"expires"`
}

// StateView is the whole table.
type StateView struct {
	Turn       int           `json:"turn"`
	TurnPlayer int           `json:"turn_player"`
	Players    [2]PlayerView `json:"players"`
	Effects    []EffectView  `json:"effects,omitempty"`
}

// BuildStateView renders a state for the client.
func BuildStateView(s *game.State) *StateView {
	sv := &StateView{
		Turn:       s.Turn(),
		TurnPlayer: int(s.TurnPlayer()),
	}
	for i := range sv.Players {
		p := game.PlayerID(i)
		pl := s.Player(p)
		pv := PlayerView{
			Bench:        []CardView{},
			HandCount:    len(pl.Hand),
			DeckCount:    len(pl.Deck),
			DiscardCount: len(pl.Discard),
			PrizesTaken:  pl.PrizesTaken,
		}
		if pl.Active != nil {
			cv := buildCardView(s, pl.Active)
			pv.Active = &cv
		}
		for _, b := range pl.Bench {
			pv.Bench = append(pv.Bench, buildCardView(s, b))
		}
		sv.Players[i] = pv
	}
	for _, e := range s.Effects() {
		if e.System {
			continue
		}
		target := e.Target.String()
		if ref, ok := e.Target.Ref(); ok {
			if card := s.Card(ref); card != nil {
				target = card.Card.Name + " (" + ref.String() + ")"
			}
		}
		sv.Effects = append(sv.Effects, EffectView{
			Effect:  e.Consequence,
			Target:  target,
			Expires: e.Expiration.String(),
		})
	}
	return sv
}

func buildCardView(s *game.State, ip *game.InPlay) CardView {
	ref := ip.Ref()
	cv := CardView{
		Ref:    ref.String(),
		Name:   ip.Card.Name,
		HP:     ip.Card.HP,
		Damage: ip.Damage,
		Poison: ip.PoisonCounters,
	}
	if ip.Condition != game.ConditionNone {
		cv.Condition = ip.Condition.String()
	}
	if w := s.Weakness(ref); w != game.EnergyNone {
		cv.Weakness = w.String()
	}
	if r := s.Resistance(ref); r != game.EnergyNone {
		cv.Resist = r.String()
	}
	for _, e := range ip.Energy {
		cv.Energy = append(cv.Energy, e.Name)
	}
	for _, a := range s.Attacks(ref) {
		cv.Attacks = append(cv.Attacks, a.Name)
	}
	return cv
}

func buildEventViews(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Turn:    e.Turn,
			Player:  e.Player,
			Type:    e.Type.String(),
			Card:    e.Card,
			Details: e.Details,
		})
	}
	return views
}
