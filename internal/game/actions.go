package game

import (
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// DealDamage applies attack damage from src to dst and returns the new state
// and the damage actually dealt. Attacking-damage hooks on src, then weakness
// and resistance (only against the opponent's active card), then
// defending-damage hooks on dst are folded in before the floor at zero.
func (s *State) DealDamage(src, dst CardRef, amount int) (*State, int) {
	target := s.Card(dst)
	if target == nil || amount <= 0 {
		return s, 0
	}

	dmg := amount
	if attacker := s.Card(src); attacker != nil {
		dmg = s.foldAttackingDamage(attacker, dmg)
		if dst.Player != src.Player && s.IsActive(dst) {
			if w := s.Weakness(dst); w != EnergyNone && w == attacker.Card.Type {
				dmg *= WeaknessMultiplier
			}
			if r := s.Resistance(dst); r != EnergyNone && r == attacker.Card.Type {
				dmg -= ResistanceReduction
			}
		}
	}
	dmg = s.foldDefendingDamage(target, dmg)
	if dmg < 0 {
		dmg = 0
	}

	next := s.Clone()
	next.Card(dst).Damage += dmg
	next.Log(log.NewDamageEvent(0, int(src.Player), target.Card.Name, amount, dmg))
	return next, dmg
}

// PutDamage places damage directly, without weakness, resistance or hooks.
func (s *State) PutDamage(ref CardRef, amount int) (*State, int) {
	target := s.Card(ref)
	if target == nil || amount <= 0 {
		return s, 0
	}
	next := s.Clone()
	next.Card(ref).Damage += amount
	next.Log(log.NewDamageEvent(0, int(ref.Player), target.Card.Name, amount, amount))
	return next, amount
}

// Heal removes up to amount damage from the card.
func (s *State) Heal(ref CardRef, amount int) *State {
	target := s.Card(ref)
	if target == nil || target.Damage == 0 || amount <= 0 {
		return s
	}
	healed := amount
	if healed > target.Damage {
		healed = target.Damage
	}
	next := s.Clone()
	next.Card(ref).Damage -= healed
	next.Log(log.NewHealEvent(0, int(ref.Player), target.Card.Name, healed))
	return next
}

// HealAll removes all damage from the card.
func (s *State) HealAll(ref CardRef) *State {
	target := s.Card(ref)
	if target == nil {
		return s
	}
	return s.Heal(ref, target.Damage)
}

// Inflict sets a rotation special condition. Benched cards are unaffected.
func (s *State) Inflict(ref CardRef, cond SpecialCondition) *State {
	if !s.IsActive(ref) {
		return s
	}
	next := s.Clone()
	card := next.Card(ref)
	card.Condition = cond
	next.Log(log.NewSpecialConditionEvent(0, int(ref.Player), card.Card.Name, cond.String()))
	return next
}

// Poison poisons the card with the given number of counters (2 = severe).
// A stronger poison is never downgraded.
func (s *State) Poison(ref CardRef, counters int) *State {
	if !s.IsActive(ref) {
		return s
	}
	next := s.Clone()
	card := next.Card(ref)
	if counters > card.PoisonCounters {
		card.PoisonCounters = counters
	}
	cond := "Poisoned"
	if card.PoisonCounters > 1 {
		cond = "Severely Poisoned"
	}
	next.Log(log.NewSpecialConditionEvent(0, int(ref.Player), card.Card.Name, cond))
	return next
}

// Switch swaps p's active card with the benched card in. The outgoing card
// loses its special conditions and its while-active effects.
func (s *State) Switch(p PlayerID, in CardRef) *State {
	player := s.players[p]
	idx := -1
	for i, b := range player.Bench {
		if b.ID == in.ID {
			idx = i
			break
		}
	}
	if idx < 0 || in.Player != p {
		return s
	}

	next := s.Clone()
	np := &next.players[p]
	outgoing := np.Active
	incoming := np.Bench[idx]
	np.Active = incoming
	if outgoing == nil {
		np.Bench = append(np.Bench[:idx], np.Bench[idx+1:]...)
		next.Log(log.NewSwitchEvent(0, int(p), "(empty)", incoming.Card.Name))
		return next
	}
	np.Bench[idx] = outgoing
	outgoing.Condition = ConditionNone
	outgoing.PoisonCounters = 0
	out := outgoing.Ref()
	next.dropEffects(func(e Effect) bool {
		return e.Expiration.Kind == ExpireWhileActive && e.Target.IsInPlay(out)
	})
	next.Log(log.NewSwitchEvent(0, int(p), outgoing.Card.Name, incoming.Card.Name))
	return next
}

// KnockOut removes the card from play, discards it with its energy, and
// credits the opponent with a prize.
func (s *State) KnockOut(ref CardRef) *State {
	card := s.Card(ref)
	if card == nil {
		return s
	}
	next := s.Clone()
	next.Log(log.NewKnockOutEvent(0, int(ref.Player), card.Card.Name))
	next.dropEffects(func(e Effect) bool {
		if !e.Target.IsInPlay(ref) {
			return false
		}
		return e.Expiration.Kind == ExpireWhileInPlay || e.Expiration.Kind == ExpireWhileActive
	})

	np := &next.players[ref.Player]
	if np.Active != nil && np.Active.ID == ref.ID {
		np.Active = nil
	} else {
		for i, b := range np.Bench {
			if b.ID == ref.ID {
				np.Bench = append(np.Bench[:i], np.Bench[i+1:]...)
				break
			}
		}
	}
	np.Discard = append(np.Discard, card.Energy...)
	np.Discard = append(np.Discard, card.Card)
	next.players[ref.Player.Opponent()].PrizesTaken++
	return next
}

// Draw moves up to n cards from the top of p's deck to p's hand and returns
// how many were drawn.
func (s *State) Draw(p PlayerID, n int) (*State, int) {
	if n <= 0 || len(s.players[p].Deck) == 0 {
		return s, 0
	}
	next := s.Clone()
	np := &next.players[p]
	drawn := 0
	for drawn < n && len(np.Deck) > 0 {
		top := np.Deck[len(np.Deck)-1]
		np.Deck = np.Deck[:len(np.Deck)-1]
		np.Hand = append(np.Hand, top)
		drawn++
	}
	next.Log(log.NewDrawEvent(0, int(p), drawn))
	return next, drawn
}

// DiscardEnergy discards up to n attached energy cards matching filter
// (EnergyColorless or EnergyNone match any) and grades the result.
func (s *State) DiscardEnergy(ref CardRef, filter EnergyType, n int) (*State, ActionResult) {
	card := s.Card(ref)
	if card == nil {
		return s, GradeAction(0, n)
	}
	next := s.Clone()
	nc := next.Card(ref)
	var kept []*Card
	var discarded []string
	for _, e := range nc.Energy {
		if len(discarded) < n && energyMatches(filter, e.Type) {
			discarded = append(discarded, e.Name)
			next.players[ref.Player].Discard = append(next.players[ref.Player].Discard, e)
			continue
		}
		kept = append(kept, e)
	}
	nc.Energy = kept
	if len(discarded) > 0 {
		next.Log(log.NewDiscardEnergyEvent(0, int(ref.Player), nc.Card.Name, discarded))
	}
	return next, GradeAction(len(discarded), n)
}

func energyMatches(filter, t EnergyType) bool {
	return filter == EnergyColorless || filter == EnergyNone || filter == t
}
