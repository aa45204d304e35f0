package game

import (
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// fold runs hook H of every live effect whose target matches, in effect-list
// order, threading each override into the next call.
func fold[H any, V any](s *State, matches func(Effect) bool, call func(H, Effect, V) (V, bool), current V) V {
	for _, e := range s.effects {
		if !matches(e) {
			continue
		}
		h, ok := s.format.CustomEffect(e.Consequence).(H)
		if !ok {
			continue
		}
		if v, ok := call(h, e, current); ok {
			current = v
		}
	}
	return current
}

func targets(ref CardRef) func(Effect) bool {
	return func(e Effect) bool { return e.Target.IsInPlay(ref) }
}

func (s *State) foldDefendingDamage(card *InPlay, current int) int {
	return fold(s, targets(card.Ref()), func(h DefendingDamageHook, e Effect, v int) (int, bool) {
		return h.DefendingDamage(e, card, s, v)
	}, current)
}

func (s *State) foldAttackingDamage(card *InPlay, current int) int {
	return fold(s, targets(card.Ref()), func(h AttackingDamageHook, e Effect, v int) (int, bool) {
		return h.AttackingDamage(e, card, s, v)
	}, current)
}

// Weakness returns the card's weakness after effect overrides.
func (s *State) Weakness(ref CardRef) EnergyType {
	card := s.Card(ref)
	if card == nil {
		return EnergyNone
	}
	return fold(s, targets(ref), func(h WeaknessHook, e Effect, v EnergyType) (EnergyType, bool) {
		return h.Weakness(e, card, s, v)
	}, card.Card.Weakness)
}

// Resistance returns the card's resistance after effect overrides.
func (s *State) Resistance(ref CardRef) EnergyType {
	card := s.Card(ref)
	if card == nil {
		return EnergyNone
	}
	return fold(s, targets(ref), func(h ResistanceHook, e Effect, v EnergyType) (EnergyType, bool) {
		return h.Resistance(e, card, s, v)
	}, card.Card.Resistance)
}

// Attacks returns the attacks the card may currently use.
func (s *State) Attacks(ref CardRef) []Attack {
	card := s.Card(ref)
	if card == nil {
		return nil
	}
	printed := append([]Attack(nil), card.Card.Attacks...)
	return fold(s, targets(ref), func(h AttacksHook, e Effect, v []Attack) ([]Attack, bool) {
		return h.Attacks(e, card, s, v)
	}, printed)
}

// Attack looks an attack up among the card's currently usable attacks.
func (s *State) Attack(ref CardRef, name string) (Attack, bool) {
	for _, a := range s.Attacks(ref) {
		if a.Name == name {
			return a, true
		}
	}
	return Attack{}, false
}

// Triggered pairs a live effect with the pipeline its hook produced.
type Triggered struct {
	Effect   Effect
	Pipeline Pipeline
}

// Trigger collects the pipelines hook H produces for matching effects, in
// effect-list order. Effects whose hook abstains are skipped.
func Trigger[H any](s *State, matches func(Effect) bool, call func(H, Effect) Pipeline) []Triggered {
	var out []Triggered
	for _, e := range s.effects {
		if !matches(e) {
			continue
		}
		h, ok := s.format.CustomEffect(e.Consequence).(H)
		if !ok {
			continue
		}
		if p := call(h, e); p != nil {
			out = append(out, Triggered{Effect: e, Pipeline: p})
		}
	}
	return out
}

// TargetsCard matches effects on the given card.
func TargetsCard(ref CardRef) func(Effect) bool {
	return targets(ref)
}

// TargetsPlayer matches effects on the given player.
func TargetsPlayer(p PlayerID) func(Effect) bool {
	return func(e Effect) bool { return e.Target.IsPlayer(p) }
}

// RunTriggered runs each pipeline in order against the evolving state and
// reports whether any of them came back prevented or failed.
func (s *State) RunTriggered(dm DecisionMaker, triggered []Triggered) (*State, bool) {
	cur := s
	stopped := false
	for _, t := range triggered {
		out := t.Pipeline.Run(cur, dm)
		cur = out.Engine()
		if out.Prevented() || out.Failed() {
			stopped = true
		}
	}
	return cur, stopped
}

// ResolveKnockouts knocks out every in-play card whose damage reaches its HP.
// Would-be-knocked-out pipelines run first; if one comes back prevented the
// card survives with 10 HP left. Knocked-out pipelines run after removal.
func (s *State) ResolveKnockouts(dm DecisionMaker) *State {
	cur := s
	for {
		down := cur.knockedOut()
		if len(down) == 0 {
			return cur
		}
		for _, ref := range down {
			card := cur.Card(ref)
			if card == nil || card.Damage < card.Card.HP {
				continue
			}

			saving := Trigger(cur, targets(ref), func(h OnWouldBeKnockedOutHook, e Effect) Pipeline {
				return h.OnWouldBeKnockedOut(e, cur)
			})
			var saved bool
			cur, saved = cur.RunTriggered(dm, saving)
			if saved {
				if c := cur.Card(ref); c != nil {
					cur = cur.WithDamage(ref, c.Card.HP-DamageCounter)
				}
				continue
			}

			revenge := Trigger(cur, targets(ref), func(h OnKnockedOutHook, e Effect) Pipeline {
				return h.OnKnockedOut(e, cur)
			})
			cur = cur.KnockOut(ref)
			cur, _ = cur.RunTriggered(dm, revenge)
		}
	}
}

func (s *State) knockedOut() []CardRef {
	var down []CardRef
	for p := PlayerID(0); p < 2; p++ {
		for _, ip := range s.players[p].InPlay() {
			if ip.Damage >= ip.Card.HP {
				down = append(down, ip.Ref())
			}
		}
	}
	return down
}

// CheckTrainer runs p's trainer hooks and reports whether p may play a trainer.
func (s *State) CheckTrainer(dm DecisionMaker, p PlayerID) (*State, bool) {
	triggered := Trigger(s, TargetsPlayer(p), func(h OnTrainerHook, e Effect) Pipeline {
		return h.OnTrainer(e, s)
	})
	next, stopped := s.RunTriggered(dm, triggered)
	if stopped {
		next.Log(log.NewBlockedEvent(0, int(p), "play Trainer cards"))
	}
	return next, !stopped
}

// AttachEnergy attaches an energy card from p's turn to ref, unless an
// energy-attachment hook blocks it.
func (s *State) AttachEnergy(dm DecisionMaker, ref CardRef, energy *Card) (*State, bool) {
	triggered := Trigger(s, TargetsPlayer(ref.Player), func(h OnEnergyAttachmentHook, e Effect) Pipeline {
		return h.OnEnergyAttachment(e, s)
	})
	next, stopped := s.RunTriggered(dm, triggered)
	if stopped {
		next.Log(log.NewBlockedEvent(0, int(ref.Player), "attach Energy"))
		return next, false
	}
	return next.WithEnergy(ref, energy), true
}
