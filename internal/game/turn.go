package game

import (
	"github.com/peterkuimelis/ptcgx/internal/log"
)

const PoisonDamage = 10

// EndTurn closes the turn player's turn: turn-end hooks, the checkup, knockouts,
// effect expiration, then hands the turn to the opponent.
func (s *State) EndTurn(dm DecisionMaker) *State {
	cur := s.EndAttack()

	turnEnd := Trigger(cur, func(Effect) bool { return true }, func(h OnTurnEndHook, e Effect) Pipeline {
		return h.OnTurnEnd(e, cur)
	})
	cur, _ = cur.RunTriggered(dm, turnEnd)

	cur = cur.checkup(dm)
	cur = cur.ResolveKnockouts(dm)

	next := cur.Clone()
	ending := next.turnPlayer
	next.dropEffects(func(e Effect) bool {
		return e.Expiration.Kind == ExpireEndOfTurn && e.Expiration.Player == ending && e.Expiration.Grace == 0
	})
	for i := range next.effects {
		exp := &next.effects[i].Expiration
		if exp.Kind == ExpireEndOfTurn && exp.Player == ending {
			exp.Grace--
		}
	}
	next.turn++
	next.turnPlayer = ending.Opponent()
	next.Log(log.NewTurnEvent(0, int(next.turnPlayer)))
	return next
}

// checkup applies poison, wakes sleepers on heads, and clears paralysis at
// the end of its owner's turn.
func (s *State) checkup(dm DecisionMaker) *State {
	cur := s
	for p := PlayerID(0); p < 2; p++ {
		active := cur.Active(p)
		if active == nil {
			continue
		}
		ref := active.Ref()

		if active.PoisonCounters > 0 {
			cur.Log(log.NewCheckupEvent(0, int(p), active.Card.Name, "takes poison damage"))
			cur, _ = cur.PutDamage(ref, PoisonDamage*active.PoisonCounters)
		}

		switch active.Condition {
		case ConditionAsleep:
			flips := dm.FlipCoins(1)
			cur.Log(log.NewCoinFlipEvent(0, int(p), flips))
			if flips.Heads() == 1 {
				cur = cur.clearCondition(ref)
				cur.Log(log.NewCheckupEvent(0, int(p), active.Card.Name, "wakes up"))
			}
		case ConditionParalyzed:
			if p == cur.turnPlayer {
				cur = cur.clearCondition(ref)
				cur.Log(log.NewCheckupEvent(0, int(p), active.Card.Name, "is no longer Paralyzed"))
			}
		}
	}
	return cur
}

func (s *State) clearCondition(ref CardRef) *State {
	next := s.Clone()
	if card := next.Card(ref); card != nil {
		card.Condition = ConditionNone
	}
	return next
}
