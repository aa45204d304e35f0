package attack

import (
	"fmt"

	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// ConfusionDamage is what a Confused attacker does to itself on tails.
const ConfusionDamage = 20

// For returns the pipeline an attack resolves with: its own pipeline, its
// compiled script, or paying the cost and doing its printed damage.
func For(atk game.Attack) (*Builder, error) {
	switch {
	case atk.Pipeline != nil:
		b, ok := atk.Pipeline.(*Builder)
		if !ok {
			return nil, fmt.Errorf("attack %q: unsupported pipeline %T", atk.Name, atk.Pipeline)
		}
		return b, nil
	case atk.Script.Kind != 0:
		return Compile(&atk.Script, atk)
	}
	b := New().AttackCost(atk.Cost)
	if atk.Damage > 0 {
		b = b.Damage(atk.Damage)
	}
	return b, nil
}

// Execute resolves the turn player's attack called name. The returned
// context's Engine is the state after the attack, knockouts included, or the
// starting state if the attack failed.
//
// Before the attack's own pipeline runs, attempt-to-attack hooks on the
// attacker, the confusion flip, and on-affected hooks on the defender may each
// stop it; the context is then marked prevented.
func Execute(s *game.State, dm game.DecisionMaker, name string) (*Context, error) {
	attacker := s.Attacking()
	if attacker == nil {
		return nil, fmt.Errorf("%s has no active Pokemon", s.TurnPlayer())
	}
	ref := attacker.Ref()
	atk, ok := s.Attack(ref, name)
	if !ok {
		return nil, fmt.Errorf("%s cannot use %q", attacker.Card.Name, name)
	}
	pipeline, err := For(atk)
	if err != nil {
		return nil, err
	}

	ctx := newContext(s.BeginAttack(), dm)
	ctx.original = s
	ctx.log(log.NewAttackDeclareEvent(0, int(ref.Player), attacker.Card.Name, atk.Name))

	ok = ctx.attempt(ref)
	var coin game.Flips
	if ok {
		coin, ok = ctx.confusion(ref)
	}
	if ok && ctx.affected() {
		pipeline.run(ctx)
	}
	if coin != nil {
		ctx.flips = append([]game.Flips{coin}, ctx.flips...)
	}

	if ctx.prevented {
		ctx.log(log.NewAttackPreventedEvent(0, int(ref.Player), atk.Name))
	}
	if !ctx.failed {
		ctx.engine = ctx.engine.ResolveKnockouts(dm)
	}
	ctx.engine = ctx.engine.EndAttack()
	return ctx, nil
}

// attempt runs the attacker's attempt-to-attack hooks and reports whether the
// attack may go on.
func (c *Context) attempt(ref game.CardRef) bool {
	cur := c.engine
	triggered := game.Trigger(cur, game.TargetsCard(ref), func(h game.OnAttemptToAttackHook, e game.Effect) game.Pipeline {
		return h.OnAttemptToAttack(e, cur)
	})
	var stopped bool
	c.engine, stopped = cur.RunTriggered(c.dm, triggered)
	if stopped {
		c.prevented = true
	}
	return !stopped
}

// confusion flips for a Confused attacker; on tails it damages itself and the
// attack does nothing. The flip is returned rather than pushed so the
// attack's own coin branches never read it.
func (c *Context) confusion(ref game.CardRef) (game.Flips, bool) {
	card := c.engine.Card(ref)
	if card == nil || card.Condition != game.ConditionConfused {
		return nil, true
	}
	flips := c.dm.FlipCoins(1)
	c.log(log.NewCoinFlipEvent(0, int(ref.Player), flips))
	if flips.Heads() == 1 {
		return flips, true
	}
	c.engine, _ = c.engine.PutDamage(ref, ConfusionDamage)
	c.prevented = true
	return flips, false
}

// affected runs the defender's on-affected hooks and reports whether the
// attack's effects reach it.
func (c *Context) affected() bool {
	def, ok := c.defenderRef()
	if !ok {
		return true
	}
	cur := c.engine
	triggered := game.Trigger(cur, game.TargetsCard(def), func(h game.OnAffectedHook, e game.Effect) game.Pipeline {
		return h.OnAffected(e, cur)
	})
	var stopped bool
	c.engine, stopped = cur.RunTriggered(c.dm, triggered)
	if stopped {
		c.prevented = true
	}
	return !stopped
}
