package attack

import (
	"fmt"

	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

type installStep struct {
	name    string
	install func(ctx *Context)
}

func (s installStep) String() string { return s.name }

func (s installStep) apply(ctx *Context) {
	s.install(ctx)
}

func (b *Builder) install(name string, install func(ctx *Context)) *Builder {
	return b.then(installStep{name: name, install: install})
}

// untilOpponentsTurnEnds installs effect on the attacking or defending card
// for the opponent's next turn.
func (b *Builder) untilOpponentsTurnEnds(name string, attacking bool, effect game.CustomEffect, params ...game.Param) *Builder {
	return b.install(name, func(ctx *Context) {
		eb := FromAttack(ctx)
		if attacking {
			if _, ok := ctx.attackerRef(); !ok {
				return
			}
			eb = eb.OnAttacking()
		} else {
			if _, ok := ctx.defenderRef(); !ok {
				return
			}
			eb = eb.OnDefending()
		}
		eb.UntilOpponentsEndOfTurn().Custom(effect).WithParams(params...).Apply(ctx)
	})
}

func exceptName(prefix string, except []game.EnergyType) string {
	return fmt.Sprintf("%s(%v)", prefix, except)
}

func (c *Context) pickEnergyType(candidates []game.EnergyType) game.EnergyType {
	picked := c.dm.PickEnergyType(c.engine, c.actor(), candidates)
	c.log(log.NewChoiceEvent(0, int(c.actor()), "Choose an energy type", picked.String()))
	return picked
}

// ChangeAttackingResistanceExcept changes the attacking card's resistance to
// a type the acting player picks, other than the excluded ones.
func (b *Builder) ChangeAttackingResistanceExcept(except ...game.EnergyType) *Builder {
	return b.install(exceptName("change_attacking_resistance_except", except), func(ctx *Context) {
		if _, ok := ctx.attackerRef(); !ok {
			return
		}
		candidates := ctx.engine.Format().EnergyTypesExcept(except...)
		if len(candidates) == 0 {
			return
		}
		picked := ctx.pickEnergyType(candidates)
		FromAttack(ctx).OnAttacking().WhileInPlay().
			Custom(ChangeResistance{}).WithParams(game.EnergyParam(picked)).Apply(ctx)
	})
}

// ChangeDefendingWeaknessExcept changes the defending card's weakness, if it
// has one, to a type the acting player picks other than the excluded ones.
func (b *Builder) ChangeDefendingWeaknessExcept(except ...game.EnergyType) *Builder {
	return b.install(exceptName("change_defending_weakness_except", except), func(ctx *Context) {
		ref, ok := ctx.defenderRef()
		if !ok || ctx.engine.Weakness(ref) == game.EnergyNone {
			return
		}
		candidates := ctx.engine.Format().EnergyTypesExcept(except...)
		if len(candidates) == 0 {
			return
		}
		picked := ctx.pickEnergyType(candidates)
		FromAttack(ctx).OnDefending().WhileInPlay().
			Custom(ChangeWeakness{}).WithParams(game.EnergyParam(picked)).Apply(ctx)
	})
}

// DisableDefendingAttack lets the acting player pick one of the defending
// card's attacks; it cannot be used during the opponent's next turn.
func (b *Builder) DisableDefendingAttack() *Builder {
	return b.install("disable_defending_attack", func(ctx *Context) {
		ref, ok := ctx.defenderRef()
		if !ok {
			return
		}
		attacks := ctx.engine.Attacks(ref)
		if len(attacks) == 0 {
			return
		}
		names := make([]string, len(attacks))
		for i, a := range attacks {
			names[i] = a.Name
		}
		picked := ctx.dm.PickAttack(ctx.engine, ctx.actor(), names)
		ctx.log(log.NewChoiceEvent(0, int(ctx.actor()), "Choose an attack to disable", picked))
		FromAttack(ctx).OnDefending().UntilOpponentsEndOfTurn().
			Custom(DisableAttack{}).WithParams(game.AttackParam(picked)).Apply(ctx)
	})
}

// PreventDamageDuringOpponentsNextTurn prevents all damage done to the
// attacking card during the opponent's next turn.
func (b *Builder) PreventDamageDuringOpponentsNextTurn() *Builder {
	return b.untilOpponentsTurnEnds("prevent_damage_during_opponents_next_turn", true, PreventDamage{})
}

// PreventDamageAtMostDuringOpponentsNextTurn prevents damage of n or less
// done to the attacking card during the opponent's next turn.
func (b *Builder) PreventDamageAtMostDuringOpponentsNextTurn(n int) *Builder {
	return b.untilOpponentsTurnEnds(fmt.Sprintf("prevent_damage_at_most_during_opponents_next_turn(%d)", n),
		true, PreventDamageAtMost{}, game.NumberParam(n))
}

// ReduceDefendingAttackDamage makes the defending card's attacks do n less
// damage during the opponent's next turn.
func (b *Builder) ReduceDefendingAttackDamage(n int) *Builder {
	return b.untilOpponentsTurnEnds(fmt.Sprintf("reduce_defending_attack_damage(%d)", n),
		false, ReduceAttackDamage{}, game.NumberParam(n))
}

// DestinyBond knocks out the opponent's attacker if the attacking card is
// knocked out by an attack during the opponent's next turn.
func (b *Builder) DestinyBond() *Builder {
	return b.untilOpponentsTurnEnds("destiny_bond", true, DestinyBond{})
}

// FlipToAttackDefending makes the defending card flip a coin before it
// attacks during the opponent's next turn; on tails the attack does nothing.
func (b *Builder) FlipToAttackDefending() *Builder {
	return b.untilOpponentsTurnEnds("flip_to_attack_defending", false, FlipToAttack{})
}

// EndureDuringOpponentsNextTurn flips a coin when the attacking card would be
// knocked out during the opponent's next turn; on heads it stays at 10 HP.
func (b *Builder) EndureDuringOpponentsNextTurn() *Builder {
	return b.untilOpponentsTurnEnds("endure_during_opponents_next_turn", true, Endure{})
}

// DelayedDamageOnDefending puts n damage counters on the defending card at
// the end of the opponent's next turn.
func (b *Builder) DelayedDamageOnDefending(n int) *Builder {
	return b.untilOpponentsTurnEnds(fmt.Sprintf("delayed_damage_on_defending(%d)", n),
		false, DelayedDamage{}, game.NumberParam(n))
}

// BlockOpponentsTrainers stops the opponent playing Trainer cards during
// their next turn.
func (b *Builder) BlockOpponentsTrainers() *Builder {
	return b.install("block_opponents_trainers", func(ctx *Context) {
		FromAttack(ctx).OnOpponent().UntilOpponentsEndOfTurn().Custom(BlockTrainers{}).Apply(ctx)
	})
}

// BlockOpponentsEnergyAttachment stops the opponent attaching energy cards
// during their next turn.
func (b *Builder) BlockOpponentsEnergyAttachment() *Builder {
	return b.install("block_opponents_energy_attachment", func(ctx *Context) {
		FromAttack(ctx).OnOpponent().UntilOpponentsEndOfTurn().Custom(BlockEnergyAttachment{}).Apply(ctx)
	})
}

// OnceWhileInPlay removes the named attack from the attacking card for as
// long as it stays in play.
func (b *Builder) OnceWhileInPlay(name string) *Builder {
	return b.install("once_while_in_play("+name+")", func(ctx *Context) {
		if _, ok := ctx.attackerRef(); !ok {
			return
		}
		FromAttack(ctx).OnAttacking().WhileInPlay().System().
			Custom(UsedOnce{}).WithParams(game.AttackParam(name)).Apply(ctx)
	})
}
