package attack

import (
	"fmt"

	"github.com/peterkuimelis/ptcgx/internal/game"
)

// damageStep computes an amount from the context and deals it to the
// defending card.
type damageStep struct {
	name   string
	amount func(ctx *Context) int
}

func (s damageStep) String() string { return s.name }

func (s damageStep) apply(ctx *Context) {
	ctx.dealToDefending(s.amount(ctx))
}

func (b *Builder) damage(name string, amount func(ctx *Context) int) *Builder {
	return b.then(damageStep{name: name, amount: amount})
}

func counters(card *game.InPlay) int {
	if card == nil {
		return 0
	}
	return card.DamageCounters()
}

// Damage deals a fixed amount to the defending card.
func (b *Builder) Damage(amount int) *Builder {
	return b.damage(fmt.Sprintf("damage(%d)", amount), func(*Context) int {
		return amount
	})
}

// DamagePerHeads deals perHeads for every heads in the most recent flip batch.
func (b *Builder) DamagePerHeads(perHeads int) *Builder {
	return b.damage(fmt.Sprintf("damage_per_heads(%d)", perHeads), func(ctx *Context) int {
		return perHeads * ctx.Heads()
	})
}

// DamagePlusPerEnergyCardOnDefending deals base plus per for each energy card
// attached to the defending card.
func (b *Builder) DamagePlusPerEnergyCardOnDefending(base, per int) *Builder {
	return b.damage(fmt.Sprintf("damage_plus_per_energy_card_on_defending(%d,%d)", base, per), func(ctx *Context) int {
		def := ctx.engine.Defending()
		if def == nil {
			return base
		}
		return base + per*len(def.Energy)
	})
}

// DamagePlusPerDamageCounterOnDefending deals base plus per for each damage
// counter on the defending card.
func (b *Builder) DamagePlusPerDamageCounterOnDefending(base, per int) *Builder {
	return b.damage(fmt.Sprintf("damage_plus_per_damage_counter_on_defending(%d,%d)", base, per), func(ctx *Context) int {
		return base + per*counters(ctx.engine.Defending())
	})
}

// DamagePerDamageCounterOnItself deals per for each damage counter on the
// attacking card.
func (b *Builder) DamagePerDamageCounterOnItself(per int) *Builder {
	return b.damage(fmt.Sprintf("damage_per_damage_counter_on_itself(%d)", per), func(ctx *Context) int {
		return per * counters(ctx.engine.Attacking())
	})
}

// DamageMinusPerDamageCounterOnItself deals base minus per for each damage
// counter on the attacking card, never less than zero.
func (b *Builder) DamageMinusPerDamageCounterOnItself(base, per int) *Builder {
	return b.damage(fmt.Sprintf("damage_minus_per_damage_counter_on_itself(%d,%d)", base, per), func(ctx *Context) int {
		amount := base - per*counters(ctx.engine.Attacking())
		if amount < 0 {
			return 0
		}
		return amount
	})
}

// DamageHalfDefendingRemainingHP deals half the defending card's remaining
// HP, rounded up.
func (b *Builder) DamageHalfDefendingRemainingHP() *Builder {
	return b.damage("damage_half_defending_remaining_hp", func(ctx *Context) int {
		def := ctx.engine.Defending()
		if def == nil {
			return 0
		}
		return (def.RemainingHP() + 1) / 2
	})
}

// DamagePlusPerExtraEnergyOnAttacking deals base plus per for each extra unit
// of energyType, up to limit, the attacking card could pay on top of the
// recorded attack cost.
func (b *Builder) DamagePlusPerExtraEnergyOnAttacking(base, per int, energyType game.EnergyType, limit int) *Builder {
	name := fmt.Sprintf("damage_plus_per_extra_energy_on_attacking(%d,%d,%s,%d)", base, per, energyType, limit)
	return b.damage(name, func(ctx *Context) int {
		ref, ok := ctx.attackerRef()
		if !ok {
			return base
		}
		extra := 0
		for extra < limit && ctx.engine.CostSatisfied(ref, ctx.cost.With(energyType, extra+1)) {
			extra++
		}
		return base + per*extra
	})
}

// --- Damage without the defending card's modifiers ---

type selfDamageStep struct{ amount int }

func (s selfDamageStep) String() string { return fmt.Sprintf("damage_self(%d)", s.amount) }

func (s selfDamageStep) apply(ctx *Context) {
	ref, ok := ctx.attackerRef()
	if !ok {
		return
	}
	ctx.engine, _ = ctx.engine.PutDamage(ref, s.amount)
}

// DamageSelf does damage to the attacking card. It is not counted as damage done.
func (b *Builder) DamageSelf(amount int) *Builder {
	return b.then(selfDamageStep{amount: amount})
}

type putCountersStep struct{ n int }

func (s putCountersStep) String() string { return fmt.Sprintf("put_damage_counters_on_defending(%d)", s.n) }

func (s putCountersStep) apply(ctx *Context) {
	ref, ok := ctx.defenderRef()
	if !ok {
		return
	}
	ctx.engine, _ = ctx.engine.PutDamage(ref, s.n*game.DamageCounter)
}

// PutDamageCountersOnDefending places n damage counters on the defending card,
// ignoring weakness, resistance and damage hooks.
func (b *Builder) PutDamageCountersOnDefending(n int) *Builder {
	return b.then(putCountersStep{n: n})
}
