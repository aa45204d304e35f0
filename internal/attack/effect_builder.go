package attack

import (
	"fmt"

	"github.com/peterkuimelis/ptcgx/internal/game"
)

// EffectBuilder stamps out one Effect record created by the current attack.
// Targets are captured from the context when the builder is created, not
// when the effect is applied.
type EffectBuilder struct {
	source    game.EffectSource
	attacking game.CardRef
	defending game.CardRef
	hasAtk    bool
	hasDef    bool
	turnOwner game.PlayerID

	target     *game.EffectTarget
	expiration *game.EffectExpiration
	effect     game.CustomEffect
	params     []game.Param
	system     bool
}

// FromAttack starts an effect whose source is the attacking card.
func FromAttack(ctx *Context) EffectBuilder {
	b := EffectBuilder{turnOwner: ctx.actor()}
	if ref, ok := ctx.attackerRef(); ok {
		b.attacking, b.hasAtk = ref, true
		b.source = game.SourceAttack(ref)
	} else {
		b.source = game.SourcePlayer(ctx.actor())
	}
	if ref, ok := ctx.defenderRef(); ok {
		b.defending, b.hasDef = ref, true
	}
	return b
}

// OnAttacking targets the attacking card.
func (b EffectBuilder) OnAttacking() EffectBuilder {
	if !b.hasAtk {
		panic("effect builder: no attacking card to target")
	}
	t := game.TargetInPlay(b.attacking)
	b.target = &t
	return b
}

// OnDefending targets the defending card.
func (b EffectBuilder) OnDefending() EffectBuilder {
	if !b.hasDef {
		panic("effect builder: no defending card to target")
	}
	t := game.TargetInPlay(b.defending)
	b.target = &t
	return b
}

// OnPlayer targets the acting player.
func (b EffectBuilder) OnPlayer() EffectBuilder {
	t := game.TargetPlayer(b.turnOwner)
	b.target = &t
	return b
}

// OnOpponent targets the acting player's opponent.
func (b EffectBuilder) OnOpponent() EffectBuilder {
	t := game.TargetPlayer(b.turnOwner.Opponent())
	b.target = &t
	return b
}

func (b EffectBuilder) WhileActive() EffectBuilder {
	e := game.WhileActive()
	b.expiration = &e
	return b
}

func (b EffectBuilder) WhileInPlay() EffectBuilder {
	e := game.WhileInPlay()
	b.expiration = &e
	return b
}

// UntilOpponentsEndOfTurn expires at the end of the opponent's next turn.
func (b EffectBuilder) UntilOpponentsEndOfTurn() EffectBuilder {
	e := game.EndOfTurn(b.turnOwner.Opponent(), 0)
	b.expiration = &e
	return b
}

// Custom binds the consequence to the given effect kind.
func (b EffectBuilder) Custom(effect game.CustomEffect) EffectBuilder {
	b.effect = effect
	return b
}

func (b EffectBuilder) WithParams(params ...game.Param) EffectBuilder {
	b.params = append(append([]game.Param(nil), b.params...), params...)
	return b
}

// System marks the effect as housekeeping that is not narrated.
func (b EffectBuilder) System() EffectBuilder {
	b.system = true
	return b
}

// Effect returns the record. Panics if the target, expiration or consequence
// was never bound.
func (b EffectBuilder) Effect() game.Effect {
	var missing string
	switch {
	case b.target == nil:
		missing = "target"
	case b.expiration == nil:
		missing = "expiration"
	case b.effect == nil:
		missing = "custom effect"
	}
	if missing != "" {
		panic(fmt.Sprintf("effect builder: %s not set", missing))
	}
	return game.Effect{
		Consequence: b.effect.ID(),
		Source:      b.source,
		Target:      *b.target,
		Expiration:  *b.expiration,
		Parameters:  append([]game.Param(nil), b.params...),
		System:      b.system,
	}
}

// Apply merges the effect into the context's state.
func (b EffectBuilder) Apply(ctx *Context) {
	ctx.engine = ctx.engine.AddEffect(b.Effect())
}
