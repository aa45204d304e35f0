package attack

import (
	"fmt"

	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// engineStep delegates to one engine primitive against the attacking or
// defending card. It does nothing when that card is missing.
type engineStep struct {
	name      string
	attacking bool
	do        func(ctx *Context, ref game.CardRef)
}

func (s engineStep) String() string { return s.name }

func (s engineStep) apply(ctx *Context) {
	var (
		ref game.CardRef
		ok  bool
	)
	if s.attacking {
		ref, ok = ctx.attackerRef()
	} else {
		ref, ok = ctx.defenderRef()
	}
	if ok {
		s.do(ctx, ref)
	}
}

func (b *Builder) onDefending(name string, do func(ctx *Context, ref game.CardRef)) *Builder {
	return b.then(engineStep{name: name, do: do})
}

func (b *Builder) onAttacking(name string, do func(ctx *Context, ref game.CardRef)) *Builder {
	return b.then(engineStep{name: name, attacking: true, do: do})
}

func inflict(cond game.SpecialCondition) func(ctx *Context, ref game.CardRef) {
	return func(ctx *Context, ref game.CardRef) {
		ctx.engine = ctx.engine.Inflict(ref, cond)
	}
}

// --- Special conditions ---

func (b *Builder) Asleep() *Builder   { return b.onDefending("asleep", inflict(game.ConditionAsleep)) }
func (b *Builder) Confuse() *Builder  { return b.onDefending("confuse", inflict(game.ConditionConfused)) }
func (b *Builder) Paralyze() *Builder { return b.onDefending("paralyze", inflict(game.ConditionParalyzed)) }

// Poison poisons the defending card.
func (b *Builder) Poison() *Builder {
	return b.onDefending("poison", func(ctx *Context, ref game.CardRef) {
		ctx.engine = ctx.engine.Poison(ref, 1)
	})
}

// SeverePoison poisons the defending card with two counters per checkup.
func (b *Builder) SeverePoison() *Builder {
	return b.onDefending("severe_poison", func(ctx *Context, ref game.CardRef) {
		ctx.engine = ctx.engine.Poison(ref, 2)
	})
}

func (b *Builder) ConfuseAttacking() *Builder {
	return b.onAttacking("confuse_attacking", inflict(game.ConditionConfused))
}

func (b *Builder) AsleepAttacking() *Builder {
	return b.onAttacking("asleep_attacking", inflict(game.ConditionAsleep))
}

// --- Healing ---

// HealAttacking removes up to amount damage from the attacking card.
func (b *Builder) HealAttacking(amount int) *Builder {
	return b.onAttacking(fmt.Sprintf("heal_attacking(%d)", amount), func(ctx *Context, ref game.CardRef) {
		ctx.engine = ctx.engine.Heal(ref, amount)
	})
}

// HealAllAttacking removes all damage from the attacking card.
func (b *Builder) HealAllAttacking() *Builder {
	return b.onAttacking("heal_all_attacking", func(ctx *Context, ref game.CardRef) {
		ctx.engine = ctx.engine.HealAll(ref)
	})
}

// --- Movement ---

// SwitchDefending lets the opponent switch the defending card with one of
// their benched cards.
func (b *Builder) SwitchDefending() *Builder {
	return b.then(switchStep{gust: false})
}

// GustDefending lets the attacking player choose one of the opponent's
// benched cards to become the opponent's active card.
func (b *Builder) GustDefending() *Builder {
	return b.then(switchStep{gust: true})
}

type switchStep struct{ gust bool }

func (s switchStep) String() string {
	if s.gust {
		return "gust_defending"
	}
	return "switch_defending"
}

func (s switchStep) apply(ctx *Context) {
	opp := ctx.actor().Opponent()
	bench := ctx.engine.Bench(opp)
	if len(bench) == 0 {
		return
	}
	candidates := make([]game.CardRef, len(bench))
	for i, c := range bench {
		candidates[i] = c.Ref()
	}
	chooser, prompt := opp, "Choose a benched Pokemon to switch in"
	if s.gust {
		chooser, prompt = ctx.actor(), "Choose an opposing benched Pokemon to bring out"
	}
	picked := ctx.dm.PickCard(ctx.engine, chooser, prompt, candidates)
	if card := ctx.engine.Card(picked); card != nil {
		ctx.log(log.NewChoiceEvent(0, int(chooser), prompt, card.Card.Name))
	}
	ctx.engine = ctx.engine.Switch(opp, picked)
}

// KnockOutAttacking knocks out the attacking card.
func (b *Builder) KnockOutAttacking() *Builder {
	return b.onAttacking("knock_out_attacking", func(ctx *Context, ref game.CardRef) {
		ctx.engine = ctx.engine.KnockOut(ref)
	})
}

// --- Cards ---

type drawStep struct{ n int }

func (s drawStep) String() string { return fmt.Sprintf("draw(%d)", s.n) }

func (s drawStep) apply(ctx *Context) {
	ctx.engine, _ = ctx.engine.Draw(ctx.actor(), s.n)
}

// Draw draws n cards for the acting player.
func (b *Builder) Draw(n int) *Builder {
	return b.then(drawStep{n: n})
}

type discardStep struct {
	attacking  bool
	energyType game.EnergyType
	n          int
}

func (s discardStep) String() string {
	who := "defending"
	if s.attacking {
		who = "attacking"
	}
	return fmt.Sprintf("discard_%s_energy(%s,%d)", who, s.energyType, s.n)
}

func (s discardStep) apply(ctx *Context) {
	var (
		ref game.CardRef
		ok  bool
	)
	if s.attacking {
		ref, ok = ctx.attackerRef()
	} else {
		ref, ok = ctx.defenderRef()
	}
	if !ok {
		ctx.results = append(ctx.results, game.GradeAction(0, s.n))
		return
	}
	var r game.ActionResult
	ctx.engine, r = ctx.engine.DiscardEnergy(ref, s.energyType, s.n)
	ctx.results = append(ctx.results, r)
}

// DiscardAttackingEnergy discards n energy cards of the given type from the
// attacking card (Colorless matches any) and records how fully it succeeded.
func (b *Builder) DiscardAttackingEnergy(energyType game.EnergyType, n int) *Builder {
	return b.then(discardStep{attacking: true, energyType: energyType, n: n})
}

// DiscardDefendingEnergy discards n energy cards of the given type from the
// defending card and records how fully it succeeded.
func (b *Builder) DiscardDefendingEnergy(energyType game.EnergyType, n int) *Builder {
	return b.then(discardStep{energyType: energyType, n: n})
}
