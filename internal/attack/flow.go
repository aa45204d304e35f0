package attack

import (
	"fmt"

	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// --- Cost ---

type costStep struct{ cost game.Cost }

func (s costStep) String() string { return "attack_cost(" + s.cost.String() + ")" }

func (s costStep) apply(ctx *Context) {
	ctx.cost = s.cost
	ref, ok := ctx.attackerRef()
	if ok && ctx.engine.CostSatisfied(ref, s.cost) {
		return
	}
	ctx.failed = true
	ctx.log(log.NewAttackFailedEvent(0, int(ctx.actor()), "attack", "energy cost "+s.cost.String()+" not met"))
}

// AttackCost records the cost and fails the attack if the attacking card's
// energy does not pay for it.
func (b *Builder) AttackCost(cost game.Cost) *Builder {
	return b.then(costStep{cost: cost})
}

// --- Coins ---

type flipStep struct{ n int }

func (s flipStep) String() string { return fmt.Sprintf("flip_coins(%d)", s.n) }

func (s flipStep) apply(ctx *Context) {
	flips := ctx.dm.FlipCoins(s.n)
	ctx.flips = append(ctx.flips, flips)
	ctx.log(log.NewCoinFlipEvent(0, int(ctx.actor()), flips))
}

// FlipACoin flips one coin.
func (b *Builder) FlipACoin() *Builder {
	return b.FlipCoins(1)
}

// FlipCoins flips n coins as one batch.
func (b *Builder) FlipCoins(n int) *Builder {
	return b.then(flipStep{n: n})
}

// --- Branches ---

type branchStep struct {
	name string
	when func(ctx *Context) bool
	sub  *Builder
}

func (s branchStep) String() string { return nested(s.name, s.sub) }

func (s branchStep) apply(ctx *Context) {
	if s.when(ctx) {
		ctx.runSub(s.sub)
	}
}

// IfHeads runs sub when the most recent flip batch has exactly one heads.
func (b *Builder) IfHeads(sub *Builder) *Builder {
	return b.then(branchStep{name: "if_heads", sub: sub, when: func(ctx *Context) bool {
		return ctx.Heads() == 1
	}})
}

// IfTails runs sub when the most recent flip batch has no heads.
func (b *Builder) IfTails(sub *Builder) *Builder {
	return b.then(branchStep{name: "if_tails", sub: sub, when: func(ctx *Context) bool {
		return ctx.Heads() == 0
	}})
}

// IfDidDamage runs sub when the pipeline has dealt damage so far.
func (b *Builder) IfDidDamage(sub *Builder) *Builder {
	return b.then(branchStep{name: "if_did_damage", sub: sub, when: func(ctx *Context) bool {
		return ctx.damageDone > 0
	}})
}

// --- Must ---

type mustStep struct{ sub *Builder }

func (s mustStep) String() string { return nested("must", s.sub) }

func (s mustStep) apply(ctx *Context) {
	child := ctx.runSub(s.sub)
	for _, r := range child.results {
		if r != game.ActionFull {
			ctx.failed = true
			ctx.log(log.NewAttackFailedEvent(0, int(ctx.actor()), "attack", "required action was "+r.String()))
			return
		}
	}
}

// Must runs sub and fails the whole attack unless every action it performed
// was carried out in full.
func (b *Builder) Must(sub *Builder) *Builder {
	return b.then(mustStep{sub: sub})
}

// --- Targets ---

type eachBenchStep struct {
	own bool
	sub *Builder
}

func (s eachBenchStep) String() string {
	if s.own {
		return nested("each_own_bench", s.sub)
	}
	return nested("each_opponents_bench", s.sub)
}

func (s eachBenchStep) apply(ctx *Context) {
	p := ctx.actor()
	if !s.own {
		p = p.Opponent()
	}
	for _, card := range ctx.engine.Bench(p) {
		onTarget(ctx, card.Ref(), s.sub)
	}
}

// EachOwnBench runs sub once per benched card of the acting player, with
// that card as the defending card.
func (b *Builder) EachOwnBench(sub *Builder) *Builder {
	return b.then(eachBenchStep{own: true, sub: sub})
}

// EachOpponentsBench runs sub once per benched card of the opponent, with
// that card as the defending card.
func (b *Builder) EachOpponentsBench(sub *Builder) *Builder {
	return b.then(eachBenchStep{own: false, sub: sub})
}

type onTargetStep struct {
	ref game.CardRef
	sub *Builder
}

func (s onTargetStep) String() string { return nested("on_target("+s.ref.String()+")", s.sub) }

func (s onTargetStep) apply(ctx *Context) {
	onTarget(ctx, s.ref, s.sub)
}

func onTarget(ctx *Context, ref game.CardRef, sub *Builder) {
	ctx.engine = ctx.engine.PushTarget(ref)
	ctx.runSub(sub)
	ctx.engine = ctx.engine.PopTarget()
}

// OnTarget runs sub with ref as the defending card.
func (b *Builder) OnTarget(ref game.CardRef, sub *Builder) *Builder {
	return b.then(onTargetStep{ref: ref, sub: sub})
}

// --- Flags ---

type preventStep struct{}

func (preventStep) String() string { return "prevent" }

func (preventStep) apply(ctx *Context) {
	ctx.prevented = true
}

// Prevent marks the resolution as prevented.
func (b *Builder) Prevent() *Builder {
	return b.then(preventStep{})
}

type failStep struct{}

func (failStep) String() string { return "fail" }

func (failStep) apply(ctx *Context) {
	ctx.failed = true
}

// Fail marks the resolution as failed.
func (b *Builder) Fail() *Builder {
	return b.then(failStep{})
}
