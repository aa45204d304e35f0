package attack

import (
	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

// Context is the scratch state of one pipeline resolution. Steps never stop
// early on Failed or Prevented; both are read by the caller afterwards.
type Context struct {
	engine   *game.State
	original *game.State
	dm       game.DecisionMaker

	flips      []game.Flips // most recent last
	cost       game.Cost
	prevented  bool
	failed     bool
	damageDone int
	results    []game.ActionResult
}

func newContext(s *game.State, dm game.DecisionMaker) *Context {
	return &Context{engine: s, original: s, dm: dm}
}

// Engine returns the resolved state, or the untouched starting state if the
// resolution failed.
func (c *Context) Engine() *game.State {
	if c.failed {
		return c.original
	}
	return c.engine
}

// Current returns the in-flight state regardless of failure.
func (c *Context) Current() *game.State { return c.engine }

// Original returns the state the resolution started from.
func (c *Context) Original() *game.State { return c.original }

func (c *Context) Failed() bool                      { return c.failed }
func (c *Context) Prevented() bool                   { return c.prevented }
func (c *Context) DamageDone() int                   { return c.damageDone }
func (c *Context) Cost() game.Cost                   { return c.cost }
func (c *Context) DecisionMaker() game.DecisionMaker { return c.dm }

// Results returns the graded outcomes of multi-card actions, in order.
func (c *Context) Results() []game.ActionResult {
	return append([]game.ActionResult(nil), c.results...)
}

// Flips returns every flip batch so far, most recent last.
func (c *Context) Flips() []game.Flips {
	return append([]game.Flips(nil), c.flips...)
}

// Heads returns the heads count of the most recent flip batch.
func (c *Context) Heads() int {
	if len(c.flips) == 0 {
		return 0
	}
	return c.flips[len(c.flips)-1].Heads()
}

func (c *Context) actor() game.PlayerID {
	return c.engine.TurnPlayer()
}

func (c *Context) log(event log.GameEvent) {
	c.engine.Log(event)
}

// attackerRef returns the attacking card's reference; ok is false if the
// turn player has no active card.
func (c *Context) attackerRef() (game.CardRef, bool) {
	if a := c.engine.Attacking(); a != nil {
		return a.Ref(), true
	}
	return game.CardRef{}, false
}

func (c *Context) defenderRef() (game.CardRef, bool) {
	if d := c.engine.Defending(); d != nil {
		return d.Ref(), true
	}
	return game.CardRef{}, false
}

// fork starts a nested resolution over the current state. The child sees the
// parent's flips, cost and damage so far but starts with no results of its own.
func (c *Context) fork() *Context {
	return &Context{
		engine:     c.engine,
		original:   c.engine,
		dm:         c.dm,
		flips:      append([]game.Flips(nil), c.flips...),
		cost:       c.cost,
		damageDone: c.damageDone,
	}
}

// join splices a finished child back into the parent.
func (c *Context) join(child *Context) {
	c.engine = child.engine
	c.flips = child.flips
	c.cost = child.cost
	c.damageDone = child.damageDone
	c.results = append(c.results, child.results...)
	c.failed = c.failed || child.failed
	c.prevented = c.prevented || child.prevented
}

// runSub fully applies b against the current state and splices the result.
func (c *Context) runSub(b *Builder) *Context {
	child := c.fork()
	b.run(child)
	c.join(child)
	return child
}

// dealToDefending deals attack damage from the attacking card to the
// defending card and records what was actually dealt.
func (c *Context) dealToDefending(amount int) {
	def, ok := c.defenderRef()
	if !ok {
		return
	}
	src, _ := c.attackerRef()
	var dealt int
	c.engine, dealt = c.engine.DealDamage(src, def, amount)
	c.damageDone += dealt
}
