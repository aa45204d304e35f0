// Package attack composes attack behavior out of small steps and resolves it
// over immutable game state snapshots.
package attack

import (
	"strings"

	"github.com/peterkuimelis/ptcgx/internal/game"
)

// Step is one operation of a pipeline.
type Step interface {
	apply(ctx *Context)
	String() string
}

// Builder is an ordered, immutable sequence of steps. Every fluent method
// returns a new Builder and leaves the receiver unchanged.
type Builder struct {
	steps []Step
}

// New returns an empty pipeline.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) then(s Step) *Builder {
	steps := make([]Step, 0, len(b.steps)+1)
	steps = append(steps, b.steps...)
	steps = append(steps, s)
	return &Builder{steps: steps}
}

// Chain appends every step of other after the steps of b.
func (b *Builder) Chain(other *Builder) *Builder {
	steps := make([]Step, 0, len(b.steps)+len(other.steps))
	steps = append(steps, b.steps...)
	steps = append(steps, other.steps...)
	return &Builder{steps: steps}
}

// Steps returns the pipeline's steps in order.
func (b *Builder) Steps() []Step {
	return append([]Step(nil), b.steps...)
}

// Len returns the number of top-level steps.
func (b *Builder) Len() int {
	return len(b.steps)
}

func (b *Builder) String() string {
	parts := make([]string, len(b.steps))
	for i, s := range b.steps {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Apply folds every step over a fresh context and returns it.
func (b *Builder) Apply(s *game.State, dm game.DecisionMaker) *Context {
	ctx := newContext(s, dm)
	b.run(ctx)
	return ctx
}

// Run implements game.Pipeline.
func (b *Builder) Run(s *game.State, dm game.DecisionMaker) game.Outcome {
	return b.Apply(s, dm)
}

func (b *Builder) run(ctx *Context) {
	for _, s := range b.steps {
		s.apply(ctx)
	}
}

func nested(name string, sub *Builder) string {
	return name + sub.String()
}
