package game_test

import (
	"github.com/peterkuimelis/ptcgx/internal/game"
)

// Minimal pipeline and effects so engine tests do not depend on the attack package.

type outcome struct {
	s         *game.State
	prevented bool
	failed    bool
}

func (o outcome) Engine() *game.State { return o.s }
func (o outcome) Failed() bool        { return o.failed }
func (o outcome) Prevented() bool     { return o.prevented }

type pipelineFunc func(s *game.State, dm game.DecisionMaker) game.Outcome

func (f pipelineFunc) Run(s *game.State, dm game.DecisionMaker) game.Outcome { return f(s, dm) }

func preventing() game.Pipeline {
	return pipelineFunc(func(s *game.State, _ game.DecisionMaker) game.Outcome {
		return outcome{s: s, prevented: true}
	})
}

// plus adds parameter 0 to damage taken.
type plus struct{}

func (plus) ID() string { return "plus" }

func (plus) DefendingDamage(e game.Effect, _ *game.InPlay, _ *game.State, current int) (int, bool) {
	return current + e.Param(0, game.ParamNumber).Number, true
}

// double doubles damage taken.
type double struct{}

func (double) ID() string { return "double" }

func (double) DefendingDamage(_ game.Effect, _ *game.InPlay, _ *game.State, current int) (int, bool) {
	return current * 2, true
}

// weaken lowers damage dealt by parameter 0.
type weaken struct{}

func (weaken) ID() string { return "weaken" }

func (weaken) AttackingDamage(e game.Effect, _ *game.InPlay, _ *game.State, current int) (int, bool) {
	return current - e.Param(0, game.ParamNumber).Number, true
}

// inert subscribes to nothing.
type inert struct{}

func (inert) ID() string { return "inert" }

// typeless removes weakness and resistance.
type typeless struct{}

func (typeless) ID() string { return "typeless" }

func (typeless) Weakness(game.Effect, *game.InPlay, *game.State, game.EnergyType) (game.EnergyType, bool) {
	return game.EnergyNone, true
}

func (typeless) Resistance(game.Effect, *game.InPlay, *game.State, game.EnergyType) (game.EnergyType, bool) {
	return game.EnergyNone, true
}

// lockout blocks trainers and energy attachment.
type lockout struct{}

func (lockout) ID() string { return "lockout" }

func (lockout) OnTrainer(game.Effect, *game.State) game.Pipeline          { return preventing() }
func (lockout) OnEnergyAttachment(game.Effect, *game.State) game.Pipeline { return preventing() }

// survivor is saved from every knockout.
type survivor struct{}

func (survivor) ID() string { return "survivor" }

func (survivor) OnWouldBeKnockedOut(game.Effect, *game.State) game.Pipeline { return preventing() }

// grudge puts 30 damage on the opponent's active card when the target is knocked out.
type grudge struct{}

func (grudge) ID() string { return "grudge" }

func (grudge) OnKnockedOut(e game.Effect, _ *game.State) game.Pipeline {
	opp := e.Target.Player().Opponent()
	return pipelineFunc(func(s *game.State, _ game.DecisionMaker) game.Outcome {
		if a := s.Active(opp); a != nil {
			s, _ = s.PutDamage(a.Ref(), 30)
		}
		return outcome{s: s}
	})
}

// ticker puts 10 damage on its target at every turn end.
type ticker struct{}

func (ticker) ID() string { return "ticker" }

func (ticker) OnTurnEnd(e game.Effect, _ *game.State) game.Pipeline {
	ref, _ := e.Target.Ref()
	return pipelineFunc(func(s *game.State, _ game.DecisionMaker) game.Outcome {
		s, _ = s.PutDamage(ref, 10)
		return outcome{s: s}
	})
}

var testFormat = game.NewFormat("test",
	[]game.EnergyType{game.EnergyColorless, game.EnergyFire, game.EnergyWater, game.EnergyLightning},
	plus{}, double{}, weaken{}, inert{}, typeless{}, lockout{}, survivor{}, grudge{}, ticker{},
)

func onCard(id string, ref game.CardRef, exp game.EffectExpiration, params ...game.Param) game.Effect {
	return game.Effect{
		Consequence: id,
		Source:      game.SourcePlayer(ref.Player.Opponent()),
		Target:      game.TargetInPlay(ref),
		Expiration:  exp,
		Parameters:  params,
	}
}

func onPlayer(id string, p game.PlayerID, exp game.EffectExpiration) game.Effect {
	return game.Effect{
		Consequence: id,
		Source:      game.SourcePlayer(p.Opponent()),
		Target:      game.TargetPlayer(p),
		Expiration:  exp,
	}
}
