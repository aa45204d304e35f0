package attack

import "github.com/peterkuimelis/ptcgx/internal/game"

// BaseFormat returns the ruleset with every effect kind in this package and
// the classic seven energy types.
func BaseFormat() *game.Format {
	return game.NewFormat("base",
		[]game.EnergyType{
			game.EnergyColorless,
			game.EnergyGrass,
			game.EnergyFire,
			game.EnergyWater,
			game.EnergyLightning,
			game.EnergyPsychic,
			game.EnergyFighting,
		},
		ChangeResistance{},
		ChangeWeakness{},
		DisableAttack{},
		PreventDamage{},
		PreventDamageAtMost{},
		ReduceAttackDamage{},
		BlockTrainers{},
		BlockEnergyAttachment{},
		DestinyBond{},
		FlipToAttack{},
		Endure{},
		DelayedDamage{},
		UsedOnce{},
	)
}

// opponentsTurn reports whether it is currently the turn of the player who
// did not create e.
func opponentsTurn(e game.Effect, s *game.State) bool {
	return s.TurnPlayer() != e.Source.Player()
}

// targetsTurn reports whether it is currently the turn of the player who owns
// e's target.
func targetsTurn(e game.Effect, s *game.State) bool {
	return s.TurnPlayer() == e.Target.Player()
}

func withoutAttack(attacks []game.Attack, name string) ([]game.Attack, bool) {
	out := make([]game.Attack, 0, len(attacks))
	removed := false
	for _, a := range attacks {
		if a.Name == name {
			removed = true
			continue
		}
		out = append(out, a)
	}
	return out, removed
}

// ChangeResistance replaces the target's resistance with parameter 0.
type ChangeResistance struct{}

func (ChangeResistance) ID() string { return "change_resistance" }

func (ChangeResistance) Resistance(e game.Effect, _ *game.InPlay, _ *game.State, _ game.EnergyType) (game.EnergyType, bool) {
	return e.Param(0, game.ParamEnergy).Energy, true
}

// ChangeWeakness replaces the target's weakness with parameter 0.
type ChangeWeakness struct{}

func (ChangeWeakness) ID() string { return "change_weakness" }

func (ChangeWeakness) Weakness(e game.Effect, _ *game.InPlay, _ *game.State, _ game.EnergyType) (game.EnergyType, bool) {
	return e.Param(0, game.ParamEnergy).Energy, true
}

// DisableAttack removes the attack named by parameter 0 from the target.
type DisableAttack struct{}

func (DisableAttack) ID() string { return "disable_attack" }

func (DisableAttack) Attacks(e game.Effect, _ *game.InPlay, _ *game.State, current []game.Attack) ([]game.Attack, bool) {
	return withoutAttack(current, e.Param(0, game.ParamAttack).Attack)
}

// PreventDamage prevents all damage to and effects of attacks on the target
// during the opponent's turn.
type PreventDamage struct{}

func (PreventDamage) ID() string { return "prevent_damage" }

func (PreventDamage) DefendingDamage(e game.Effect, _ *game.InPlay, s *game.State, _ int) (int, bool) {
	if !opponentsTurn(e, s) {
		return 0, false
	}
	return 0, true
}

func (PreventDamage) OnAffected(e game.Effect, s *game.State) game.Pipeline {
	if !opponentsTurn(e, s) {
		return nil
	}
	return New().Prevent()
}

// PreventDamageAtMost prevents damage to the target during the opponent's
// turn when the damage is parameter 0 or less.
type PreventDamageAtMost struct{}

func (PreventDamageAtMost) ID() string { return "prevent_damage_at_most" }

func (PreventDamageAtMost) DefendingDamage(e game.Effect, _ *game.InPlay, s *game.State, current int) (int, bool) {
	if !opponentsTurn(e, s) || current > e.Param(0, game.ParamNumber).Number {
		return 0, false
	}
	return 0, true
}

// ReduceAttackDamage lowers the damage the target's attacks do by parameter 0.
type ReduceAttackDamage struct{}

func (ReduceAttackDamage) ID() string { return "reduce_attack_damage" }

func (ReduceAttackDamage) AttackingDamage(e game.Effect, _ *game.InPlay, s *game.State, current int) (int, bool) {
	if !targetsTurn(e, s) {
		return 0, false
	}
	reduced := current - e.Param(0, game.ParamNumber).Number
	if reduced < 0 {
		reduced = 0
	}
	return reduced, true
}

// BlockTrainers stops the target player from playing Trainer cards.
type BlockTrainers struct{}

func (BlockTrainers) ID() string { return "block_trainers" }

func (BlockTrainers) OnTrainer(e game.Effect, s *game.State) game.Pipeline {
	if !targetsTurn(e, s) {
		return nil
	}
	return New().Prevent()
}

// BlockEnergyAttachment stops the target player from attaching energy.
type BlockEnergyAttachment struct{}

func (BlockEnergyAttachment) ID() string { return "block_energy_attachment" }

func (BlockEnergyAttachment) OnEnergyAttachment(e game.Effect, s *game.State) game.Pipeline {
	if !targetsTurn(e, s) {
		return nil
	}
	return New().Prevent()
}

// DestinyBond knocks out the attacker when the target is knocked out by an
// attack during the opponent's turn.
type DestinyBond struct{}

func (DestinyBond) ID() string { return "destiny_bond" }

func (DestinyBond) OnKnockedOut(e game.Effect, s *game.State) game.Pipeline {
	if !s.InAttack() || targetsTurn(e, s) {
		return nil
	}
	return New().KnockOutAttacking()
}

// FlipToAttack makes the target flip a coin before attacking; on tails the
// attack does nothing.
type FlipToAttack struct{}

func (FlipToAttack) ID() string { return "flip_to_attack" }

func (FlipToAttack) OnAttemptToAttack(e game.Effect, s *game.State) game.Pipeline {
	if !targetsTurn(e, s) {
		return nil
	}
	return New().FlipACoin().IfTails(New().Prevent())
}

// Endure flips a coin when the target would be knocked out during the
// opponent's turn; on heads it survives with 10 HP.
type Endure struct{}

func (Endure) ID() string { return "endure" }

func (Endure) OnWouldBeKnockedOut(e game.Effect, s *game.State) game.Pipeline {
	if targetsTurn(e, s) {
		return nil
	}
	return New().FlipACoin().IfHeads(New().Prevent())
}

// DelayedDamage puts parameter 0 damage counters on the target at the end
// of its owner's turn.
type DelayedDamage struct{}

func (DelayedDamage) ID() string { return "delayed_damage" }

func (DelayedDamage) OnTurnEnd(e game.Effect, s *game.State) game.Pipeline {
	ref, ok := e.Target.Ref()
	if !ok || !targetsTurn(e, s) {
		return nil
	}
	n := e.Param(0, game.ParamNumber).Number
	return New().OnTarget(ref, New().PutDamageCountersOnDefending(n))
}

// UsedOnce removes the attack named by parameter 0 for as long as the target
// stays in play.
type UsedOnce struct{}

func (UsedOnce) ID() string { return "used_once" }

func (UsedOnce) Attacks(e game.Effect, _ *game.InPlay, _ *game.State, current []game.Attack) ([]game.Attack, bool) {
	return withoutAttack(current, e.Param(0, game.ParamAttack).Attack)
}
