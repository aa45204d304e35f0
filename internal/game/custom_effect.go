package game

// Pipeline is a resolvable sequence of steps. Attacks carry one and trigger
// hooks return one; the attack package provides the implementation.
type Pipeline interface {
	Run(s *State, dm DecisionMaker) Outcome
}

// Outcome is what a resolved Pipeline reports back.
type Outcome interface {
	Engine() *State
	Failed() bool
	Prevented() bool
}

// CustomEffect is the behavior behind an effect identifier. An implementation
// subscribes to hooks by also implementing the matching hook interfaces below;
// a hook it does not implement never applies.
type CustomEffect interface {
	ID() string
}

// Query hooks return (value, true) to override the current value.

type DefendingDamageHook interface {
	DefendingDamage(e Effect, card *InPlay, s *State, current int) (int, bool)
}

type AttackingDamageHook interface {
	AttackingDamage(e Effect, card *InPlay, s *State, current int) (int, bool)
}

type ResistanceHook interface {
	Resistance(e Effect, card *InPlay, s *State, current EnergyType) (EnergyType, bool)
}

type WeaknessHook interface {
	Weakness(e Effect, card *InPlay, s *State, current EnergyType) (EnergyType, bool)
}

type AttacksHook interface {
	Attacks(e Effect, card *InPlay, s *State, current []Attack) ([]Attack, bool)
}

// Trigger hooks return the pipeline to run at that point, or nil.

type OnAffectedHook interface {
	OnAffected(e Effect, s *State) Pipeline
}

type OnTurnEndHook interface {
	OnTurnEnd(e Effect, s *State) Pipeline
}

type OnWouldBeKnockedOutHook interface {
	OnWouldBeKnockedOut(e Effect, s *State) Pipeline
}

type OnKnockedOutHook interface {
	OnKnockedOut(e Effect, s *State) Pipeline
}

type OnTrainerHook interface {
	OnTrainer(e Effect, s *State) Pipeline
}

type OnEnergyAttachmentHook interface {
	OnEnergyAttachment(e Effect, s *State) Pipeline
}

type OnAttemptToAttackHook interface {
	OnAttemptToAttack(e Effect, s *State) Pipeline
}
