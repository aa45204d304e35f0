package game

import "fmt"

// EffectTarget is either a specific in-play card or a player as a whole.
type EffectTarget struct {
	player bool
	ref    CardRef
}

// TargetInPlay targets one in-play card.
func TargetInPlay(ref CardRef) EffectTarget {
	return EffectTarget{ref: ref}
}

// TargetPlayer targets a player.
func TargetPlayer(p PlayerID) EffectTarget {
	return EffectTarget{player: true, ref: CardRef{Player: p}}
}

// IsInPlay reports whether the target is exactly the given card.
func (t EffectTarget) IsInPlay(ref CardRef) bool {
	return !t.player && t.ref == ref
}

// IsPlayer reports whether the target is exactly the given player.
func (t EffectTarget) IsPlayer(p PlayerID) bool {
	return t.player && t.ref.Player == p
}

// Player returns the targeted player, or the owner of the targeted card.
func (t EffectTarget) Player() PlayerID {
	return t.ref.Player
}

// Ref returns the targeted card; ok is false for player targets.
func (t EffectTarget) Ref() (CardRef, bool) {
	return t.ref, !t.player
}

func (t EffectTarget) String() string {
	if t.player {
		return t.ref.Player.String()
	}
	return t.ref.String()
}

// EffectSource records where an effect came from.
type EffectSource struct {
	player bool
	ref    CardRef
}

// SourceAttack is an effect created by the attack of the given card.
func SourceAttack(ref CardRef) EffectSource {
	return EffectSource{ref: ref}
}

// SourcePlayer is an effect created by a player (e.g. a trainer card).
func SourcePlayer(p PlayerID) EffectSource {
	return EffectSource{player: true, ref: CardRef{Player: p}}
}

// Player returns the player who created the effect.
func (s EffectSource) Player() PlayerID {
	return s.ref.Player
}

// IsInPlay reports whether the effect came from the given card's attack.
func (s EffectSource) IsInPlay(ref CardRef) bool {
	return !s.player && s.ref == ref
}

// IsPlayer reports whether the effect came from the given player directly.
func (s EffectSource) IsPlayer(p PlayerID) bool {
	return s.player && s.ref.Player == p
}

type ExpirationKind int

const (
	ExpireEndOfTurn ExpirationKind = iota
	ExpireWhileInPlay
	ExpireWhileActive
	ExpireSystem
)

// EffectExpiration governs when an effect is dropped from the state.
type EffectExpiration struct {
	Kind   ExpirationKind
	Player PlayerID // ExpireEndOfTurn: whose turn end counts
	Grace  int      // ExpireEndOfTurn: matching turn ends to skip first
}

func EndOfTurn(p PlayerID, grace int) EffectExpiration {
	return EffectExpiration{Kind: ExpireEndOfTurn, Player: p, Grace: grace}
}

func WhileInPlay() EffectExpiration {
	return EffectExpiration{Kind: ExpireWhileInPlay}
}

func WhileActive() EffectExpiration {
	return EffectExpiration{Kind: ExpireWhileActive}
}

func SystemExpiration() EffectExpiration {
	return EffectExpiration{Kind: ExpireSystem}
}

func (e EffectExpiration) String() string {
	switch e.Kind {
	case ExpireEndOfTurn:
		return fmt.Sprintf("end of %s's turn (+%d)", e.Player, e.Grace)
	case ExpireWhileInPlay:
		return "while in play"
	case ExpireWhileActive:
		return "while active"
	default:
		return "system"
	}
}

type ParamKind int

const (
	ParamEnergy ParamKind = iota
	ParamAttack
	ParamNumber
)

// Param is a typed effect parameter, read positionally by the owning CustomEffect.
type Param struct {
	Kind   ParamKind
	Energy EnergyType
	Attack string
	Number int
}

func EnergyParam(t EnergyType) Param { return Param{Kind: ParamEnergy, Energy: t} }
func AttackParam(name string) Param  { return Param{Kind: ParamAttack, Attack: name} }
func NumberParam(n int) Param        { return Param{Kind: ParamNumber, Number: n} }

// Effect is one active rules modifier. It carries only the consequence
// identifier; behavior is looked up in the Format when a hook runs.
type Effect struct {
	Consequence string
	Source      EffectSource
	Target      EffectTarget
	Expiration  EffectExpiration
	Parameters  []Param
	System      bool
}

// Param returns the i-th parameter and panics if it is missing or of the wrong kind.
func (e Effect) Param(i int, kind ParamKind) Param {
	if i >= len(e.Parameters) || e.Parameters[i].Kind != kind {
		panic(fmt.Sprintf("effect %s: missing parameter %d", e.Consequence, i))
	}
	return e.Parameters[i]
}
