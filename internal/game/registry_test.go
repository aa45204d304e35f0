package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/ptcgx/internal/game"
)

func TestNewFormatRejectsDuplicates(t *testing.T) {
	assert.PanicsWithValue(t, `duplicate custom effect "plus" in format dup`, func() {
		game.NewFormat("dup", nil, plus{}, inert{}, plus{})
	})
}

func TestFormatLookup(t *testing.T) {
	assert.IsType(t, plus{}, testFormat.CustomEffect("plus"))
	assert.Panics(t, func() { testFormat.CustomEffect("nope") })
	assert.Equal(t, []string{"double", "grudge", "inert", "lockout", "plus", "survivor", "ticker", "typeless", "weaken"},
		testFormat.EffectIDs())
}

func TestFormatEnergyTypes(t *testing.T) {
	assert.Equal(t,
		[]game.EnergyType{game.EnergyColorless, game.EnergyFire, game.EnergyWater, game.EnergyLightning},
		testFormat.EnergyTypes())
	assert.Equal(t,
		[]game.EnergyType{game.EnergyFire, game.EnergyLightning},
		testFormat.EnergyTypesExcept(game.EnergyColorless, game.EnergyWater, game.EnergyPsychic))
	assert.Empty(t, testFormat.EnergyTypesExcept(testFormat.EnergyTypes()...))
}

func TestEffectParam(t *testing.T) {
	e := game.Effect{
		Consequence: "plus",
		Parameters:  []game.Param{game.NumberParam(3), game.EnergyParam(game.EnergyFire)},
	}

	assert.Equal(t, 3, e.Param(0, game.ParamNumber).Number)
	assert.Equal(t, game.EnergyFire, e.Param(1, game.ParamEnergy).Energy)
	assert.PanicsWithValue(t, "effect plus: missing parameter 1", func() { e.Param(1, game.ParamAttack) })
	assert.Panics(t, func() { e.Param(2, game.ParamNumber) })
}

func TestEffectTargets(t *testing.T) {
	ref := game.CardRef{Player: 1, ID: 4}

	card := game.TargetInPlay(ref)
	assert.True(t, card.IsInPlay(ref))
	assert.False(t, card.IsPlayer(1))
	assert.Equal(t, game.PlayerID(1), card.Player())
	got, ok := card.Ref()
	require.True(t, ok)
	assert.Equal(t, ref, got)

	player := game.TargetPlayer(1)
	assert.True(t, player.IsPlayer(1))
	assert.False(t, player.IsInPlay(game.CardRef{Player: 1}))
	_, ok = player.Ref()
	assert.False(t, ok)

	assert.True(t, game.SourceAttack(ref).IsInPlay(ref))
	assert.True(t, game.SourcePlayer(0).IsPlayer(0))
	assert.Equal(t, game.PlayerID(1), game.SourceAttack(ref).Player())
}

func TestParseNames(t *testing.T) {
	et, err := game.ParseEnergyType("lightning")
	require.NoError(t, err)
	assert.Equal(t, game.EnergyLightning, et)
	_, err = game.ParseEnergyType("Plasma")
	assert.Error(t, err)

	cond, err := game.ParseCondition("")
	require.NoError(t, err)
	assert.Equal(t, game.ConditionNone, cond)
	cond, err = game.ParseCondition("PARALYZED")
	require.NoError(t, err)
	assert.Equal(t, game.ConditionParalyzed, cond)
	_, err = game.ParseCondition("Burned")
	assert.Error(t, err)
}
