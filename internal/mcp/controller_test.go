package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/game/gametest"
	gamemock "github.com/peterkuimelis/ptcgx/internal/game/mock"
)

func TestParseFlips(t *testing.T) {
	flips, err := ParseFlips(" H t heads TAILS ")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, flips)

	flips, err = ParseFlips("")
	require.NoError(t, err)
	assert.Empty(t, flips)

	_, err = ParseFlips("H X")
	assert.ErrorContains(t, err, `invalid coin "X"`)
}

func TestParseChoices(t *testing.T) {
	assert.Equal(t, []string{"Fire", "Chansey"}, ParseChoices(" Fire, ,Chansey "))
	assert.Empty(t, ParseChoices(""))
}

func TestToolDeciderFlipsFallBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	fallback := gamemock.NewMockDecisionMaker(ctrl)
	fallback.EXPECT().FlipCoins(2).Return(game.Flips{false, false})

	d := NewToolDecider([]bool{true}, nil, fallback)
	assert.Equal(t, game.Flips{true, false, false}, d.FlipCoins(3))
}

func TestToolDeciderChoices(t *testing.T) {
	tb := gametest.NewTable(game.NewFormat("test", nil),
		gametest.Pokemon("Electabuzz", 70, game.EnergyLightning),
		gametest.Pokemon("Seel", 60, game.EnergyWater))
	chansey := tb.Bench(1, gametest.Pokemon("Chansey", 120, game.EnergyColorless))
	rattata := tb.Bench(1, gametest.Pokemon("Rattata", 30, game.EnergyColorless))
	bench := []game.CardRef{chansey, rattata}

	ctrl := gomock.NewController(t)
	fallback := gamemock.NewMockDecisionMaker(ctrl)

	d := NewToolDecider(nil, []string{"rattata", chansey.String(), "fire", "aurora beam"}, fallback)
	assert.Equal(t, rattata, d.PickCard(tb.State, 0, "gust", bench), "by name")
	assert.Equal(t, chansey, d.PickCard(tb.State, 0, "gust", bench), "by ref")
	assert.Equal(t, game.EnergyFire, d.PickEnergyType(tb.State, 0, []game.EnergyType{game.EnergyWater, game.EnergyFire}))
	assert.Equal(t, "Aurora Beam", d.PickAttack(tb.State, 1, []string{"Headbutt", "Aurora Beam"}))

	fallback.EXPECT().PickCard(tb.State, game.PlayerID(0), "gust", bench).Return(chansey)
	assert.Equal(t, chansey, d.PickCard(tb.State, 0, "gust", bench), "queue exhausted")
}

func TestToolDeciderRejectedChoiceFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	fallback := gamemock.NewMockDecisionMaker(ctrl)
	candidates := []game.EnergyType{game.EnergyWater}
	fallback.EXPECT().PickEnergyType(nil, game.PlayerID(1), candidates).Return(game.EnergyWater)
	fallback.EXPECT().PickAttack(nil, game.PlayerID(1), []string{"Headbutt"}).Return("Headbutt")

	d := NewToolDecider(nil, []string{"Fire", "Surf"}, fallback)
	assert.Equal(t, game.EnergyWater, d.PickEnergyType(nil, 1, candidates), "not a candidate")
	assert.Equal(t, "Headbutt", d.PickAttack(nil, 1, []string{"Headbutt"}), "unknown attack")
}
