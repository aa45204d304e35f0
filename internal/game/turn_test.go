package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/game/gametest"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

func TestEndTurnPassesTurn(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)

	s := tb.State.BeginAttack().EndTurn(dm)

	assert.Equal(t, 3, s.Turn())
	assert.Equal(t, game.PlayerID(1), s.TurnPlayer())
	assert.False(t, s.InAttack())
	assert.Equal(t, log.EventNewTurn, tb.Logger.LastEvent().Type)
	assert.Equal(t, 3, tb.Logger.LastEvent().Turn)
}

func TestEndTurnExpiry(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)
	// P1 is to act on turn 2.
	s := tb.State.
		AddEffect(onCard("inert", tb.Defender, game.EndOfTurn(0, 0))).
		AddEffect(onCard("plus", tb.Defender, game.EndOfTurn(1, 0), game.NumberParam(10))).
		AddEffect(onCard("double", tb.Defender, game.EndOfTurn(0, 1))).
		AddEffect(onCard("typeless", tb.Defender, game.WhileInPlay()))

	ids := func(s *game.State) []string {
		var out []string
		for _, e := range s.Effects() {
			out = append(out, e.Consequence)
		}
		return out
	}

	s = s.EndTurn(dm) // end of P1's turn
	assert.Equal(t, []string{"plus", "double", "typeless"}, ids(s))

	s = s.EndTurn(dm) // end of P2's turn
	assert.Equal(t, []string{"double", "typeless"}, ids(s))

	s = s.EndTurn(dm) // P1's second turn end uses up the grace
	assert.Equal(t, []string{"typeless"}, ids(s))

	assert.Len(t, tb.Logger.EventsOfType(log.EventEffectExpired), 3)
}

func TestEndTurnSystemEffectsExpireQuietly(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)
	e := onCard("inert", tb.Defender, game.EndOfTurn(0, 0))
	e.System = true

	s := tb.State.AddEffect(e).EndTurn(dm)

	assert.Empty(t, s.Effects())
	assert.Empty(t, tb.Logger.EventsOfType(log.EventEffectInstalled))
	assert.Empty(t, tb.Logger.EventsOfType(log.EventEffectExpired))
}

func TestCheckupPoison(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)
	s := tb.State.
		WithCondition(tb.Defender, game.ConditionNone, 1).
		WithCondition(tb.Attacker, game.ConditionNone, 2)

	s = s.EndTurn(dm)

	assert.Equal(t, 10, s.Card(tb.Defender).Damage)
	assert.Equal(t, 20, s.Card(tb.Attacker).Damage)
	assert.Equal(t, 1, s.Card(tb.Defender).PoisonCounters, "poison stays")
}

func TestCheckupPoisonKnocksOut(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)
	s := tb.State.WithDamage(tb.Defender, 30).WithCondition(tb.Defender, game.ConditionNone, 1)

	s = s.EndTurn(dm)

	assert.Nil(t, s.Active(1))
	assert.Equal(t, 1, s.Player(0).PrizesTaken)
}

func TestCheckupAsleep(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)
	dm.AddFlips(false, true)
	s := tb.State.WithCondition(tb.Defender, game.ConditionAsleep, 0)

	s = s.EndTurn(dm)
	assert.Equal(t, game.ConditionAsleep, s.Card(tb.Defender).Condition)

	s = s.EndTurn(dm)
	assert.Equal(t, game.ConditionNone, s.Card(tb.Defender).Condition)
	assert.Equal(t, 0, dm.Remaining())
}

func TestCheckupParalysis(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)
	s := tb.State.WithCondition(tb.Defender, game.ConditionParalyzed, 0)

	// Paralysis lasts through the owner's next turn.
	s = s.EndTurn(dm)
	require.Equal(t, game.PlayerID(1), s.TurnPlayer())
	assert.Equal(t, game.ConditionParalyzed, s.Card(tb.Defender).Condition)

	s = s.EndTurn(dm)
	assert.Equal(t, game.ConditionNone, s.Card(tb.Defender).Condition)
}

func TestCheckupLeavesConfusion(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)
	s := tb.State.WithCondition(tb.Attacker, game.ConditionConfused, 0)

	s = s.EndTurn(dm).EndTurn(dm)

	assert.Equal(t, game.ConditionConfused, s.Card(tb.Attacker).Condition)
}

func TestOnTurnEndRunsBeforeExpiry(t *testing.T) {
	tb := table()
	dm := gametest.NewScriptedDecisionMaker(t)
	s := tb.State.AddEffect(onCard("ticker", tb.Defender, game.EndOfTurn(0, 0)))

	s = s.EndTurn(dm)
	assert.Equal(t, 10, s.Card(tb.Defender).Damage)
	assert.Empty(t, s.Effects())

	s = s.EndTurn(dm)
	assert.Equal(t, 10, s.Card(tb.Defender).Damage)
}
