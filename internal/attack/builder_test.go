package attack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/ptcgx/internal/attack"
	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/game/gametest"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

var base = attack.BaseFormat()

func electabuzz() *game.Card {
	return gametest.Pokemon("Electabuzz", 70, game.EnergyLightning)
}

func seel() *game.Card {
	return gametest.Pokemon("Seel", 60, game.EnergyWater)
}

func newTable(t *testing.T, attacker, defender *game.Card) (*gametest.Table, *gametest.ScriptedDecisionMaker) {
	t.Helper()
	return gametest.NewTable(base, attacker, defender), gametest.NewScriptedDecisionMaker(t)
}

func TestAttackCost(t *testing.T) {
	L, F, C := game.EnergyLightning, game.EnergyFire, game.EnergyColorless
	tests := []struct {
		name     string
		cost     game.Cost
		attached []game.EnergyType
		failed   bool
	}{
		{"free", nil, nil, false},
		{"exact", game.Cost{L}, []game.EnergyType{L}, false},
		{"missing colorless", game.Cost{L, C}, []game.EnergyType{L}, true},
		{"colorless paid by other type", game.Cost{L, C}, []game.EnergyType{L, F}, false},
		{"wrong type", game.Cost{F}, []game.EnergyType{L, L}, true},
		{"typed before colorless", game.Cost{C, L}, []game.EnergyType{F, L}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tb, dm := newTable(t, electabuzz(), seel())
			for _, e := range tc.attached {
				tb.Attach(tb.Attacker, game.EnergyCard(e))
			}

			ctx := attack.New().AttackCost(tc.cost).Damage(30).Apply(tb.State, dm)

			assert.Equal(t, tc.failed, ctx.Failed())
			assert.Equal(t, tc.cost, ctx.Cost())
			// Steps after the cost still run against the in-flight state.
			assert.Equal(t, 30, ctx.Current().Card(tb.Defender).Damage)
			if tc.failed {
				assert.Same(t, tb.State, ctx.Engine())
				assert.Equal(t, 0, ctx.Engine().Card(tb.Defender).Damage)
				assert.Len(t, tb.Logger.EventsOfType(log.EventAttackFailed), 1)
			} else {
				assert.Equal(t, 30, ctx.Engine().Card(tb.Defender).Damage)
			}
		})
	}
}

func TestBuilderIsImmutable(t *testing.T) {
	b := attack.New().Damage(10)
	longer := b.Paralyze()
	other := b.Poison()

	assert.Equal(t, 1, b.Len())
	assert.Equal(t, "[damage(10), paralyze]", longer.String())
	assert.Equal(t, "[damage(10), poison]", other.String())
}

func TestChain(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())

	b := attack.New().Damage(10).Chain(attack.New().Damage(20))
	require.Equal(t, 2, b.Len())

	ctx := b.Apply(tb.State, dm)
	assert.Equal(t, 30, ctx.DamageDone())
	assert.Equal(t, 30, ctx.Engine().Card(tb.Defender).Damage)
}

func TestString(t *testing.T) {
	b := attack.New().
		AttackCost(game.Cost{game.EnergyLightning, game.EnergyColorless}).
		FlipACoin().
		IfHeads(attack.New().Paralyze()).
		IfTails(attack.New().Damage(10).Confuse()).
		Must(attack.New().DiscardAttackingEnergy(game.EnergyFire, 2))

	assert.Equal(t, "[attack_cost(Lightning+Colorless), flip_coins(1), if_heads[paralyze], "+
		"if_tails[damage(10), confuse], must[discard_attacking_energy(Fire,2)]]", b.String())
	assert.Equal(t, "[]", attack.New().String())
}

func TestDoesNotMutateInput(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	tb.Attach(tb.Defender, game.EnergyCard(game.EnergyWater))
	before := tb.State

	attack.New().Damage(30).Paralyze().DiscardDefendingEnergy(game.EnergyWater, 1).Apply(before, dm)

	def := before.Card(tb.Defender)
	assert.Equal(t, 0, def.Damage)
	assert.Equal(t, game.ConditionNone, def.Condition)
	assert.Len(t, def.Energy, 1)
}

func TestIfHeadsUsesMostRecentFlip(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	dm.AddFlips(true, false)

	b := attack.New().
		FlipACoin().
		IfHeads(attack.New().FlipACoin()).
		IfHeads(attack.New().Damage(30)).
		IfTails(attack.New().Damage(10))

	ctx := b.Apply(tb.State, dm)

	require.Len(t, ctx.Flips(), 2)
	assert.Equal(t, 0, ctx.Heads())
	assert.Equal(t, 10, ctx.DamageDone())
	assert.Equal(t, 10, ctx.Engine().Card(tb.Defender).Damage)
	assert.Equal(t, 0, dm.Remaining())
}

func TestIfHeadsNeedsExactlyOneHeads(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	dm.AddFlips(true, true)

	ctx := attack.New().FlipCoins(2).IfHeads(attack.New().Paralyze()).Apply(tb.State, dm)

	assert.Equal(t, 2, ctx.Heads())
	assert.Equal(t, game.ConditionNone, ctx.Engine().Card(tb.Defender).Condition)
}

func TestIfTailsWithoutFlip(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())

	ctx := attack.New().IfTails(attack.New().Damage(10)).Apply(tb.State, dm)

	assert.Equal(t, 10, ctx.DamageDone())
	assert.Equal(t, 0, dm.Flipped())
}

func TestIfDidDamage(t *testing.T) {
	t.Run("damage dealt", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		ctx := attack.New().Damage(10).IfDidDamage(attack.New().Paralyze()).Apply(tb.State, dm)
		assert.Equal(t, game.ConditionParalyzed, ctx.Engine().Card(tb.Defender).Condition)
	})
	t.Run("all damage resisted", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), gametest.WithResistance(seel(), game.EnergyLightning))
		ctx := attack.New().Damage(20).IfDidDamage(attack.New().Paralyze()).Apply(tb.State, dm)
		assert.Equal(t, 0, ctx.DamageDone())
		assert.Equal(t, game.ConditionNone, ctx.Engine().Card(tb.Defender).Condition)
	})
	t.Run("damage dealt before a nested branch", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		dm.AddFlips(true)
		ctx := attack.New().
			Damage(20).
			FlipACoin().
			IfHeads(attack.New().IfDidDamage(attack.New().Paralyze().Damage(10))).
			Apply(tb.State, dm)

		assert.Equal(t, game.ConditionParalyzed, ctx.Engine().Card(tb.Defender).Condition)
		assert.Equal(t, 30, ctx.DamageDone(), "nested damage is counted once")
		assert.Equal(t, 30, ctx.Engine().Card(tb.Defender).Damage)
	})
}

func TestMust(t *testing.T) {
	t.Run("partial discard fails and rolls back", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		tb.Attach(tb.Attacker, game.EnergyCard(game.EnergyFire))

		b := attack.New().Must(attack.New().
			DiscardAttackingEnergy(game.EnergyFire, 2).
			Damage(30))
		ctx := b.Apply(tb.State, dm)

		assert.True(t, ctx.Failed())
		assert.Equal(t, []game.ActionResult{game.ActionPartial}, ctx.Results())
		assert.Same(t, tb.State, ctx.Engine())
		// The damage after the partial discard still happened in flight.
		assert.Equal(t, 30, ctx.Current().Card(tb.Defender).Damage)
		assert.Empty(t, ctx.Current().Card(tb.Attacker).Energy)
		assert.Len(t, ctx.Engine().Card(tb.Attacker).Energy, 1)
	})
	t.Run("nothing to discard", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		ctx := attack.New().Must(attack.New().DiscardAttackingEnergy(game.EnergyFire, 1)).Apply(tb.State, dm)
		assert.True(t, ctx.Failed())
		assert.Equal(t, []game.ActionResult{game.ActionNone}, ctx.Results())
	})
	t.Run("full discard succeeds", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		tb.Attach(tb.Attacker, gametest.Energy(game.EnergyFire, 2)...)

		ctx := attack.New().Must(attack.New().DiscardAttackingEnergy(game.EnergyFire, 2)).Damage(30).Apply(tb.State, dm)

		assert.False(t, ctx.Failed())
		assert.Empty(t, ctx.Engine().Card(tb.Attacker).Energy)
		assert.Equal(t, 30, ctx.Engine().Card(tb.Defender).Damage)
		assert.Len(t, ctx.Engine().Player(0).Discard, 2)
	})
	t.Run("only audits its own results", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		tb.Attach(tb.Attacker, game.EnergyCard(game.EnergyFire))

		ctx := attack.New().
			DiscardAttackingEnergy(game.EnergyFire, 2).
			Must(attack.New().Damage(10)).
			Apply(tb.State, dm)

		assert.False(t, ctx.Failed())
		assert.Equal(t, []game.ActionResult{game.ActionPartial}, ctx.Results())
	})
}

func TestEachOpponentsBench(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	chansey := tb.Bench(1, gametest.Pokemon("Chansey", 120, game.EnergyColorless))
	// Weakness never applies to benched cards.
	psyduck := tb.Bench(1, gametest.WithWeakness(gametest.Pokemon("Psyduck", 50, game.EnergyWater), game.EnergyLightning))
	rattata := tb.Bench(1, gametest.Pokemon("Rattata", 30, game.EnergyColorless))
	own := tb.Bench(0, gametest.Pokemon("Pikachu", 40, game.EnergyLightning))

	ctx := attack.New().EachOpponentsBench(attack.New().Damage(10)).Apply(tb.State, dm)
	s := ctx.Engine()

	assert.Equal(t, 30, ctx.DamageDone())
	for _, ref := range []game.CardRef{chansey, psyduck, rattata} {
		assert.Equal(t, 10, s.Card(ref).Damage, ref.String())
	}
	assert.Equal(t, 0, s.Card(tb.Defender).Damage)
	assert.Equal(t, 0, s.Card(own).Damage)
	assert.Len(t, tb.Logger.EventsOfType(log.EventDamage), 3)
	require.NotNil(t, s.Defending())
	assert.Equal(t, tb.Defender, s.Defending().Ref())
}

func TestEachOwnBench(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	pikachu := tb.Bench(0, gametest.Pokemon("Pikachu", 40, game.EnergyLightning))
	voltorb := tb.Bench(0, gametest.Pokemon("Voltorb", 40, game.EnergyLightning))

	ctx := attack.New().EachOwnBench(attack.New().Damage(10)).Damage(30).Apply(tb.State, dm)
	s := ctx.Engine()

	assert.Equal(t, 10, s.Card(pikachu).Damage)
	assert.Equal(t, 10, s.Card(voltorb).Damage)
	assert.Equal(t, 30, s.Card(tb.Defender).Damage)
}

func TestEachBenchEmpty(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	ctx := attack.New().EachOpponentsBench(attack.New().Damage(10)).Apply(tb.State, dm)
	assert.Equal(t, 0, ctx.DamageDone())
}

func TestPreventAndFailDoNotShortCircuit(t *testing.T) {
	t.Run("prevent", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		ctx := attack.New().Prevent().Damage(10).Apply(tb.State, dm)
		assert.True(t, ctx.Prevented())
		assert.False(t, ctx.Failed())
		assert.Equal(t, 10, ctx.Engine().Card(tb.Defender).Damage)
	})
	t.Run("fail", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		ctx := attack.New().Fail().Damage(10).Apply(tb.State, dm)
		assert.True(t, ctx.Failed())
		assert.Equal(t, 10, ctx.Current().Card(tb.Defender).Damage)
		assert.Same(t, tb.State, ctx.Engine())
	})
	t.Run("nested prevent reaches the parent", func(t *testing.T) {
		tb, dm := newTable(t, electabuzz(), seel())
		dm.AddFlips(true)
		ctx := attack.New().FlipACoin().IfHeads(attack.New().Prevent()).Apply(tb.State, dm)
		assert.True(t, ctx.Prevented())
	})
}

func TestOnTarget(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	bench := tb.Bench(1, gametest.Pokemon("Rattata", 30, game.EnergyColorless))

	ctx := attack.New().OnTarget(bench, attack.New().PutDamageCountersOnDefending(2)).Apply(tb.State, dm)

	assert.Equal(t, 20, ctx.Engine().Card(bench).Damage)
	assert.Equal(t, tb.Defender, ctx.Engine().Defending().Ref())
}
