package attack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/peterkuimelis/ptcgx/internal/attack"
	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/game/gametest"
	gamemock "github.com/peterkuimelis/ptcgx/internal/game/mock"
	"github.com/peterkuimelis/ptcgx/internal/log"
)

func TestSpecialConditions(t *testing.T) {
	tests := []struct {
		name string
		b    *attack.Builder
		want game.SpecialCondition
	}{
		{"asleep", attack.New().Asleep(), game.ConditionAsleep},
		{"confuse", attack.New().Confuse(), game.ConditionConfused},
		{"paralyze", attack.New().Paralyze(), game.ConditionParalyzed},
		{"last one wins", attack.New().Asleep().Paralyze(), game.ConditionParalyzed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tb, dm := newTable(t, electabuzz(), seel())
			ctx := tc.b.Apply(tb.State, dm)
			assert.Equal(t, tc.want, ctx.Engine().Card(tb.Defender).Condition)
			assert.NotEmpty(t, tb.Logger.EventsOfType(log.EventSpecialCondition))
		})
	}
}

func TestPoison(t *testing.T) {
	tb, dm := newTable(t, gametest.Pokemon("Nidoking", 90, game.EnergyGrass), seel())

	ctx := attack.New().Poison().Apply(tb.State, dm)
	assert.Equal(t, 1, ctx.Engine().Card(tb.Defender).PoisonCounters)

	ctx = attack.New().SeverePoison().Poison().Apply(tb.State, dm)
	assert.Equal(t, 2, ctx.Engine().Card(tb.Defender).PoisonCounters, "severe poison is not downgraded")

	ctx = attack.New().Poison().Paralyze().Apply(tb.State, dm)
	def := ctx.Engine().Card(tb.Defender)
	assert.Equal(t, 1, def.PoisonCounters)
	assert.Equal(t, game.ConditionParalyzed, def.Condition)
}

func TestConditionsSkipBenchedCards(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	bench := tb.Bench(1, gametest.Pokemon("Rattata", 30, game.EnergyColorless))

	ctx := attack.New().EachOpponentsBench(attack.New().Paralyze().Poison()).Apply(tb.State, dm)

	card := ctx.Engine().Card(bench)
	assert.Equal(t, game.ConditionNone, card.Condition)
	assert.Equal(t, 0, card.PoisonCounters)
}

func TestAttackingConditions(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())

	ctx := attack.New().ConfuseAttacking().Apply(tb.State, dm)
	assert.Equal(t, game.ConditionConfused, ctx.Engine().Card(tb.Attacker).Condition)

	ctx = attack.New().AsleepAttacking().Apply(tb.State, dm)
	assert.Equal(t, game.ConditionAsleep, ctx.Engine().Card(tb.Attacker).Condition)
}

func TestHealAttacking(t *testing.T) {
	tb, dm := newTable(t, gametest.Pokemon("Chansey", 120, game.EnergyColorless), seel())
	tb.Damage(tb.Attacker, 30)

	ctx := attack.New().HealAttacking(20).Apply(tb.State, dm)
	assert.Equal(t, 10, ctx.Engine().Card(tb.Attacker).Damage)

	ctx = attack.New().HealAttacking(50).Apply(tb.State, dm)
	assert.Equal(t, 0, ctx.Engine().Card(tb.Attacker).Damage)

	ctx = attack.New().HealAllAttacking().Apply(tb.State, dm)
	assert.Equal(t, 0, ctx.Engine().Card(tb.Attacker).Damage)
	assert.Len(t, tb.Logger.EventsOfType(log.EventHeal), 3)
}

func TestSwitchDefending(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	tb.State = tb.State.WithCondition(tb.Defender, game.ConditionParalyzed, 1)
	tb.Bench(1, gametest.Pokemon("Rattata", 30, game.EnergyColorless))
	chansey := tb.Bench(1, gametest.Pokemon("Chansey", 120, game.EnergyColorless))
	dm.AddCardChoice("Chansey")

	ctx := attack.New().SwitchDefending().Damage(20).Apply(tb.State, dm)
	s := ctx.Engine()

	require.NotNil(t, s.Active(1))
	assert.Equal(t, chansey, s.Active(1).Ref())
	assert.Equal(t, 20, s.Card(chansey).Damage)

	old := s.Card(tb.Defender)
	assert.False(t, s.IsActive(tb.Defender))
	assert.Equal(t, game.ConditionNone, old.Condition)
	assert.Equal(t, 0, old.PoisonCounters)
	assert.Equal(t, 0, old.Damage)

	choices := tb.Logger.EventsOfType(log.EventChoice)
	require.Len(t, choices, 1)
	assert.Equal(t, 1, choices[0].Player, "the opponent chooses")
}

func TestGustDefendingChooser(t *testing.T) {
	ctrl := gomock.NewController(t)
	dm := gamemock.NewMockDecisionMaker(ctrl)

	tb := gametest.NewTable(base, electabuzz(), seel())
	rattata := tb.Bench(1, gametest.Pokemon("Rattata", 30, game.EnergyColorless))

	dm.EXPECT().
		PickCard(gomock.Any(), game.PlayerID(0), gomock.Any(), []game.CardRef{rattata}).
		Return(rattata)

	ctx := attack.New().GustDefending().Damage(30).Apply(tb.State, dm)
	s := ctx.Engine()

	assert.Equal(t, rattata, s.Active(1).Ref())
	assert.Equal(t, 30, s.Card(rattata).Damage)
}

func TestSwitchWithEmptyBench(t *testing.T) {
	ctrl := gomock.NewController(t)
	dm := gamemock.NewMockDecisionMaker(ctrl)
	tb := gametest.NewTable(base, electabuzz(), seel())

	ctx := attack.New().SwitchDefending().GustDefending().Apply(tb.State, dm)

	assert.Equal(t, tb.Defender, ctx.Engine().Active(1).Ref())
}

func TestKnockOutAttacking(t *testing.T) {
	tb, dm := newTable(t, electabuzz(), seel())
	tb.Attach(tb.Attacker, game.EnergyCard(game.EnergyLightning))

	ctx := attack.New().KnockOutAttacking().Apply(tb.State, dm)
	s := ctx.Engine()

	assert.Nil(t, s.Active(0))
	assert.Equal(t, 1, s.Player(1).PrizesTaken)
	assert.Len(t, s.Player(0).Discard, 2)
}

func TestDraw(t *testing.T) {
	tb, dm := newTable(t, gametest.Pokemon("Kangaskhan", 90, game.EnergyColorless), seel())
	deck := []*game.Card{game.EnergyCard(game.EnergyGrass), game.EnergyCard(game.EnergyFire), game.EnergyCard(game.EnergyWater)}
	tb.State = tb.State.WithDeck(0, deck)

	ctx := attack.New().Draw(2).Apply(tb.State, dm)
	p := ctx.Engine().Player(0)

	require.Len(t, p.Hand, 2)
	assert.Equal(t, "Water Energy", p.Hand[0].Name)
	assert.Equal(t, "Fire Energy", p.Hand[1].Name)
	assert.Len(t, p.Deck, 1)

	ctx = attack.New().Draw(5).Apply(tb.State, dm)
	assert.Len(t, ctx.Engine().Player(0).Hand, 3)
	assert.Empty(t, ctx.Engine().Player(0).Deck)
}

func TestDiscardEnergy(t *testing.T) {
	tests := []struct {
		name     string
		attached []game.EnergyType
		filter   game.EnergyType
		n        int
		want     game.ActionResult
		left     int
	}{
		{"full", []game.EnergyType{game.EnergyWater, game.EnergyWater}, game.EnergyWater, 2, game.ActionFull, 0},
		{"partial", []game.EnergyType{game.EnergyWater, game.EnergyFire}, game.EnergyWater, 2, game.ActionPartial, 1},
		{"none of type", []game.EnergyType{game.EnergyFire}, game.EnergyWater, 1, game.ActionNone, 1},
		{"colorless matches any", []game.EnergyType{game.EnergyFire, game.EnergyWater}, game.EnergyColorless, 1, game.ActionFull, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tb, dm := newTable(t, electabuzz(), seel())
			for _, e := range tc.attached {
				tb.Attach(tb.Defender, game.EnergyCard(e))
			}

			ctx := attack.New().DiscardDefendingEnergy(tc.filter, tc.n).Apply(tb.State, dm)

			assert.Equal(t, []game.ActionResult{tc.want}, ctx.Results())
			assert.Len(t, ctx.Engine().Card(tb.Defender).Energy, tc.left)
		})
	}
}
