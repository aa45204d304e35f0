package attack

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/ptcgx/internal/game"
)

// Scripts are the data form of a pipeline, stored on attacks in the card
// database. A script is a sequence of steps; each step is either a bare
// operation name or a single-key mapping from the name to its argument:
//
//	steps:
//	  - attack_cost
//	  - flip_a_coin
//	  - if_heads: [paralyze]
//	  - damage: 30
//	  - damage_plus_per_extra_energy_on_attacking: {base: 10, per: 20, type: Fire, limit: 3}
//
// Branching operations take a nested script as their argument.

type compileFunc func(b *Builder, arg *yaml.Node, atk game.Attack) (*Builder, error)

// formula holds the named arguments of damage formulas.
type formula struct {
	Base  int             `yaml:"base"`
	Per   int             `yaml:"per"`
	Type  game.EnergyType `yaml:"type"`
	Limit int             `yaml:"limit"`
}

type discardArgs struct {
	Type  game.EnergyType `yaml:"type"`
	Count int             `yaml:"count"`
}

var ops map[string]compileFunc

func init() {
	ops = map[string]compileFunc{
		"attack_cost": func(b *Builder, arg *yaml.Node, atk game.Attack) (*Builder, error) {
			if arg == nil {
				return b.AttackCost(atk.Cost), nil
			}
			var cost []game.EnergyType
			if err := arg.Decode(&cost); err != nil {
				return nil, err
			}
			return b.AttackCost(cost), nil
		},
		"flip_a_coin":          noArg((*Builder).FlipACoin),
		"flip_coins":           intArg((*Builder).FlipCoins),
		"if_heads":             subArg((*Builder).IfHeads),
		"if_tails":             subArg((*Builder).IfTails),
		"if_did_damage":        subArg((*Builder).IfDidDamage),
		"must":                 subArg((*Builder).Must),
		"each_own_bench":       subArg((*Builder).EachOwnBench),
		"each_opponents_bench": subArg((*Builder).EachOpponentsBench),
		"prevent":              noArg((*Builder).Prevent),
		"fail":                 noArg((*Builder).Fail),

		"damage": func(b *Builder, arg *yaml.Node, atk game.Attack) (*Builder, error) {
			if arg == nil {
				return b.Damage(atk.Damage), nil
			}
			return intArg((*Builder).Damage)(b, arg, atk)
		},
		"damage_self":      intArg((*Builder).DamageSelf),
		"damage_per_heads": intArg((*Builder).DamagePerHeads),
		"damage_plus_per_energy_card_on_defending": formulaArg(func(b *Builder, f formula) *Builder {
			return b.DamagePlusPerEnergyCardOnDefending(f.Base, f.Per)
		}),
		"damage_plus_per_damage_counter_on_defending": formulaArg(func(b *Builder, f formula) *Builder {
			return b.DamagePlusPerDamageCounterOnDefending(f.Base, f.Per)
		}),
		"damage_per_damage_counter_on_itself": intArg((*Builder).DamagePerDamageCounterOnItself),
		"damage_minus_per_damage_counter_on_itself": formulaArg(func(b *Builder, f formula) *Builder {
			return b.DamageMinusPerDamageCounterOnItself(f.Base, f.Per)
		}),
		"damage_half_defending_remaining_hp": noArg((*Builder).DamageHalfDefendingRemainingHP),
		"damage_plus_per_extra_energy_on_attacking": formulaArg(func(b *Builder, f formula) *Builder {
			return b.DamagePlusPerExtraEnergyOnAttacking(f.Base, f.Per, f.Type, f.Limit)
		}),
		"put_damage_counters_on_defending": intArg((*Builder).PutDamageCountersOnDefending),

		"asleep":                   noArg((*Builder).Asleep),
		"confuse":                  noArg((*Builder).Confuse),
		"paralyze":                 noArg((*Builder).Paralyze),
		"poison":                   noArg((*Builder).Poison),
		"severe_poison":            noArg((*Builder).SeverePoison),
		"confuse_attacking":        noArg((*Builder).ConfuseAttacking),
		"asleep_attacking":         noArg((*Builder).AsleepAttacking),
		"heal_attacking":           intArg((*Builder).HealAttacking),
		"heal_all_attacking":       noArg((*Builder).HealAllAttacking),
		"switch_defending":         noArg((*Builder).SwitchDefending),
		"gust_defending":           noArg((*Builder).GustDefending),
		"knock_out_attacking":      noArg((*Builder).KnockOutAttacking),
		"draw":                     intArg((*Builder).Draw),
		"discard_attacking_energy": discardArg((*Builder).DiscardAttackingEnergy),
		"discard_defending_energy": discardArg((*Builder).DiscardDefendingEnergy),

		"change_attacking_resistance_except":                typesArg((*Builder).ChangeAttackingResistanceExcept),
		"change_defending_weakness_except":                  typesArg((*Builder).ChangeDefendingWeaknessExcept),
		"disable_defending_attack":                          noArg((*Builder).DisableDefendingAttack),
		"prevent_damage_during_opponents_next_turn":         noArg((*Builder).PreventDamageDuringOpponentsNextTurn),
		"prevent_damage_at_most_during_opponents_next_turn": intArg((*Builder).PreventDamageAtMostDuringOpponentsNextTurn),
		"reduce_defending_attack_damage":                    intArg((*Builder).ReduceDefendingAttackDamage),
		"block_opponents_trainers":                          noArg((*Builder).BlockOpponentsTrainers),
		"block_opponents_energy_attachment":                 noArg((*Builder).BlockOpponentsEnergyAttachment),
		"destiny_bond":                                      noArg((*Builder).DestinyBond),
		"flip_to_attack_defending":                          noArg((*Builder).FlipToAttackDefending),
		"endure_during_opponents_next_turn":                 noArg((*Builder).EndureDuringOpponentsNextTurn),
		"delayed_damage_on_defending":                       intArg((*Builder).DelayedDamageOnDefending),
		"once_while_in_play": func(b *Builder, arg *yaml.Node, atk game.Attack) (*Builder, error) {
			if arg == nil {
				return b.OnceWhileInPlay(atk.Name), nil
			}
			var name string
			if err := arg.Decode(&name); err != nil {
				return nil, err
			}
			return b.OnceWhileInPlay(name), nil
		},
	}
}

// Operations lists the operation names a script may use, sorted.
func Operations() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile turns a step script into a pipeline. Operations that default their
// argument (attack_cost, damage, once_while_in_play) read it from atk.
func Compile(node *yaml.Node, atk game.Attack) (*Builder, error) {
	b, err := compileSeq(node, atk)
	if err != nil {
		return nil, fmt.Errorf("attack %q: %w", atk.Name, err)
	}
	return b, nil
}

func compileSeq(node *yaml.Node, atk game.Attack) (*Builder, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: steps must be a list", node.Line)
	}
	b := New()
	for _, step := range node.Content {
		var (
			name string
			arg  *yaml.Node
		)
		switch step.Kind {
		case yaml.ScalarNode:
			name = step.Value
		case yaml.MappingNode:
			if len(step.Content) != 2 {
				return nil, fmt.Errorf("line %d: step must have exactly one operation", step.Line)
			}
			name, arg = step.Content[0].Value, step.Content[1]
		default:
			return nil, fmt.Errorf("line %d: malformed step", step.Line)
		}
		op, ok := ops[name]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operation %q", step.Line, name)
		}
		next, err := op(b, arg, atk)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", step.Line, name, err)
		}
		b = next
	}
	return b, nil
}

func noArg(f func(*Builder) *Builder) compileFunc {
	return func(b *Builder, arg *yaml.Node, _ game.Attack) (*Builder, error) {
		if arg != nil {
			return nil, fmt.Errorf("takes no argument")
		}
		return f(b), nil
	}
}

func intArg(f func(*Builder, int) *Builder) compileFunc {
	return func(b *Builder, arg *yaml.Node, _ game.Attack) (*Builder, error) {
		if arg == nil {
			return nil, fmt.Errorf("needs a number")
		}
		var n int
		if err := arg.Decode(&n); err != nil {
			return nil, err
		}
		return f(b, n), nil
	}
}

func subArg(f func(*Builder, *Builder) *Builder) compileFunc {
	return func(b *Builder, arg *yaml.Node, atk game.Attack) (*Builder, error) {
		if arg == nil {
			return nil, fmt.Errorf("needs a list of steps")
		}
		sub, err := compileSeq(arg, atk)
		if err != nil {
			return nil, err
		}
		return f(b, sub), nil
	}
}

func formulaArg(f func(*Builder, formula) *Builder) compileFunc {
	return func(b *Builder, arg *yaml.Node, _ game.Attack) (*Builder, error) {
		if arg == nil || arg.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("needs a mapping of base/per arguments")
		}
		var fm formula
		if err := arg.Decode(&fm); err != nil {
			return nil, err
		}
		return f(b, fm), nil
	}
}

func discardArg(f func(*Builder, game.EnergyType, int) *Builder) compileFunc {
	return func(b *Builder, arg *yaml.Node, _ game.Attack) (*Builder, error) {
		if arg == nil || arg.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("needs a mapping with type and count")
		}
		args := discardArgs{Type: game.EnergyColorless, Count: 1}
		if err := arg.Decode(&args); err != nil {
			return nil, err
		}
		return f(b, args.Type, args.Count), nil
	}
}

func typesArg(f func(*Builder, ...game.EnergyType) *Builder) compileFunc {
	return func(b *Builder, arg *yaml.Node, _ game.Attack) (*Builder, error) {
		var types []game.EnergyType
		if arg != nil {
			if err := arg.Decode(&types); err != nil {
				return nil, err
			}
		}
		return f(b, types...), nil
	}
}
