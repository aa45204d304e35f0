package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- Enums ---

// PlayerID identifies one of the two players (0 or 1).
type PlayerID int

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	return 1 - p
}

func (p PlayerID) String() string {
	return fmt.Sprintf("P%d", int(p)+1)
}

// EnergyType is both a card's type and the type an energy unit provides.
type EnergyType int

const (
	EnergyNone EnergyType = iota
	EnergyColorless
	EnergyGrass
	EnergyFire
	EnergyWater
	EnergyLightning
	EnergyPsychic
	EnergyFighting
	EnergyDarkness
	EnergyMetal
)

var energyNames = map[EnergyType]string{
	EnergyNone:      "None",
	EnergyColorless: "Colorless",
	EnergyGrass:     "Grass",
	EnergyFire:      "Fire",
	EnergyWater:     "Water",
	EnergyLightning: "Lightning",
	EnergyPsychic:   "Psychic",
	EnergyFighting:  "Fighting",
	EnergyDarkness:  "Darkness",
	EnergyMetal:     "Metal",
}

func (e EnergyType) String() string {
	if name, ok := energyNames[e]; ok {
		return name
	}
	return "Unknown"
}

// ParseEnergyType parses an energy type name (case-insensitive).
func ParseEnergyType(s string) (EnergyType, error) {
	for t, name := range energyNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return EnergyNone, fmt.Errorf("unknown energy type %q", s)
}

// UnmarshalYAML lets card files spell energy types by name.
func (e *EnergyType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	t, err := ParseEnergyType(s)
	if err != nil {
		return err
	}
	*e = t
	return nil
}

type CardKind int

const (
	KindPokemon CardKind = iota
	KindEnergy
	KindTrainer
)

func (k CardKind) String() string {
	switch k {
	case KindPokemon:
		return "Pokemon"
	case KindEnergy:
		return "Energy"
	case KindTrainer:
		return "Trainer"
	default:
		return "Unknown"
	}
}

// SpecialCondition is the rotation-style condition of an active card.
// Asleep, Confused and Paralyzed replace each other; poison is tracked separately.
type SpecialCondition int

const (
	ConditionNone SpecialCondition = iota
	ConditionAsleep
	ConditionConfused
	ConditionParalyzed
)

func (c SpecialCondition) String() string {
	switch c {
	case ConditionAsleep:
		return "Asleep"
	case ConditionConfused:
		return "Confused"
	case ConditionParalyzed:
		return "Paralyzed"
	default:
		return "None"
	}
}

// ParseCondition parses a special condition name (case-insensitive).
// The empty string is ConditionNone.
func ParseCondition(s string) (SpecialCondition, error) {
	for c := ConditionNone; c <= ConditionParalyzed; c++ {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	if s == "" {
		return ConditionNone, nil
	}
	return ConditionNone, fmt.Errorf("unknown special condition %q", s)
}

// --- Card definition (static, from the card database) ---

// Attack is one attack printed on a card. Pipeline, when set, takes precedence
// over Script; with neither, the attack pays its cost and does Damage.
type Attack struct {
	Name     string
	Cost     Cost
	Damage   int
	Text     string
	Script   yaml.Node
	Pipeline Pipeline
}

func (a Attack) String() string {
	return a.Name
}

type Card struct {
	Name        string
	Kind        CardKind
	HP          int
	Type        EnergyType // Pokemon type, or the type an energy card provides
	Weakness    EnergyType
	Resistance  EnergyType
	RetreatCost int
	Attacks     []Attack
	Text        string
}

func (c *Card) String() string {
	return c.Name
}

// Attack returns the printed attack with the given name.
func (c *Card) Attack(name string) (Attack, bool) {
	for _, a := range c.Attacks {
		if a.Name == name {
			return a, true
		}
	}
	return Attack{}, false
}

// EnergyCard builds a basic energy card of the given type.
func EnergyCard(t EnergyType) *Card {
	return &Card{
		Name: t.String() + " Energy",
		Kind: KindEnergy,
		Type: t,
	}
}

// --- In-play cards ---

// CardRef identifies an in-play card by owning player and stable in-play id.
type CardRef struct {
	Player PlayerID
	ID     int
}

func (r CardRef) String() string {
	return fmt.Sprintf("%s#%d", r.Player, r.ID)
}

// InPlay is a Pokemon on the field (active or benched).
type InPlay struct {
	ID             int
	Owner          PlayerID
	Card           *Card
	Damage         int // in HP; one damage counter is 10
	Energy         []*Card
	Condition      SpecialCondition
	PoisonCounters int // 0 not poisoned, 1 poisoned, 2 severely poisoned
}

// Ref returns this card's reference.
func (ip *InPlay) Ref() CardRef {
	return CardRef{Player: ip.Owner, ID: ip.ID}
}

// DamageCounters returns the number of damage counters on the card.
func (ip *InPlay) DamageCounters() int {
	return ip.Damage / 10
}

// RemainingHP returns printed HP minus damage, never negative.
func (ip *InPlay) RemainingHP() int {
	hp := ip.Card.HP - ip.Damage
	if hp < 0 {
		return 0
	}
	return hp
}

// EnergyTypes lists the energy units attached to the card.
func (ip *InPlay) EnergyTypes() []EnergyType {
	types := make([]EnergyType, len(ip.Energy))
	for i, e := range ip.Energy {
		types[i] = e.Type
	}
	return types
}

func (ip *InPlay) String() string {
	if ip == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s (%d/%d HP)", ip.Card.Name, ip.RemainingHP(), ip.Card.HP)
}

func (ip *InPlay) clone() *InPlay {
	if ip == nil {
		return nil
	}
	c := *ip
	c.Energy = append([]*Card(nil), ip.Energy...)
	return &c
}
