package game

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// CardFile represents the top-level YAML structure of a card database.
type CardFile struct {
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a single card in the YAML file.
type CardEntry struct {
	Name       string        `yaml:"name"`
	Kind       string        `yaml:"kind"`
	HP         int           `yaml:"hp"`
	Type       EnergyType    `yaml:"type"`
	Weakness   EnergyType    `yaml:"weakness"`
	Resistance EnergyType    `yaml:"resistance"`
	Retreat    int           `yaml:"retreat"`
	Text       string        `yaml:"text"`
	Attacks    []AttackEntry `yaml:"attacks"`
}

// AttackEntry represents an attack; Steps is compiled by the attack package.
type AttackEntry struct {
	Name   string       `yaml:"name"`
	Cost   []EnergyType `yaml:"cost"`
	Damage int          `yaml:"damage"`
	Text   string       `yaml:"text"`
	Steps  yaml.Node    `yaml:"steps"`
}

// CardDB maps card names to definitions.
type CardDB map[string]*Card

// ParseCardFile reads and parses a YAML card database.
func ParseCardFile(path string) (CardDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	db, err := ParseCards(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// ParseCards parses a YAML card database. Basic energy cards are always present.
func ParseCards(data []byte) (CardDB, error) {
	var cf CardFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse card YAML: %w", err)
	}

	db := make(CardDB)
	for t := EnergyGrass; t <= EnergyMetal; t++ {
		e := EnergyCard(t)
		db[e.Name] = e
	}
	for _, entry := range cf.Cards {
		if entry.Name == "" {
			return nil, fmt.Errorf("card entry missing 'name'")
		}
		if _, dup := db[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate card %q", entry.Name)
		}
		card, err := entry.toCard()
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", entry.Name, err)
		}
		db[card.Name] = card
	}
	return db, nil
}

func (e CardEntry) toCard() (*Card, error) {
	card := &Card{
		Name:        e.Name,
		HP:          e.HP,
		Type:        e.Type,
		Weakness:    e.Weakness,
		Resistance:  e.Resistance,
		RetreatCost: e.Retreat,
		Text:        e.Text,
	}
	switch e.Kind {
	case "", "pokemon":
		card.Kind = KindPokemon
		if e.HP <= 0 {
			return nil, fmt.Errorf("pokemon needs positive hp")
		}
	case "energy":
		card.Kind = KindEnergy
	case "trainer":
		card.Kind = KindTrainer
	default:
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}
	for _, a := range e.Attacks {
		if a.Name == "" {
			return nil, fmt.Errorf("attack missing 'name'")
		}
		card.Attacks = append(card.Attacks, Attack{
			Name:   a.Name,
			Cost:   Cost(a.Cost),
			Damage: a.Damage,
			Text:   a.Text,
			Script: a.Steps,
		})
	}
	return card, nil
}

// Lookup returns the named card. Panics if the card is not found.
func (db CardDB) Lookup(name string) *Card {
	card, ok := db[name]
	if !ok {
		panic(fmt.Sprintf("card not found in database: %q", name))
	}
	return card
}

// Names returns all card names, sorted.
func (db CardDB) Names() []string {
	names := make([]string, 0, len(db))
	for name := range db {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
