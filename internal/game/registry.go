package game

import (
	"fmt"
	"sort"
)

// Format is a ruleset: the CustomEffect registry keyed by consequence
// identifier plus the energy types that exist. Built once, then read-only.
type Format struct {
	Name        string
	effects     map[string]CustomEffect
	energyTypes []EnergyType
}

// NewFormat creates a format with the given energy types and effects.
// Panics on duplicate identifiers.
func NewFormat(name string, energyTypes []EnergyType, effects ...CustomEffect) *Format {
	f := &Format{
		Name:        name,
		effects:     make(map[string]CustomEffect, len(effects)),
		energyTypes: append([]EnergyType(nil), energyTypes...),
	}
	for _, e := range effects {
		if _, dup := f.effects[e.ID()]; dup {
			panic(fmt.Sprintf("duplicate custom effect %q in format %s", e.ID(), name))
		}
		f.effects[e.ID()] = e
	}
	return f
}

// CustomEffect resolves an identifier. Panics if it is not registered.
func (f *Format) CustomEffect(id string) CustomEffect {
	e, ok := f.effects[id]
	if !ok {
		panic(fmt.Sprintf("custom effect not found in format %s: %q", f.Name, id))
	}
	return e
}

// EnergyTypes returns the valid energy types, in declaration order.
func (f *Format) EnergyTypes() []EnergyType {
	return append([]EnergyType(nil), f.energyTypes...)
}

// EnergyTypesExcept returns the valid energy types minus the excluded ones.
func (f *Format) EnergyTypesExcept(excluded ...EnergyType) []EnergyType {
	var out []EnergyType
	for _, t := range f.energyTypes {
		skip := false
		for _, x := range excluded {
			if t == x {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, t)
		}
	}
	return out
}

// EffectIDs lists registered identifiers, sorted.
func (f *Format) EffectIDs() []string {
	ids := make([]string, 0, len(f.effects))
	for id := range f.effects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
