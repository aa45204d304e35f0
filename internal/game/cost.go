package game

import "strings"

// Cost is an attack's energy requirement, one entry per unit.
type Cost []EnergyType

// SatisfiedBy reports whether the attached units pay for the cost. Typed units
// are matched first; Colorless units are paid by whatever remains.
func (c Cost) SatisfiedBy(attached []EnergyType) bool {
	pool := make(map[EnergyType]int)
	for _, t := range attached {
		pool[t]++
	}
	remaining := len(attached)
	colorless := 0
	for _, need := range c {
		if need == EnergyColorless {
			colorless++
			continue
		}
		if pool[need] == 0 {
			return false
		}
		pool[need]--
		remaining--
	}
	return remaining >= colorless
}

// With returns a copy of the cost extended by n units of t.
func (c Cost) With(t EnergyType, n int) Cost {
	out := make(Cost, 0, len(c)+n)
	out = append(out, c...)
	for i := 0; i < n; i++ {
		out = append(out, t)
	}
	return out
}

func (c Cost) String() string {
	if len(c) == 0 {
		return "free"
	}
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = t.String()
	}
	return strings.Join(parts, "+")
}
