package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

//go:generate mockgen -destination=mock/mock_decision.go -package=gamemock github.com/peterkuimelis/ptcgx/internal/game DecisionMaker

// DecisionMaker supplies randomness and player choices. Calls are synchronous:
// the answer is available when the method returns.
type DecisionMaker interface {
	// FlipCoins flips n coins.
	FlipCoins(n int) Flips

	// PickEnergyType asks player to choose one of the candidate types.
	PickEnergyType(s *State, player PlayerID, candidates []EnergyType) EnergyType

	// PickAttack asks player to choose one of the candidate attack names.
	PickAttack(s *State, player PlayerID, candidates []string) string

	// PickCard asks player to choose one in-play card from the candidates.
	PickCard(s *State, player PlayerID, prompt string, candidates []CardRef) CardRef
}

// Flips is the outcome of one coin-flip request; true is heads.
type Flips []bool

// Heads returns how many coins landed heads.
func (f Flips) Heads() int {
	n := 0
	for _, h := range f {
		if h {
			n++
		}
	}
	return n
}

// Tails returns how many coins landed tails.
func (f Flips) Tails() int {
	return len(f) - f.Heads()
}

// ActionResult grades how fully a multi-card action was carried out.
type ActionResult int

const (
	ActionFull ActionResult = iota
	ActionPartial
	ActionNone
)

func (r ActionResult) String() string {
	switch r {
	case ActionFull:
		return "Full"
	case ActionPartial:
		return "Partial"
	default:
		return "None"
	}
}

// GradeAction grades having done `done` out of `wanted`.
func GradeAction(done, wanted int) ActionResult {
	switch {
	case done >= wanted:
		return ActionFull
	case done > 0:
		return ActionPartial
	default:
		return ActionNone
	}
}

// RandomDecisionMaker flips fair coins and picks uniformly at random.
type RandomDecisionMaker struct {
	rng *rand.Rand
}

// NewRandomDecisionMaker creates a decision maker; seed 0 picks a random seed.
func NewRandomDecisionMaker(seed int64) *RandomDecisionMaker {
	if seed == 0 {
		seed = newSeed()
	}
	return &RandomDecisionMaker{rng: rand.New(rand.NewSource(seed))}
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 1
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func (r *RandomDecisionMaker) FlipCoins(n int) Flips {
	flips := make(Flips, n)
	for i := range flips {
		flips[i] = r.rng.Intn(2) == 0
	}
	return flips
}

func (r *RandomDecisionMaker) PickEnergyType(s *State, player PlayerID, candidates []EnergyType) EnergyType {
	if len(candidates) == 0 {
		return EnergyNone
	}
	return candidates[r.rng.Intn(len(candidates))]
}

func (r *RandomDecisionMaker) PickAttack(s *State, player PlayerID, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[r.rng.Intn(len(candidates))]
}

func (r *RandomDecisionMaker) PickCard(s *State, player PlayerID, prompt string, candidates []CardRef) CardRef {
	if len(candidates) == 0 {
		return CardRef{}
	}
	return candidates[r.rng.Intn(len(candidates))]
}
