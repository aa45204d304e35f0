package game

import (
	"fmt"

	"github.com/peterkuimelis/ptcgx/internal/log"
)

const (
	BenchSize           = 5
	DamageCounter       = 10
	WeaknessMultiplier  = 2
	ResistanceReduction = 30
)

// Player represents one player's side of the table.
type Player struct {
	Active      *InPlay
	Bench       []*InPlay
	Deck        []*Card // top of deck is last element (pop from end)
	Hand        []*Card
	Discard     []*Card
	PrizesTaken int
}

// InPlay returns the active card (if any) followed by the bench.
func (p *Player) InPlay() []*InPlay {
	var result []*InPlay
	if p.Active != nil {
		result = append(result, p.Active)
	}
	return append(result, p.Bench...)
}

func (p *Player) clone() Player {
	c := Player{
		Active:      p.Active.clone(),
		Deck:        append([]*Card(nil), p.Deck...),
		Hand:        append([]*Card(nil), p.Hand...),
		Discard:     append([]*Card(nil), p.Discard...),
		PrizesTaken: p.PrizesTaken,
	}
	for _, b := range p.Bench {
		c.Bench = append(c.Bench, b.clone())
	}
	return c
}

// --- State ---

// State is one immutable snapshot of the match. Every operation that changes
// the game returns a new State and leaves the receiver untouched. The Format
// and the event logger are shared by all snapshots derived from the same root.
type State struct {
	format  *Format
	logger  log.EventLogger
	players [2]Player

	turn       int // 1-based turn counter
	turnPlayer PlayerID
	attacking  bool // an attack is being resolved

	effects []Effect
	targets []CardRef // ad-hoc "defending" overrides, top is last
	nextID  int
}

// NewState creates an empty table on turn 1 with player 0 to act.
// A nil logger defaults to an in-memory logger.
func NewState(format *Format, logger log.EventLogger) *State {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &State{
		format: format,
		logger: logger,
		turn:   1,
	}
}

// Clone returns a deep copy sharing only the Format and logger.
func (s *State) Clone() *State {
	c := &State{
		format:     s.format,
		logger:     s.logger,
		players:    [2]Player{s.players[0].clone(), s.players[1].clone()},
		turn:       s.turn,
		turnPlayer: s.turnPlayer,
		attacking:  s.attacking,
		effects:    append([]Effect(nil), s.effects...),
		targets:    append([]CardRef(nil), s.targets...),
		nextID:     s.nextID,
	}
	return c
}

func (s *State) Format() *Format          { return s.format }
func (s *State) Logger() log.EventLogger  { return s.logger }
func (s *State) Turn() int                { return s.turn }
func (s *State) TurnPlayer() PlayerID     { return s.turnPlayer }
func (s *State) InAttack() bool           { return s.attacking }
func (s *State) Effects() []Effect        { return append([]Effect(nil), s.effects...) }
func (s *State) Player(p PlayerID) Player { return s.players[p] }

// Log records a narration event stamped with the current turn.
func (s *State) Log(event log.GameEvent) {
	if s.logger == nil {
		return
	}
	event.Turn = s.turn
	s.logger.Log(event)
}

// --- Queries ---

// Active returns the player's active card, or nil.
func (s *State) Active(p PlayerID) *InPlay {
	return s.players[p].Active
}

// Bench returns the player's benched cards in bench order.
func (s *State) Bench(p PlayerID) []*InPlay {
	return append([]*InPlay(nil), s.players[p].Bench...)
}

// Card looks up an in-play card; nil if it is no longer in play.
func (s *State) Card(ref CardRef) *InPlay {
	for _, ip := range s.players[ref.Player].InPlay() {
		if ip.ID == ref.ID {
			return ip
		}
	}
	return nil
}

// IsActive reports whether ref is its owner's active card.
func (s *State) IsActive(ref CardRef) bool {
	a := s.players[ref.Player].Active
	return a != nil && a.ID == ref.ID
}

// Attacking returns the turn player's active card.
func (s *State) Attacking() *InPlay {
	return s.players[s.turnPlayer].Active
}

// Defending returns the pushed target override, or the opponent's active card.
func (s *State) Defending() *InPlay {
	if len(s.targets) > 0 {
		return s.Card(s.targets[len(s.targets)-1])
	}
	return s.players[s.turnPlayer.Opponent()].Active
}

// CostSatisfied reports whether the card's attached energy pays for cost.
func (s *State) CostSatisfied(ref CardRef, cost Cost) bool {
	card := s.Card(ref)
	if card == nil {
		return false
	}
	return cost.SatisfiedBy(card.EnergyTypes())
}

// --- Setup helpers (used by scenario loading and tests) ---

// WithTurn returns a state on the given turn with p to act.
func (s *State) WithTurn(turn int, p PlayerID) *State {
	next := s.Clone()
	next.turn = turn
	next.turnPlayer = p
	return next
}

// PutActive places card as p's active Pokemon, replacing nothing.
// Panics if p already has an active card.
func (s *State) PutActive(p PlayerID, card *Card) (*State, CardRef) {
	if s.players[p].Active != nil {
		panic(fmt.Sprintf("%s already has an active card", p))
	}
	next := s.Clone()
	ip := next.newInPlay(p, card)
	next.players[p].Active = ip
	return next, ip.Ref()
}

// PutBench places card on p's bench. Panics if the bench is full.
func (s *State) PutBench(p PlayerID, card *Card) (*State, CardRef) {
	if len(s.players[p].Bench) >= BenchSize {
		panic(fmt.Sprintf("%s bench is full", p))
	}
	next := s.Clone()
	ip := next.newInPlay(p, card)
	next.players[p].Bench = append(next.players[p].Bench, ip)
	return next, ip.Ref()
}

func (s *State) newInPlay(p PlayerID, card *Card) *InPlay {
	s.nextID++
	return &InPlay{ID: s.nextID, Owner: p, Card: card}
}

// WithEnergy attaches energy cards without running attachment hooks.
func (s *State) WithEnergy(ref CardRef, energy ...*Card) *State {
	next := s.Clone()
	if card := next.Card(ref); card != nil {
		card.Energy = append(card.Energy, energy...)
	}
	return next
}

// WithDamage sets the damage on a card.
func (s *State) WithDamage(ref CardRef, damage int) *State {
	next := s.Clone()
	if card := next.Card(ref); card != nil {
		card.Damage = damage
	}
	return next
}

// WithCondition sets a card's special condition and poison counters without
// narration.
func (s *State) WithCondition(ref CardRef, cond SpecialCondition, poison int) *State {
	next := s.Clone()
	if card := next.Card(ref); card != nil {
		card.Condition = cond
		card.PoisonCounters = poison
	}
	return next
}

// WithDeck replaces p's deck; the last card is drawn first.
func (s *State) WithDeck(p PlayerID, cards []*Card) *State {
	next := s.Clone()
	next.players[p].Deck = append([]*Card(nil), cards...)
	return next
}

// WithHand replaces p's hand.
func (s *State) WithHand(p PlayerID, cards []*Card) *State {
	next := s.Clone()
	next.players[p].Hand = append([]*Card(nil), cards...)
	return next
}

// BeginAttack marks the state as mid-attack.
func (s *State) BeginAttack() *State {
	next := s.Clone()
	next.attacking = true
	return next
}

// EndAttack clears the mid-attack mark and any leftover target overrides.
func (s *State) EndAttack() *State {
	next := s.Clone()
	next.attacking = false
	next.targets = nil
	return next
}

// --- Target stack ---

// PushTarget makes ref the "defending" card until the matching PopTarget.
func (s *State) PushTarget(ref CardRef) *State {
	next := s.Clone()
	next.targets = append(next.targets, ref)
	return next
}

// PopTarget removes the most recent target override.
func (s *State) PopTarget() *State {
	next := s.Clone()
	if len(next.targets) > 0 {
		next.targets = next.targets[:len(next.targets)-1]
	}
	return next
}

// --- Effects ---

// AddEffect merges an effect record into the state.
func (s *State) AddEffect(e Effect) *State {
	s.format.CustomEffect(e.Consequence) // unknown identifiers are a data bug

	next := s.Clone()
	next.effects = append(next.effects, e)
	if !e.System {
		next.Log(log.NewEffectInstalledEvent(0, int(e.Source.Player()), next.targetName(e.Target), e.Consequence))
	}
	return next
}

// dropEffects removes every effect for which drop returns true.
func (s *State) dropEffects(drop func(Effect) bool) {
	kept := s.effects[:0]
	for _, e := range s.effects {
		if drop(e) {
			if !e.System {
				s.Log(log.NewEffectExpiredEvent(0, int(e.Target.Player()), s.targetName(e.Target), e.Consequence))
			}
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
}

func (s *State) targetName(t EffectTarget) string {
	if ref, ok := t.Ref(); ok {
		if card := s.Card(ref); card != nil {
			return card.Card.Name
		}
		return ref.String()
	}
	return t.String()
}
