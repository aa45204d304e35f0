package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/ptcgx/internal/attack"
	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/log"
	"github.com/peterkuimelis/ptcgx/internal/scenario"
)

// ErrNoScenario is returned when a tool needs a table but none is loaded.
var ErrNoScenario = errors.New("no scenario loaded: use load_scenario first")

// ToolResponse is the JSON envelope returned by the state-changing tools.
type ToolResponse struct {
	ResolutionID string      `json:"resolution_id"`
	Events       []EventView `json:"events"`
	State        *StateView  `json:"state,omitempty"`
	Attack       string      `json:"attack,omitempty"`
	Failed       bool        `json:"failed,omitempty"`
	Prevented    bool        `json:"prevented,omitempty"`
	DamageDone   int         `json:"damage_done,omitempty"`
	Flips        [][]bool    `json:"flips,omitempty"`
	Results      []string    `json:"results,omitempty"`
}

// Session holds the table an MCP client is working on. Tool calls may
// arrive concurrently, so every method locks.
type Session struct {
	mu     sync.Mutex
	db     game.CardDB
	format *game.Format
	random game.DecisionMaker

	state  *game.State
	logger *log.MemoryLogger
	seen   int
}

// NewSession creates a session over a card database. seed 0 picks a random seed.
func NewSession(db game.CardDB, format *game.Format, seed int64) *Session {
	return &Session{
		db:     db,
		format: format,
		random: game.NewRandomDecisionMaker(seed),
	}
}

// Cards returns the card database.
func (s *Session) Cards() game.CardDB {
	return s.db
}

// Load replaces the table with the given scenario.
func (s *Session) Load(sc *scenario.Scenario) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.NewMemoryLogger()
	state, err := sc.Build(s.db, s.format, logger)
	if err != nil {
		return nil, err
	}
	s.state, s.logger, s.seen = state, logger, 0
	return s.respond(), nil
}

// Resolve executes the turn player's attack.
func (s *Session) Resolve(name string, flips []bool, choices []string) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoScenario
	}
	ctx, err := attack.Execute(s.state, NewToolDecider(flips, choices, s.random), name)
	if err != nil {
		return nil, err
	}
	s.state = ctx.Engine()

	resp := s.respond()
	resp.Attack = name
	resp.Failed = ctx.Failed()
	resp.Prevented = ctx.Prevented()
	resp.DamageDone = ctx.DamageDone()
	for _, f := range ctx.Flips() {
		resp.Flips = append(resp.Flips, []bool(f))
	}
	for _, r := range ctx.Results() {
		resp.Results = append(resp.Results, r.String())
	}
	return resp, nil
}

// EndTurn runs the checkup and passes the turn.
func (s *Session) EndTurn(flips []bool) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoScenario
	}
	s.state = s.state.EndTurn(NewToolDecider(flips, nil, s.random))
	return s.respond(), nil
}

// State returns the current table without consuming events.
func (s *Session) State() (*StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoScenario
	}
	return BuildStateView(s.state), nil
}

// respond builds a response with the events logged since the last one.
func (s *Session) respond() *ToolResponse {
	events := s.logger.Events()
	fresh := events[s.seen:]
	s.seen = len(events)
	return &ToolResponse{
		ResolutionID: uuid.NewString(),
		Events:       buildEventViews(fresh),
		State:        BuildStateView(s.state),
	}
}

// respondJSON marshals a response to a JSON string.
func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
