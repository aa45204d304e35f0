package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/ptcgx/internal/attack"
	"github.com/peterkuimelis/ptcgx/internal/game"
	"github.com/peterkuimelis/ptcgx/internal/scenario"
)

// Tools binds the MCP tool handlers to one session.
type Tools struct {
	session *Session
}

// RegisterTools adds all tools to the MCP server.
func RegisterTools(s *server.MCPServer, session *Session) *Tools {
	t := &Tools{session: session}
	s.AddTool(listCardsTool(), t.handleListCards)
	s.AddTool(loadScenarioTool(), t.handleLoadScenario)
	s.AddTool(resolveAttackTool(), t.handleResolveAttack)
	s.AddTool(endTurnTool(), t.handleEndTurn)
	s.AddTool(getStateTool(), t.handleGetState)
	return t
}

// --- Tool definitions ---

func listCardsTool() mcp.Tool {
	return mcp.NewTool("list_cards",
		mcp.WithDescription("List the cards in the database. With a name, describe that card and its attacks."),
		mcp.WithString("name", mcp.Description("Card name to describe")),
	)
}

func loadScenarioTool() mcp.Tool {
	return mcp.NewTool("load_scenario",
		mcp.WithDescription("Replace the table with a board position given as a YAML scenario document "+
			"(turn, turn_player, and players with active, bench, hand and deck)."),
		mcp.WithString("scenario", mcp.Required(), mcp.Description("Scenario YAML")),
	)
}

func resolveAttackTool() mcp.Tool {
	return mcp.NewTool("resolve_attack",
		mcp.WithDescription("Resolve one attack of the turn player's active Pokemon and return the narration "+
			"and the resulting table. Coin flips and choices not supplied are random."),
		mcp.WithString("attack", mcp.Required(), mcp.Description("Attack name")),
		mcp.WithString("flips", mcp.Description("Space-separated coin results in order, e.g. 'H T H'")),
		mcp.WithString("choices", mcp.Description("Comma-separated answers to choices in order: energy types, attack names or card names")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End the turn: turn-end effects, the checkup, knockouts and effect expiry, then pass the turn."),
		mcp.WithString("flips", mcp.Description("Space-separated coin results for the checkup, e.g. 'T'")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current table without changing it. Read-only."),
	)
}

// --- Tool handlers ---

type cardSummary struct {
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	HP         int             `json:"hp,omitempty"`
	Type       string          `json:"type,omitempty"`
	Weakness   string          `json:"weakness,omitempty"`
	Resistance string          `json:"resistance,omitempty"`
	Attacks    []attackSummary `json:"attacks,omitempty"`
}

type attackSummary struct {
	Name     string `json:"name"`
	Cost     string `json:"cost"`
	Damage   int    `json:"damage,omitempty"`
	Text     string `json:"text,omitempty"`
	Pipeline string `json:"pipeline"`
}

func typeName(t game.EnergyType) string {
	if t == game.EnergyNone {
		return ""
	}
	return t.String()
}

func summarize(card *game.Card) (cardSummary, error) {
	cs := cardSummary{
		Name:       card.Name,
		Kind:       card.Kind.String(),
		HP:         card.HP,
		Type:       typeName(card.Type),
		Weakness:   typeName(card.Weakness),
		Resistance: typeName(card.Resistance),
	}
	for _, a := range card.Attacks {
		b, err := attack.For(a)
		if err != nil {
			return cs, err
		}
		cs.Attacks = append(cs.Attacks, attackSummary{
			Name:     a.Name,
			Cost:     a.Cost.String(),
			Damage:   a.Damage,
			Text:     a.Text,
			Pipeline: b.String(),
		})
	}
	return cs, nil
}

func (t *Tools) handleListCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	db := t.session.Cards()
	name := strings.TrimSpace(request.GetString("name", ""))
	if name == "" {
		return mcp.NewToolResultText(respondJSON(db.Names())), nil
	}
	card, ok := db[name]
	if !ok {
		return mcp.NewToolResultErrorf("Unknown card %q.", name), nil
	}
	cs, err := summarize(card)
	if err != nil {
		return mcp.NewToolResultErrorf("Card %q has a broken attack: %v", name, err), nil
	}
	return mcp.NewToolResultText(respondJSON(cs)), nil
}

func (t *Tools) handleLoadScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sc, err := scenario.Parse([]byte(request.GetString("scenario", "")))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid scenario: %v", err), nil
	}
	resp, err := t.session.Load(sc)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load scenario: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *Tools) handleResolveAttack(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(request.GetString("attack", ""))
	if name == "" {
		return mcp.NewToolResultError("attack is required"), nil
	}
	flips, err := ParseFlips(request.GetString("flips", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := t.session.Resolve(name, flips, ParseChoices(request.GetString("choices", "")))
	if err != nil {
		return mcp.NewToolResultErrorf("Cannot resolve %q: %v", name, err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *Tools) handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	flips, err := ParseFlips(request.GetString("flips", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := t.session.EndTurn(flips)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *Tools) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sv, err := t.session.State()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(sv)), nil
}
