package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging resolution events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	kind := e.Type.String()
	for len(kind) < 16 {
		kind += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, playerName(player)),
	}
}

func NewAttackDeclareEvent(turn int, player int, attacker, attack string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAttackDeclare,
		Card:    attacker,
		Details: fmt.Sprintf("%s's %s uses %s", playerName(player), attacker, attack),
	}
}

func NewCoinFlipEvent(turn int, player int, results []bool) GameEvent {
	faces := make([]string, len(results))
	heads := 0
	for i, h := range results {
		if h {
			faces[i] = "heads"
			heads++
		} else {
			faces[i] = "tails"
		}
	}
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventCoinFlip,
		Details: fmt.Sprintf("%s flips %d coin(s): %s (%d heads)", playerName(player), len(results), strings.Join(faces, ", "), heads),
	}
}

func NewDamageEvent(turn int, player int, target string, requested, dealt int) GameEvent {
	details := fmt.Sprintf("%s takes %d damage", target, dealt)
	if requested != dealt {
		details = fmt.Sprintf("%s takes %d damage (%d before modifiers)", target, dealt, requested)
	}
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDamage,
		Card:    target,
		Details: details,
	}
}

func NewHealEvent(turn int, player int, target string, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventHeal,
		Card:    target,
		Details: fmt.Sprintf("%s heals %d damage", target, amount),
	}
}

func NewSpecialConditionEvent(turn int, player int, target string, condition string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventSpecialCondition,
		Card:    target,
		Details: fmt.Sprintf("%s is now %s", target, condition),
	}
}

func NewEffectInstalledEvent(turn int, player int, target string, effect string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventEffectInstalled,
		Card:    target,
		Details: fmt.Sprintf("%s is affected by %s", target, effect),
	}
}

func NewEffectExpiredEvent(turn int, player int, target string, effect string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventEffectExpired,
		Card:    target,
		Details: fmt.Sprintf("%s on %s wears off", effect, target),
	}
}

func NewKnockOutEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventKnockOut,
		Card:    cardName,
		Details: fmt.Sprintf("%s's %s is knocked out", playerName(player), cardName),
	}
}

func NewDiscardEnergyEvent(turn int, player int, cardName string, discarded []string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDiscardEnergy,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %d energy (%s)", cardName, len(discarded), strings.Join(discarded, ", ")),
	}
}

func NewDrawEvent(turn int, player int, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDraw,
		Details: fmt.Sprintf("%s draws %d card(s)", playerName(player), count),
	}
}

func NewSwitchEvent(turn int, player int, outgoing, incoming string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventSwitch,
		Card:    incoming,
		Details: fmt.Sprintf("%s switches %s with %s", playerName(player), outgoing, incoming),
	}
}

func NewAttackFailedEvent(turn int, player int, attack string, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAttackFailed,
		Details: fmt.Sprintf("%s fails (%s)", attack, reason),
	}
}

func NewAttackPreventedEvent(turn int, player int, attack string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAttackPrevented,
		Details: fmt.Sprintf("effects of %s are prevented", attack),
	}
}

func NewChoiceEvent(turn int, player int, prompt string, choice string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventChoice,
		Details: fmt.Sprintf("%s chooses %s (%s)", playerName(player), choice, prompt),
	}
}

func NewCheckupEvent(turn int, player int, cardName string, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventCheckup,
		Card:    cardName,
		Details: fmt.Sprintf("Checkup: %s %s", cardName, details),
	}
}

func NewBlockedEvent(turn int, player int, what string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventBlocked,
		Details: fmt.Sprintf("%s can't %s", playerName(player), what),
	}
}
