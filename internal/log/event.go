package log

// EventType enumerates all observable resolution events.
type EventType int

const (
	EventAttackDeclare EventType = iota
	EventCoinFlip
	EventDamage
	EventHeal
	EventSpecialCondition
	EventEffectInstalled
	EventEffectExpired
	EventKnockOut
	EventDiscardEnergy
	EventDraw
	EventSwitch
	EventAttackFailed
	EventAttackPrevented
	EventChoice
	EventCheckup
	EventNewTurn
	EventBlocked
)

func (e EventType) String() string {
	switch e {
	case EventAttackDeclare:
		return "AttackDeclare"
	case EventCoinFlip:
		return "CoinFlip"
	case EventDamage:
		return "Damage"
	case EventHeal:
		return "Heal"
	case EventSpecialCondition:
		return "SpecialCondition"
	case EventEffectInstalled:
		return "EffectInstalled"
	case EventEffectExpired:
		return "EffectExpired"
	case EventKnockOut:
		return "KnockOut"
	case EventDiscardEnergy:
		return "DiscardEnergy"
	case EventDraw:
		return "Draw"
	case EventSwitch:
		return "Switch"
	case EventAttackFailed:
		return "AttackFailed"
	case EventAttackPrevented:
		return "AttackPrevented"
	case EventChoice:
		return "Choice"
	case EventCheckup:
		return "Checkup"
	case EventNewTurn:
		return "NewTurn"
	case EventBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event while resolving an attack or trigger.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
