package input

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"adventure/pkg/engine/world"
)

// Action is a player command. ActionNone stands for any input that is not a command.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveEast
	ActionMoveWest

	// Interaction
	ActionGetLamp
	ActionGetKey
	ActionOpenChest

	ActionQuit
)

// Intent is what the player asked for on one input line
type Intent struct {
	Action Action
	Raw    string
}

// Valid reports whether the line mapped to a command
func (i Intent) Valid() bool {
	return i.Action != ActionNone
}

// codes maps each command to its single-character code
var codes = map[Action]string{
	ActionMoveNorth: "W",
	ActionMoveSouth: "S",
	ActionMoveEast:  "D",
	ActionMoveWest:  "A",
	ActionGetLamp:   "L",
	ActionGetKey:    "K",
	ActionOpenChest: "O",
	ActionQuit:      "Q",
}

// bindings is the reverse of codes
var bindings = func() map[string]Action {
	m := make(map[string]Action, len(codes))
	for act, code := range codes {
		m[code] = act
	}
	return m
}()

// Actions returns every command in menu order
func Actions() []Action {
	return []Action{
		ActionMoveNorth,
		ActionMoveSouth,
		ActionMoveEast,
		ActionMoveWest,
		ActionGetLamp,
		ActionGetKey,
		ActionOpenChest,
		ActionQuit,
	}
}

// Normalize upper-cases a raw line. Surrounding whitespace is kept.
func Normalize(line string) string {
	return cases.Upper(language.Und).String(line)
}

// MapToIntent turns a raw input line into an Intent.
// Only an exact single code (after upper-casing) is recognised.
func MapToIntent(line string) Intent {
	if act, ok := bindings[Normalize(line)]; ok {
		return Intent{Action: act, Raw: line}
	}
	return Intent{Action: ActionNone, Raw: line}
}

// Code returns the single-character code for an action, or "" for ActionNone
func (a Action) Code() string {
	return codes[a]
}

func (a Action) String() string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveEast:
		return "Move East"
	case ActionMoveWest:
		return "Move West"
	case ActionGetLamp:
		return "Get Lamp"
	case ActionGetKey:
		return "Get Key"
	case ActionOpenChest:
		return "Open Chest"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Direction returns the compass direction of a movement action
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveEast:
		return world.East, true
	case ActionMoveWest:
		return world.West, true
	default:
		return 0, false
	}
}

// MoveAction returns the movement action for a compass direction
func MoveAction(dir world.Direction) Action {
	switch dir {
	case world.North:
		return ActionMoveNorth
	case world.South:
		return ActionMoveSouth
	case world.East:
		return ActionMoveEast
	case world.West:
		return ActionMoveWest
	default:
		return ActionNone
	}
}
