package gameplay

import (
	"adventure/pkg/engine/input"
	"adventure/pkg/game/state"
)

// IsDark returns true if the adventurer cannot see the current room
func IsDark(g *state.Game) bool {
	return !g.CanSee()
}

// EatenByGrue applies the darkness rule: stumbling around in an unlit room
// without the lamp is fatal unless the adventurer retraces their last step.
// It is checked before any command, including pickups and quitting.
func EatenByGrue(g *state.Game, act input.Action) bool {
	return IsDark(g) && act != g.LastDirection
}
